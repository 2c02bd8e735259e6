// Package model defines the core domain models used throughout the application.
package model

import "time"

// Category represents a node in the user-facing classification taxonomy.
// Categories form a tree via ParentID.
type Category struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ParentID     *int
	BudgetAmount *float64
	Name         string
	Icon         string
	Color        string
	ID           int
	SortOrder    int
	IsSystem     bool
	IsActive     bool
}

// IsRoot reports whether the category sits at the top of the taxonomy tree.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// UncategorizedName is the label carried by transactions no rule has claimed.
const UncategorizedName = "Other"

// System category identifiers. These are pre-seeded at startup and immutable;
// custom categories receive IDs above SystemCategoryMaxID.
const (
	CategoryIDIncome = iota + 1
	CategoryIDSalary
	CategoryIDHousing
	CategoryIDUtilities
	CategoryIDGroceries
	CategoryIDDining
	CategoryIDTransportation
	CategoryIDShopping
	CategoryIDEntertainment
	CategoryIDSubscriptions
	CategoryIDTravel
	CategoryIDHealthcare
	CategoryIDFees
	CategoryIDTransfers
	CategoryIDOther

	// SystemCategoryMaxID is the highest reserved system category ID.
	SystemCategoryMaxID = CategoryIDOther
)

// SystemCategories returns the immutable pre-seeded category set.
func SystemCategories() []Category {
	mk := func(id int, name, icon, color string, order int) Category {
		return Category{
			ID:        id,
			Name:      name,
			Icon:      icon,
			Color:     color,
			SortOrder: order,
			IsSystem:  true,
			IsActive:  true,
		}
	}

	return []Category{
		mk(CategoryIDIncome, "Income", "dollarsign.circle", "#4ECDC4", 0),
		mk(CategoryIDSalary, "Salary", "banknote", "#4ECDC4", 1),
		mk(CategoryIDHousing, "Housing", "house", "#FF6B6B", 2),
		mk(CategoryIDUtilities, "Utilities", "bolt", "#FFE66D", 3),
		mk(CategoryIDGroceries, "Groceries", "cart", "#95E1D3", 4),
		mk(CategoryIDDining, "Food & Dining", "fork.knife", "#F38181", 5),
		mk(CategoryIDTransportation, "Transportation", "car", "#AA96DA", 6),
		mk(CategoryIDShopping, "Shopping", "bag", "#FCBAD3", 7),
		mk(CategoryIDEntertainment, "Entertainment", "tv", "#A8D8EA", 8),
		mk(CategoryIDSubscriptions, "Subscriptions", "repeat", "#C7CEEA", 9),
		mk(CategoryIDTravel, "Travel", "airplane", "#FFDAC1", 10),
		mk(CategoryIDHealthcare, "Healthcare", "cross.case", "#E2F0CB", 11),
		mk(CategoryIDFees, "Fees & Charges", "exclamationmark.circle", "#B5EAD7", 12),
		mk(CategoryIDTransfers, "Transfers", "arrow.left.arrow.right", "#666666", 13),
		mk(CategoryIDOther, UncategorizedName, "questionmark.circle", "#999999", 14),
	}
}
