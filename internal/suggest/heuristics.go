package suggest

import (
	"strings"

	"github.com/ledgersieve/ledgersieve/internal/model"
)

// categoryKeywords layers keyword heuristics in evaluation order: the first
// group containing a keyword present in the token wins.
var categoryKeywords = []struct {
	categoryID int
	category   string
	keywords   []string
}{
	{
		category:   "Food & Dining",
		categoryID: model.CategoryIDDining,
		keywords: []string{
			"COFFEE", "CAFE", "RESTAURANT", "PIZZA", "BURGER", "TACO",
			"STARBUCKS", "MCDONALDS", "CHIPOTLE", "DUNKIN", "DOORDASH",
			"GRUBHUB", "DINER", "BAKERY", "SUSHI", "KFC",
		},
	},
	{
		category:   "Transportation",
		categoryID: model.CategoryIDTransportation,
		keywords: []string{
			"UBER", "LYFT", "TAXI", "CAB", "GAS", "FUEL", "SHELL",
			"CHEVRON", "EXXON", "BP", "PARKING", "TRANSIT", "TOLL",
		},
	},
	{
		category:   "Shopping",
		categoryID: model.CategoryIDShopping,
		keywords: []string{
			"AMAZON", "WALMART", "TARGET", "EBAY", "ETSY", "IKEA",
			"BEST BUY", "HOME DEPOT", "STORE", "SHOP", "OUTLET",
		},
	},
	{
		category:   "Subscriptions",
		categoryID: model.CategoryIDSubscriptions,
		keywords: []string{
			"NETFLIX", "SPOTIFY", "HULU", "DISNEY", "HBO", "AUDIBLE",
			"SUBSCRIPTION", "PRIME", "ICLOUD", "YOUTUBE",
		},
	},
	{
		category:   "Groceries",
		categoryID: model.CategoryIDGroceries,
		keywords: []string{
			"GROCERY", "MARKET", "SAFEWAY", "KROGER", "WHOLE FOODS",
			"TRADER", "ALDI", "COSTCO", "OXXO", "FOODS",
		},
	},
	{
		category:   "Utilities",
		categoryID: model.CategoryIDUtilities,
		keywords: []string{
			"ELECTRIC", "WATER", "POWER", "ENERGY", "INTERNET", "CABLE",
			"COMCAST", "XFINITY", "VERIZON", "TMOBILE", "UTILITY",
		},
	},
}

// Amount-magnitude fallback thresholds, applied to the group's average
// amount when no keyword matched.
const (
	largeIncomeAmount   = 1000.0
	largeExpenseAmount  = 800.0
	mediumExpenseAmount = 100.0
)

// suggestCategory picks a category for a mined token group: keyword layers
// first, then an amount-magnitude fallback on the average signed amount.
func suggestCategory(token string, averageAmount float64) (int, string) {
	for _, layer := range categoryKeywords {
		for _, kw := range layer.keywords {
			if strings.Contains(token, kw) {
				return layer.categoryID, layer.category
			}
		}
	}

	switch {
	case averageAmount >= largeIncomeAmount:
		return model.CategoryIDSalary, "Salary"
	case averageAmount > 0:
		return model.CategoryIDIncome, "Income"
	case averageAmount <= -largeExpenseAmount:
		return model.CategoryIDHousing, "Housing"
	case averageAmount <= -mediumExpenseAmount:
		return model.CategoryIDShopping, "Shopping"
	default:
		return model.CategoryIDDining, "Food & Dining"
	}
}
