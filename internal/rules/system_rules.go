package rules

import "github.com/ledgersieve/ledgersieve/internal/model"

// Revising this set only affects fresh databases: seeding is idempotent and
// never rewrites existing rows.

func sign(s model.AmountSign) *model.AmountSign { return &s }

func amount(v float64) *float64 { return &v }

// SystemRules returns the built-in rule set evaluated before user rules of
// equal priority. All entries reference pre-seeded system categories only.
func SystemRules() []model.CategoryRule {
	return []model.CategoryRule{
		{
			Name:         "Payroll deposit",
			RegexPattern: `\b(PAYROLL|DIRECT\s*DEP|DIRECTDEP|SALARY|WAGES)\b`,
			AmountSign:   sign(model.AmountSignPositive),
			CategoryID:   model.CategoryIDSalary,
			Priority:     100,
			Confidence:   0.95,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Interest income",
			RegexPattern: `\b(INTEREST\s*(EARNED|PAYMENT|PAID)|INT\s*EARNED|DIVIDEND)\b`,
			AmountSign:   sign(model.AmountSignPositive),
			CategoryID:   model.CategoryIDIncome,
			Priority:     95,
			Confidence:   0.9,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Tax refund",
			RegexPattern: `\b(TAX\s*REF|IRS\s*TREAS)\b`,
			AmountSign:   sign(model.AmountSignPositive),
			CategoryID:   model.CategoryIDIncome,
			Priority:     95,
			Confidence:   0.95,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:                "Account transfer",
			DescriptionContains: "TRANSFER",
			CategoryID:          model.CategoryIDTransfers,
			Priority:            90,
			Confidence:          0.9,
			IsActive:            true,
			IsSystem:            true,
		},
		{
			Name:         "Peer payment",
			RegexPattern: `\b(ZELLE|VENMO|PAYPAL|CASH\s*APP)\b`,
			CategoryID:   model.CategoryIDTransfers,
			Priority:     85,
			Confidence:   0.85,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "ATM withdrawal",
			RegexPattern: `\b(ATM|CASH\s*WITHDRAWAL)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDFees,
			Priority:     85,
			Confidence:   0.85,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Bank fee",
			RegexPattern: `\b(OVERDRAFT|SERVICE\s*(FEE|CHARGE)|MONTHLY\s*FEE|NSF\s*FEE|LATE\s*FEE)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDFees,
			Priority:     85,
			Confidence:   0.9,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Mortgage or rent",
			RegexPattern: `\b(MORTGAGE|RENT\s*(PAYMENT|PMT)|PROPERTY\s*MGMT)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			AmountMin:    amount(300),
			CategoryID:   model.CategoryIDHousing,
			Priority:     80,
			Confidence:   0.9,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Utility bill",
			RegexPattern: `\b(ELECTRIC|WATER\s*(BILL|UTIL)|GAS\s*(BILL|COMPANY)|INTERNET|UTILITY)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDUtilities,
			Priority:     75,
			Confidence:   0.85,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Streaming subscription",
			RegexPattern: `\b(NETFLIX|SPOTIFY|HULU|DISNEY|HBO\s*MAX|PARAMOUNT|AUDIBLE)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			AmountMax:    amount(60),
			CategoryID:   model.CategoryIDSubscriptions,
			Priority:     75,
			Confidence:   0.9,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Rideshare",
			RegexPattern: `\b(UBER|LYFT|TAXI|CAB)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDTransportation,
			Priority:     70,
			Confidence:   0.85,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Fuel",
			RegexPattern: `\b(SHELL|CHEVRON|EXXON|MOBIL|GAS\s*STATION|FUEL)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDTransportation,
			Priority:     70,
			Confidence:   0.8,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Grocery store",
			RegexPattern: `\b(GROCERY|SAFEWAY|KROGER|TRADER\s*JOE|WHOLE\s*FOODS|ALBERTSONS|MARKET)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDGroceries,
			Priority:     65,
			Confidence:   0.8,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Coffee and dining",
			RegexPattern: `\b(STARBUCKS|RESTAURANT|CAFE|COFFEE|PIZZA|DOORDASH|GRUBHUB|DINER)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDDining,
			Priority:     65,
			Confidence:   0.8,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Online retail",
			RegexPattern: `\b(AMAZON|AMZN|EBAY|ETSY|WALMART\.COM)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDShopping,
			Priority:     60,
			Confidence:   0.75,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Pharmacy",
			RegexPattern: `\b(CVS|WALGREENS|PHARMACY|RITE\s*AID)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDHealthcare,
			Priority:     60,
			Confidence:   0.8,
			IsActive:     true,
			IsSystem:     true,
		},
		{
			Name:         "Air travel",
			RegexPattern: `\b(AIRLINE|AIRWAYS|DELTA\s*AIR|UNITED\s*AIR|SOUTHWEST|AIRBNB|HOTEL)\b`,
			AmountSign:   sign(model.AmountSignNegative),
			CategoryID:   model.CategoryIDTravel,
			Priority:     60,
			Confidence:   0.8,
			IsActive:     true,
			IsSystem:     true,
		},
	}
}
