package merchant

import "github.com/ledgersieve/ledgersieve/internal/model"

// DefaultCatalog returns the curated merchant catalog loaded at process
// start. Entries are ordered; earlier entries win ties in every stage.
func DefaultCatalog() []model.Merchant {
	return []model.Merchant{
		// Coffee and dining
		{
			ID:            "starbucks",
			CanonicalName: "Starbucks",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"STARBUCKS", "SBUX"},
			Patterns:      []string{`STARBUCKS\s*#?\d*`},
			CommonAmounts: []float64{4.95, 5.50, 6.25},
		},
		{
			ID:            "mcdonalds",
			CanonicalName: "McDonald's",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"MCDONALDS", "MCDONALD S", "MCD"},
			Patterns:      []string{`MCDONALD`},
		},
		{
			ID:            "chipotle",
			CanonicalName: "Chipotle Mexican Grill",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"CHIPOTLE"},
		},
		{
			ID:            "subway",
			CanonicalName: "Subway",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"SUBWAY"},
		},
		{
			ID:            "dunkin",
			CanonicalName: "Dunkin'",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"DUNKIN", "DUNKIN DONUTS"},
		},
		{
			ID:            "doordash",
			CanonicalName: "DoorDash",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"DOORDASH", "DD DOORDASH"},
			Patterns:      []string{`DOORDASH\s*\*`},
		},
		{
			ID:            "ubereats",
			CanonicalName: "Uber Eats",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
			Aliases:       []string{"UBER EATS", "UBEREATS"},
			Patterns:      []string{`UBER\s*\*?\s*EATS`},
		},

		// Groceries
		{
			ID:            "wholefoods",
			CanonicalName: "Whole Foods Market",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"WHOLE FOODS", "WHOLEFDS", "WFM"},
		},
		{
			ID:            "safeway",
			CanonicalName: "Safeway",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"SAFEWAY"},
		},
		{
			ID:            "kroger",
			CanonicalName: "Kroger",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"KROGER"},
		},
		{
			ID:            "traderjoes",
			CanonicalName: "Trader Joe's",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"TRADER JOE", "TRADER JOES"},
		},
		{
			ID:            "costco",
			CanonicalName: "Costco Wholesale",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"COSTCO", "COSTCO WHSE"},
		},
		{
			ID:            "oxxo",
			CanonicalName: "OXXO",
			Category:      "Groceries",
			MerchantType:  model.MerchantTypeGrocery,
			Aliases:       []string{"OXXO"},
		},

		// Shopping
		{
			ID:            "amazon",
			CanonicalName: "Amazon",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"AMAZON", "AMZN", "AMAZON MKTPLACE", "AMZN MKTP"},
			Patterns:      []string{`AMZN\s*MKTP`, `AMAZON\.COM`},
		},
		{
			ID:            "walmart",
			CanonicalName: "Walmart",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"WALMART", "WAL-MART", "WM SUPERCENTER"},
		},
		{
			ID:            "target",
			CanonicalName: "Target",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"TARGET"},
		},
		{
			ID:            "homedepot",
			CanonicalName: "The Home Depot",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"HOME DEPOT", "HOMEDEPOT"},
		},
		{
			ID:            "bestbuy",
			CanonicalName: "Best Buy",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"BEST BUY", "BESTBUY"},
		},
		{
			ID:            "apple",
			CanonicalName: "Apple",
			Category:      "Shopping",
			MerchantType:  model.MerchantTypeRetail,
			Aliases:       []string{"APPLE STORE", "APPLE.COM"},
			Patterns:      []string{`APPLE\.COM/BILL`},
		},

		// Transportation
		{
			ID:            "uber",
			CanonicalName: "Uber",
			Category:      "Transportation",
			MerchantType:  model.MerchantTypeTransport,
			Aliases:       []string{"UBER TRIP", "UBER BV"},
			Patterns:      []string{`UBER\s*\*?\s*TRIP`},
		},
		{
			ID:            "lyft",
			CanonicalName: "Lyft",
			Category:      "Transportation",
			MerchantType:  model.MerchantTypeTransport,
			Aliases:       []string{"LYFT"},
		},
		{
			ID:            "shell",
			CanonicalName: "Shell",
			Category:      "Transportation",
			MerchantType:  model.MerchantTypeTransport,
			Aliases:       []string{"SHELL OIL", "SHELL SERVICE"},
			Patterns:      []string{`SHELL\s+OIL\s+\d+`},
		},
		{
			ID:            "chevron",
			CanonicalName: "Chevron",
			Category:      "Transportation",
			MerchantType:  model.MerchantTypeTransport,
			Aliases:       []string{"CHEVRON"},
		},
		{
			ID:            "exxon",
			CanonicalName: "Exxon Mobil",
			Category:      "Transportation",
			MerchantType:  model.MerchantTypeTransport,
			Aliases:       []string{"EXXON", "EXXONMOBIL", "MOBIL"},
		},

		// Subscriptions and entertainment
		{
			ID:            "netflix",
			CanonicalName: "Netflix",
			Category:      "Subscriptions",
			MerchantType:  model.MerchantTypeSubscription,
			Aliases:       []string{"NETFLIX"},
			Patterns:      []string{`NETFLIX\.COM`},
			CommonAmounts: []float64{15.49, 22.99},
		},
		{
			ID:            "spotify",
			CanonicalName: "Spotify",
			Category:      "Subscriptions",
			MerchantType:  model.MerchantTypeSubscription,
			Aliases:       []string{"SPOTIFY"},
			CommonAmounts: []float64{10.99, 16.99},
		},
		{
			ID:            "hulu",
			CanonicalName: "Hulu",
			Category:      "Subscriptions",
			MerchantType:  model.MerchantTypeSubscription,
			Aliases:       []string{"HULU"},
		},
		{
			ID:            "disneyplus",
			CanonicalName: "Disney+",
			Category:      "Subscriptions",
			MerchantType:  model.MerchantTypeSubscription,
			Aliases:       []string{"DISNEY PLUS", "DISNEYPLUS"},
		},
		{
			ID:            "youtube",
			CanonicalName: "YouTube Premium",
			Category:      "Subscriptions",
			MerchantType:  model.MerchantTypeSubscription,
			Aliases:       []string{"YOUTUBE PREMIUM", "YOUTUBEPREMIUM"},
			Patterns:      []string{`GOOGLE\s*\*?YOUTUBE`},
		},

		// Utilities and telecom
		{
			ID:            "comcast",
			CanonicalName: "Comcast Xfinity",
			Category:      "Utilities",
			MerchantType:  model.MerchantTypeUtility,
			Aliases:       []string{"COMCAST", "XFINITY"},
		},
		{
			ID:            "att",
			CanonicalName: "AT&T",
			Category:      "Utilities",
			MerchantType:  model.MerchantTypeUtility,
			Aliases:       []string{"AT T", "ATT PAYMENT"},
			Patterns:      []string{`AT&T`},
		},
		{
			ID:            "verizon",
			CanonicalName: "Verizon",
			Category:      "Utilities",
			MerchantType:  model.MerchantTypeUtility,
			Aliases:       []string{"VERIZON", "VZW"},
		},
		{
			ID:            "tmobile",
			CanonicalName: "T-Mobile",
			Category:      "Utilities",
			MerchantType:  model.MerchantTypeUtility,
			Aliases:       []string{"T MOBILE", "TMOBILE"},
		},

		// Healthcare
		{
			ID:            "cvs",
			CanonicalName: "CVS Pharmacy",
			Category:      "Healthcare",
			MerchantType:  model.MerchantTypeHealthcare,
			Aliases:       []string{"CVS", "CVS/PHARMACY"},
		},
		{
			ID:            "walgreens",
			CanonicalName: "Walgreens",
			Category:      "Healthcare",
			MerchantType:  model.MerchantTypeHealthcare,
			Aliases:       []string{"WALGREENS"},
		},

		// Travel
		{
			ID:            "airbnb",
			CanonicalName: "Airbnb",
			Category:      "Travel",
			MerchantType:  model.MerchantTypeTravel,
			Aliases:       []string{"AIRBNB"},
		},
		{
			ID:            "delta",
			CanonicalName: "Delta Air Lines",
			Category:      "Travel",
			MerchantType:  model.MerchantTypeTravel,
			Aliases:       []string{"DELTA AIR", "DELTA AIRLINES"},
		},
		{
			ID:            "united",
			CanonicalName: "United Airlines",
			Category:      "Travel",
			MerchantType:  model.MerchantTypeTravel,
			Aliases:       []string{"UNITED AIR", "UNITED AIRLINES"},
		},

		// Financial
		{
			ID:            "paypal",
			CanonicalName: "PayPal",
			Category:      "Transfers",
			MerchantType:  model.MerchantTypeFinancial,
			Aliases:       []string{"PAYPAL"},
			Patterns:      []string{`PAYPAL\s*\*`},
		},
		{
			ID:            "venmo",
			CanonicalName: "Venmo",
			Category:      "Transfers",
			MerchantType:  model.MerchantTypeFinancial,
			Aliases:       []string{"VENMO"},
		},
	}
}
