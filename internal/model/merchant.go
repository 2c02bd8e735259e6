package model

// MerchantType groups catalog entries by business kind.
type MerchantType string

// Merchant type constants.
const (
	MerchantTypeRetail        MerchantType = "retail"
	MerchantTypeRestaurant    MerchantType = "restaurant"
	MerchantTypeGrocery       MerchantType = "grocery"
	MerchantTypeSubscription  MerchantType = "subscription"
	MerchantTypeTransport     MerchantType = "transport"
	MerchantTypeUtility       MerchantType = "utility"
	MerchantTypeFinancial     MerchantType = "financial"
	MerchantTypeHealthcare    MerchantType = "healthcare"
	MerchantTypeTravel        MerchantType = "travel"
	MerchantTypeEntertainment MerchantType = "entertainment"
)

// Merchant is a curated catalog entry for a known business. Entries are
// immutable once loaded; adding a custom merchant rebuilds the catalog
// indices wholesale.
type Merchant struct {
	ID            string       `yaml:"id"`
	CanonicalName string       `yaml:"canonical_name"`
	Category      string       `yaml:"category"`
	MerchantType  MerchantType `yaml:"merchant_type"`
	Aliases       []string     `yaml:"aliases,omitempty"`
	Patterns      []string     `yaml:"patterns,omitempty"`
	CommonAmounts []float64    `yaml:"common_amounts,omitempty"`
}

// MatchType identifies which identification stage produced a match.
type MatchType string

// Match type constants, in stage order.
const (
	MatchExact   MatchType = "exact"
	MatchAlias   MatchType = "alias"
	MatchPattern MatchType = "pattern"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
)

// MerchantMatch is the transient result of resolving a free-text description
// to a catalog merchant. It is produced per query and never persisted.
type MerchantMatch struct {
	Merchant       *Merchant
	MatchType      MatchType
	MatchedPattern string
	Confidence     float64
}
