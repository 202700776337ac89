package domain

import "github.com/shopspring/decimal"

// Offer is a single raw entry from the shopping search result set.
// Every field may be empty; the collaborator omits fields freely.
type Offer struct {
	Title    string
	RawPrice string
	Store    string
	Link     string
}

// NormalizedOffer is an Offer whose price string parsed into an exact
// decimal. Price is non-negative and compared by numeric value.
type NormalizedOffer struct {
	Product string
	Price   decimal.Decimal
	Store   string
	Link    string
}
