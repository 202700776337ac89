package domain

import "context"

// ProductRegistry defines the interface for the in-memory product store.
// List returns a point-in-time copy in insertion order, so callers can
// iterate while registrations keep arriving.
type ProductRegistry interface {
	Add(product Product) error
	List() []Product
	Len() int
}

// ShoppingClient defines the interface for the external shopping search API.
// An empty result set is a successful response, not an error.
type ShoppingClient interface {
	Search(ctx context.Context, query SearchQuery) ([]Offer, error)
}
