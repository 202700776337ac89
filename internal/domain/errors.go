package domain

import "errors"

var (
	// ErrInvalidProduct is returned when a product name is empty after trimming
	ErrInvalidProduct = errors.New("product name is empty")

	// ErrProductExists is returned when a product name is already registered
	ErrProductExists = errors.New("product already registered")

	// ErrUnparsablePrice is returned when a price string cannot be parsed into a decimal
	ErrUnparsablePrice = errors.New("unparsable price string")

	// ErrSearchAPIFailure is returned when the shopping search API request fails
	ErrSearchAPIFailure = errors.New("shopping search API request failed")
)
