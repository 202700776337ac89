package domain

// Product represents a registered product the service tracks prices for.
// Identity is the name; the category tag is optional and narrows the
// shopping search when present.
type Product struct {
	Name     string `json:"nome"`
	Category string `json:"categoria,omitempty"`
}

// SearchQuery is the cleaned query handed to the shopping search client.
// Category is empty when the product carries no tag; an empty category
// must not produce a filter parameter on the wire.
type SearchQuery struct {
	Query    string
	Category string
}
