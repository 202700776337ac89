package usecase

import (
	"context"
	"log"

	"github.com/precoscan/backend/internal/domain"
)

// PriceServiceConfig holds configuration for the price service
type PriceServiceConfig struct {
	EnableDebugLogging bool
}

// PriceService resolves advertised prices for registered products through
// the shopping search client. Lookups run sequentially in registration
// order, one external call per product per request; a failure on one
// product never aborts the rest.
type PriceService struct {
	registry domain.ProductRegistry
	shopping domain.ShoppingClient
	debug    bool
}

// NewPriceService creates a new price service with dependencies
func NewPriceService(
	registry domain.ProductRegistry,
	shopping domain.ShoppingClient,
	config PriceServiceConfig,
) *PriceService {
	return &PriceService{
		registry: registry,
		shopping: shopping,
		debug:    config.EnableDebugLogging,
	}
}

// BestPrices returns the cheapest parsed offer per registered product, in
// registration order. Each result is labeled with the registered product
// name. A product with no parseable offers contributes nothing; that is
// absence, not an error. Cancellation stops further lookups and returns
// whatever was gathered so far.
func (s *PriceService) BestPrices(ctx context.Context) []domain.NormalizedOffer {
	products := s.registry.List()
	results := make([]domain.NormalizedOffer, 0, len(products))

	for _, product := range products {
		if ctx.Err() != nil {
			log.Printf("[PRECOS] resolution cancelled after %d results: %v", len(results), ctx.Err())
			break
		}

		best, ok := s.resolveBest(ctx, product)
		if !ok {
			continue
		}
		results = append(results, best)
	}

	return results
}

// AllPrices returns every parsed offer across every registered product,
// unfiltered and in registration order. Entries keep the offer's own
// title as label rather than the registered product name; best-price
// results label with the registered name instead, and the asymmetry is
// part of the service's contract.
func (s *PriceService) AllPrices(ctx context.Context) []domain.NormalizedOffer {
	products := s.registry.List()
	results := make([]domain.NormalizedOffer, 0, len(products))

	for _, product := range products {
		if ctx.Err() != nil {
			log.Printf("[PRECOS] resolution cancelled after %d results: %v", len(results), ctx.Err())
			break
		}

		results = append(results, s.parsedOffers(ctx, product)...)
	}

	return results
}

// resolveBest reduces one product's parsed offers to the minimum price.
// Ties keep the earliest offer in the collaborator's result order.
func (s *PriceService) resolveBest(ctx context.Context, product domain.Product) (domain.NormalizedOffer, bool) {
	parsed := s.parsedOffers(ctx, product)
	if len(parsed) == 0 {
		return domain.NormalizedOffer{}, false
	}

	best := parsed[0]
	for _, candidate := range parsed[1:] {
		if candidate.Price.LessThan(best.Price) {
			best = candidate
		}
	}

	best.Product = product.Name
	return best, true
}

// parsedOffers performs the single external lookup for one product and
// normalizes the candidates. Unparsable candidates are logged and
// dropped; a collaborator failure is logged and yields zero offers.
func (s *PriceService) parsedOffers(ctx context.Context, product domain.Product) []domain.NormalizedOffer {
	query := BuildSearchQuery(product.Name, product.Category)

	offers, err := s.shopping.Search(ctx, query)
	if err != nil {
		log.Printf("[PRECOS] search failed for product %q: %v", product.Name, err)
		return nil
	}

	parsed := make([]domain.NormalizedOffer, 0, len(offers))
	for _, offer := range offers {
		price, err := ParsePrice(offer.RawPrice)
		if err != nil {
			log.Printf("[PRECOS] skipping offer %q from %q: %v", offer.Title, offer.Store, err)
			continue
		}

		parsed = append(parsed, domain.NormalizedOffer{
			Product: offer.Title,
			Price:   price,
			Store:   offer.Store,
			Link:    offer.Link,
		})
	}

	if s.debug {
		log.Printf("[PRECOS] product %q: %d offers, %d parsed", product.Name, len(offers), len(parsed))
	}

	return parsed
}
