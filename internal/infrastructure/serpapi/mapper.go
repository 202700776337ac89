package serpapi

import "github.com/precoscan/backend/internal/domain"

// mapOffers converts raw shopping results into domain offers. The price
// stays a raw string here; normalization happens in the usecase layer so
// unparsable candidates can be skipped per item.
func mapOffers(results []shoppingResult) []domain.Offer {
	offers := make([]domain.Offer, 0, len(results))

	for _, result := range results {
		offers = append(offers, domain.Offer{
			Title:    result.Title,
			RawPrice: result.Price,
			Store:    result.Source,
			Link:     result.Link,
		})
	}

	return offers
}
