package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/precoscan/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// stubRegistry serves a fixed product list in insertion order
type stubRegistry struct {
	products []domain.Product
}

func (s *stubRegistry) Add(product domain.Product) error {
	s.products = append(s.products, product)
	return nil
}

func (s *stubRegistry) List() []domain.Product {
	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

func (s *stubRegistry) Len() int {
	return len(s.products)
}

// stubShopping maps sanitized queries to canned offers or errors and
// records every lookup, optionally cancelling a context mid-resolution.
type stubShopping struct {
	offers      map[string][]domain.Offer
	errs        map[string]error
	calls       []string
	cancelAfter context.CancelFunc
}

func (s *stubShopping) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Offer, error) {
	s.calls = append(s.calls, query.Query)
	if s.cancelAfter != nil {
		s.cancelAfter()
	}
	if err := s.errs[query.Query]; err != nil {
		return nil, err
	}
	return s.offers[query.Query], nil
}

func newTestService(registry domain.ProductRegistry, shopping domain.ShoppingClient) *PriceService {
	return NewPriceService(registry, shopping, PriceServiceConfig{})
}

func TestBestPrices_SelectsMinimum(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{{Name: "Playstation 5"}}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Playstation 5": {
				{Title: "PS5 Standard", RawPrice: "R$ 120,00", Store: "Loja X", Link: "https://x.example/ps5"},
				{Title: "PS5 Promo", RawPrice: "R$ 99,90", Store: "Loja Y", Link: "https://y.example/ps5"},
				{Title: "PS5 Bundle", RawPrice: "R$ 150,00", Store: "Loja Z", Link: "https://z.example/ps5"},
			},
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	best := results[0]
	if !best.Price.Equal(decimal.RequireFromString("99.90")) {
		t.Errorf("Price = %s, want 99.90", best.Price)
	}
	if best.Product != "Playstation 5" {
		t.Errorf("Product = %q, want registered name %q", best.Product, "Playstation 5")
	}
	if best.Store != "Loja Y" {
		t.Errorf("Store = %q, want %q", best.Store, "Loja Y")
	}
	if best.Link != "https://y.example/ps5" {
		t.Errorf("Link = %q, want the cheapest offer's link", best.Link)
	}
}

func TestBestPrices_TieKeepsFirstInResultOrder(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{{Name: "Teclado"}}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Teclado": {
				{Title: "Teclado ABNT", RawPrice: "R$ 50,00", Store: "A"},
				{Title: "Teclado ABNT2", RawPrice: "R$ 50,00", Store: "B"},
			},
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Store != "A" {
		t.Errorf("Store = %q, want first-seen store A", results[0].Store)
	}
}

func TestBestPrices_SkipsUnparsableCandidates(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{{Name: "Monitor"}}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Monitor": {
				{Title: "Monitor sem preço", RawPrice: "consulte", Store: "A"},
				{Title: "Monitor 24", RawPrice: "R$ 700,00", Store: "B"},
				{Title: "Monitor vazio", RawPrice: "", Store: "C"},
			},
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Store != "B" {
		t.Errorf("Store = %q, want B (only parseable candidate)", results[0].Store)
	}
}

func TestBestPrices_NoParsedOffersContributesNothing(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{{Name: "Raridade"}}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Raridade": {},
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0 (absence is normal)", len(results))
	}
}

func TestBestPrices_IsolatesCollaboratorFailure(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{
		{Name: "Antes"},
		{Name: "Quebrado"},
		{Name: "Depois"},
	}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Antes":  {{Title: "Antes", RawPrice: "R$ 10,00", Store: "A"}},
			"Depois": {{Title: "Depois", RawPrice: "R$ 30,00", Store: "C"}},
		},
		errs: map[string]error{
			"Quebrado": domain.ErrSearchAPIFailure,
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Product != "Antes" || results[1].Product != "Depois" {
		t.Errorf("results = [%q, %q], want registry order around the failure", results[0].Product, results[1].Product)
	}
	if len(shopping.calls) != 3 {
		t.Errorf("lookups = %d, want exactly one per product", len(shopping.calls))
	}
}

func TestAllPrices_ReturnsEveryParsedOfferLabeledByTitle(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{
		{Name: "Console"},
		{Name: "Jogo"},
	}}
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Console": {
				{Title: "Console Edição Especial", RawPrice: "R$ 2.500,00", Store: "A"},
				{Title: "Console Usado", RawPrice: "R$ 1.800,00", Store: "B"},
			},
			"Jogo": {
				{Title: "Jogo de Corrida", RawPrice: "R$ 199,90", Store: "C"},
			},
		},
	}

	results := newTestService(registry, shopping).AllPrices(context.Background())

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3 (no best-price reduction)", len(results))
	}

	wantTitles := []string{"Console Edição Especial", "Console Usado", "Jogo de Corrida"}
	for i, want := range wantTitles {
		if results[i].Product != want {
			t.Errorf("results[%d].Product = %q, want offer title %q", i, results[i].Product, want)
		}
	}
}

func TestAllPrices_PassesCategoryToSearch(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{
		{Name: "Notebook", Category: "Informática"},
	}}

	var gotQuery domain.SearchQuery
	shopping := &captureShopping{query: &gotQuery}

	newTestService(registry, shopping).AllPrices(context.Background())

	if gotQuery.Query != "Notebook" {
		t.Errorf("Query = %q, want %q", gotQuery.Query, "Notebook")
	}
	if gotQuery.Category != "Informática" {
		t.Errorf("Category = %q, want %q", gotQuery.Category, "Informática")
	}
}

// captureShopping records the last query and returns no offers
type captureShopping struct {
	query *domain.SearchQuery
}

func (c *captureShopping) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Offer, error) {
	*c.query = query
	return nil, nil
}

func TestBestPrices_CancellationReturnsPartialResults(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{
		{Name: "Primeiro"},
		{Name: "Segundo"},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	shopping := &stubShopping{
		offers: map[string][]domain.Offer{
			"Primeiro": {{Title: "Primeiro", RawPrice: "R$ 5,00", Store: "A"}},
			"Segundo":  {{Title: "Segundo", RawPrice: "R$ 6,00", Store: "B"}},
		},
		cancelAfter: cancel,
	}

	results := newTestService(registry, shopping).BestPrices(ctx)

	if len(shopping.calls) != 1 {
		t.Fatalf("lookups = %d, want 1 (no further lookups after cancel)", len(shopping.calls))
	}
	if len(results) != 1 || results[0].Product != "Primeiro" {
		t.Errorf("results = %+v, want the single result gathered before cancellation", results)
	}
}

func TestBestPrices_EmptyRegistry(t *testing.T) {
	results := newTestService(&stubRegistry{}, &stubShopping{}).BestPrices(context.Background())

	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestBestPrices_AllLookupsFailing(t *testing.T) {
	registry := &stubRegistry{products: []domain.Product{{Name: "Um"}, {Name: "Dois"}}}
	shopping := &stubShopping{
		errs: map[string]error{
			"Um":   errors.New("timeout"),
			"Dois": errors.New("timeout"),
		},
	}

	results := newTestService(registry, shopping).BestPrices(context.Background())

	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0 (request still succeeds overall)", len(results))
	}
}
