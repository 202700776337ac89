package registry

import (
	"strings"
	"sync"

	"github.com/precoscan/backend/internal/domain"
)

// MemoryRegistry is a thread-safe, insertion-ordered in-memory product store.
// It lives for the process lifetime; there is no persistence.
type MemoryRegistry struct {
	products []domain.Product
	names    map[string]struct{}
	mutex    sync.RWMutex
}

// NewMemoryRegistry creates an empty in-memory registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		names: make(map[string]struct{}),
	}
}

// Add registers a product. The name must be non-empty after trimming and
// must not already be registered; a rejected add leaves the registry
// untouched.
func (r *MemoryRegistry) Add(product domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)

	if product.Name == "" {
		return domain.ErrInvalidProduct
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.names[product.Name]; exists {
		return domain.ErrProductExists
	}

	r.names[product.Name] = struct{}{}
	r.products = append(r.products, product)
	return nil
}

// List returns a snapshot of the registered products in insertion order.
// The returned slice is a copy; mutating it does not affect the registry,
// and registrations arriving mid-iteration are simply not in the snapshot.
func (r *MemoryRegistry) List() []domain.Product {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	snapshot := make([]domain.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot
}

// Len returns the current number of registered products
func (r *MemoryRegistry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.products)
}
