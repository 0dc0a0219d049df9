package product

import "sync"

// Repository is the in-memory product registry. It holds the only shared
// mutable state in the service and is safe for concurrent use; records are
// stored and returned by value so callers never share memory with the map.
type Repository struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{products: make(map[string]Product)}
}

// List returns a snapshot of all current records. Order is unspecified.
func (r *Repository) List() []*Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		p := p // per-iteration copy; required while building with go < 1.22
		out = append(out, &p)
	}
	return out
}

// Get returns a copy of the record with the given id, or ErrNotFound.
func (r *Repository) Get(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Put inserts or replaces the record under p.ID.
func (r *Repository) Put(p *Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
}

// Delete removes the record with the given id, returning the removed record
// and whether anything was removed.
func (r *Repository) Delete(id string) (*Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	delete(r.products, id)
	return &p, true
}
