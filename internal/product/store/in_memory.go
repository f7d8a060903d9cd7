package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/abgdnv/inventory/internal/product/errors"
	"github.com/google/uuid"
)

// inMemory implements ProductStore using an in-memory map.
type inMemory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
	order    []uuid.UUID // insertion order
	newID    func() uuid.UUID
	now      func() time.Time
}

// Option configures the in-memory store.
type Option func(*inMemory)

// WithIDGenerator replaces uuid.New as the source of product IDs.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *inMemory) {
		s.newID = gen
	}
}

// WithClock replaces time.Now as the source of UpdatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *inMemory) {
		s.now = now
	}
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore(opts ...Option) ProductStore {
	s := &inMemory{
		products: make(map[uuid.UUID]Product),
		newID:    uuid.New,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List retrieves all products.
func (s *inMemory) List() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, errors.ErrNoProducts
	}
	list := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.products[id])
	}
	return list, nil
}

// SearchByName returns the first product, in insertion order, whose name contains query.
func (s *inMemory) SearchByName(query string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, errors.ErrNoProducts
	}
	q := strings.ToLower(query)
	for _, id := range s.order {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), q) {
			return &p, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

// Create creates a new product and returns it.
func (s *inMemory) Create(name string, brand Brand, price float64, stock int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:        s.newID(),
		Name:      name,
		Brand:     brand,
		Price:     price,
		Stock:     stock,
		UpdatedAt: s.now(),
	}
	if _, exists := s.products[product.ID]; exists {
		return nil, errors.ErrCantCreateProduct
	}
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)

	return &product, nil
}

// Update overwrites the product fields and refreshes UpdatedAt.
func (s *inMemory) Update(id uuid.UUID, upd ProductUpdate) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	product.Name = upd.Name
	product.Brand = upd.Brand
	product.Price = upd.Price
	product.Stock = upd.Stock
	product.UpdatedAt = s.now()
	s.products[id] = product

	return &product, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return errors.ErrProductNotFound
	}
	delete(s.products, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}
