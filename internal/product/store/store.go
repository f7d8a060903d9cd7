// Package store provides an interface for product storage operations.
package store

import (
	"time"

	"github.com/google/uuid"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// List returns all products in insertion order.
	// Returns ErrNoProducts if the store is empty.
	List() ([]Product, error)

	// SearchByName returns the first product whose name contains the query, ignoring case.
	// Returns ErrNoProducts if the store is empty and ErrProductNotFound if nothing matches.
	SearchByName(query string) (*Product, error)

	// Create adds a new product to the system.
	// Returns error if the product cannot be created.
	Create(name string, brand Brand, price float64, stock int32) (*Product, error)

	// Update replaces name, brand, price and stock of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(id uuid.UUID, upd ProductUpdate) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(id uuid.UUID) error
}

// Product represents a product entity in the store.
type Product struct {
	ID        uuid.UUID
	Name      string
	Brand     Brand
	Price     float64
	Stock     int32
	UpdatedAt time.Time
}

// ProductUpdate carries the replacement values for an existing product.
type ProductUpdate struct {
	Name  string
	Brand Brand
	Price float64
	Stock int32
}
