// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrCantCreateProduct = errors.New("can't create product")
var ErrNoProducts = errors.New("no products")
var ErrInvalidProduct = errors.New("invalid product")
var ErrInvalidBrand = errors.New("invalid brand")
