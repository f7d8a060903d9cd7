package store

import (
	"fmt"
	"strings"

	"github.com/abgdnv/inventory/internal/product/errors"
)

// Brand is the manufacturer of a product. Only the declared constants are valid.
type Brand int

const (
	BrandApple Brand = iota + 1
	BrandGoogle
	BrandSamsung
)

var brandNames = map[Brand]string{
	BrandApple:   "Apple",
	BrandGoogle:  "Google",
	BrandSamsung: "Samsung",
}

// Brands lists every valid brand.
func Brands() []Brand {
	return []Brand{BrandApple, BrandGoogle, BrandSamsung}
}

// ParseBrand matches s against the brand names, ignoring case and surrounding spaces.
func ParseBrand(s string) (Brand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apple":
		return BrandApple, nil
	case "google":
		return BrandGoogle, nil
	case "samsung":
		return BrandSamsung, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidBrand)
	}
}

// Valid reports whether b is one of the declared brands.
func (b Brand) Valid() bool {
	_, ok := brandNames[b]
	return ok
}

func (b Brand) String() string {
	if name, ok := brandNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Brand(%d)", int(b))
}
