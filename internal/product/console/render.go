package console

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abgdnv/inventory/internal/product/service"
)

const shortIDLen = 8

// formatRow renders one line of the product list; seq is 1-based.
func formatRow(seq int, p service.ProductDto) string {
	return fmt.Sprintf("%d. ID: %s. Name: %s, brand: %s, price %s, stock: %d, updated at: %s",
		seq,
		shortID(p.ID),
		p.Name,
		p.Brand,
		formatPrice(p.Price),
		p.Stock,
		p.UpdatedAt.Format(time.DateTime),
	)
}

// formatMatch renders a search hit with the full ID so it can be pasted into update or delete.
func formatMatch(p service.ProductDto) string {
	return fmt.Sprintf("ID: %s. Name: %s - Brand: %s.", p.ID, p.Name, p.Brand)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
