// Package mapper flattens persisted entities into the shapes returned to
// clients. Categories and banners serialize as-is; products need flattening
// because the category graph and the decimal fields have their own output
// rules.
package mapper

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"katalog/internal/models"
)

// ProductResponse is the flattened product shape. Price keeps every digit it
// was written with; stock drops trailing fractional zeros.
type ProductResponse struct {
	ID         uuid.UUID    `json:"id"`
	CategoryID *uuid.UUID   `json:"CategoryId"`
	Name       string       `json:"name"`
	ImageURL   string       `json:"image_url"`
	Price      string       `json:"price"`
	Stock      string       `json:"stock"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Category   *CategoryRef `json:"Category,omitempty"`
}

// CategoryRef is the nested category fragment, name only.
type CategoryRef struct {
	Name string `json:"name"`
}

// ToProductResponse flattens a persisted product.
func ToProductResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		ImageURL:   p.ImageURL,
		Price:      p.Price.String(),
		Stock:      stripTrailingZeros(p.Stock),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Category != nil {
		resp.Category = &CategoryRef{Name: p.Category.Name}
	}
	return resp
}

// ToProductResponses flattens a page of products.
func ToProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}

// stripTrailingZeros renders a decimal without trailing fractional zeros:
// "9.00" becomes "9", "1.50" becomes "1.5", "100" stays "100".
func stripTrailingZeros(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
