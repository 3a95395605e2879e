package repositories

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"katalog/internal/models"
)

// Scope is a single query constraint, composable via gorm's Scopes chain.
type Scope = func(*gorm.DB) *gorm.DB

// Filters collect the optional criteria of a list call. A zero-value filter
// matches every record: blank or nil criteria contribute no constraint, and
// the active ones are combined with AND. Scopes builds the SQL side for the
// GORM stores; Match is the same predicate evaluated in memory.

// ProductFilter narrows product listings.
type ProductFilter struct {
	Name       string
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Scopes returns the active constraints as gorm scopes.
func (f ProductFilter) Scopes() []Scope {
	var scopes []Scope
	if s := containsIgnoreCase("name", f.Name); s != nil {
		scopes = append(scopes, s)
	}
	if f.CategoryID != nil {
		id := *f.CategoryID
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("category_id = ?", id)
		})
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("price >= ?", min)
		})
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("price <= ?", max)
		})
	}
	return scopes
}

// Match reports whether the product satisfies every active criterion.
func (f ProductFilter) Match(p *models.Product) bool {
	if !matchContains(p.Name, f.Name) {
		return false
	}
	if f.CategoryID != nil {
		if p.CategoryID == nil || *p.CategoryID != *f.CategoryID {
			return false
		}
	}
	if f.MinPrice != nil && p.Price.Cmp(*f.MinPrice) < 0 {
		return false
	}
	if f.MaxPrice != nil && p.Price.Cmp(*f.MaxPrice) > 0 {
		return false
	}
	return true
}

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	Name string
}

// Scopes returns the active constraints as gorm scopes.
func (f CategoryFilter) Scopes() []Scope {
	var scopes []Scope
	if s := containsIgnoreCase("name", f.Name); s != nil {
		scopes = append(scopes, s)
	}
	return scopes
}

// Match reports whether the category satisfies every active criterion.
func (f CategoryFilter) Match(c *models.Category) bool {
	return matchContains(c.Name, f.Name)
}

// BannerFilter narrows banner listings.
type BannerFilter struct {
	Title  string
	Status *bool
}

// Scopes returns the active constraints as gorm scopes.
func (f BannerFilter) Scopes() []Scope {
	var scopes []Scope
	if s := containsIgnoreCase("title", f.Title); s != nil {
		scopes = append(scopes, s)
	}
	if f.Status != nil {
		status := *f.Status
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", status)
		})
	}
	return scopes
}

// Match reports whether the banner satisfies every active criterion.
func (f BannerFilter) Match(b *models.Banner) bool {
	if !matchContains(b.Title, f.Title) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	return true
}

// containsIgnoreCase builds a case-insensitive substring scope for column, or
// nil when the criterion is blank.
func containsIgnoreCase(column string, value string) Scope {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	like := "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ?", like)
	}
}

// matchContains is the in-memory twin of containsIgnoreCase.
func matchContains(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(strings.TrimSpace(value)))
}
