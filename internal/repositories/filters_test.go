package repositories_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProductFilter_ZeroValueMatchesEverything(t *testing.T) {
	filter := repositories.ProductFilter{}

	assert.Empty(t, filter.Scopes())
	assert.True(t, filter.Match(&models.Product{Name: "anything", Price: dec("99.99")}))
	assert.True(t, filter.Match(&models.Product{}))
}

func TestProductFilter_BlankNameContributesNoConstraint(t *testing.T) {
	filter := repositories.ProductFilter{Name: "   "}

	assert.Empty(t, filter.Scopes())
	assert.True(t, filter.Match(&models.Product{Name: "bakso"}))
}

func TestProductFilter_NameContainsIgnoreCase(t *testing.T) {
	filter := repositories.ProductFilter{Name: "  PHO "}

	assert.Len(t, filter.Scopes(), 1)
	assert.True(t, filter.Match(&models.Product{Name: "Pho Bo Special"}))
	assert.True(t, filter.Match(&models.Product{Name: "telephone"}))
	assert.False(t, filter.Match(&models.Product{Name: "bakso"}))
}

func TestProductFilter_PriceRangeIsInclusive(t *testing.T) {
	min := dec("10")
	max := dec("20")
	filter := repositories.ProductFilter{MinPrice: &min, MaxPrice: &max}

	assert.Len(t, filter.Scopes(), 2)
	assert.True(t, filter.Match(&models.Product{Price: dec("10")}))
	assert.True(t, filter.Match(&models.Product{Price: dec("20")}))
	assert.True(t, filter.Match(&models.Product{Price: dec("15.50")}))
	assert.False(t, filter.Match(&models.Product{Price: dec("9.99")}))
	assert.False(t, filter.Match(&models.Product{Price: dec("20.01")}))
}

func TestProductFilter_CategoryEquality(t *testing.T) {
	wanted := uuid.New()
	other := uuid.New()
	filter := repositories.ProductFilter{CategoryID: &wanted}

	assert.True(t, filter.Match(&models.Product{CategoryID: &wanted}))
	assert.False(t, filter.Match(&models.Product{CategoryID: &other}))
	assert.False(t, filter.Match(&models.Product{CategoryID: nil}))
}

func TestProductFilter_ActiveCriteriaCombineWithAnd(t *testing.T) {
	min := dec("10")
	filter := repositories.ProductFilter{Name: "pho", MinPrice: &min}

	assert.True(t, filter.Match(&models.Product{Name: "Pho Ga", Price: dec("12")}))
	assert.False(t, filter.Match(&models.Product{Name: "Pho Ga", Price: dec("8")}))
	assert.False(t, filter.Match(&models.Product{Name: "Bakso", Price: dec("12")}))
}

func TestCategoryFilter_NameContains(t *testing.T) {
	assert.True(t, repositories.CategoryFilter{}.Match(&models.Category{Name: "Drinks"}))
	assert.True(t, repositories.CategoryFilter{Name: "dri"}.Match(&models.Category{Name: "Drinks"}))
	assert.False(t, repositories.CategoryFilter{Name: "food"}.Match(&models.Category{Name: "Drinks"}))
}

func TestBannerFilter_StatusEquals(t *testing.T) {
	active := true
	filter := repositories.BannerFilter{Status: &active}

	assert.True(t, filter.Match(&models.Banner{Title: "Promo", Status: true}))
	assert.False(t, filter.Match(&models.Banner{Title: "Promo", Status: false}))

	// nil status filters nothing
	assert.True(t, repositories.BannerFilter{}.Match(&models.Banner{Status: false}))
}

func TestBannerFilter_TitleAndStatusCombine(t *testing.T) {
	inactive := false
	filter := repositories.BannerFilter{Title: "sale", Status: &inactive}

	assert.True(t, filter.Match(&models.Banner{Title: "Mid Year SALE", Status: false}))
	assert.False(t, filter.Match(&models.Banner{Title: "Mid Year SALE", Status: true}))
	assert.False(t, filter.Match(&models.Banner{Title: "New Arrivals", Status: false}))
}
