package product

import (
	"testing"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	// No backing store: the service serves the fixture catalog
	return NewService(nil, &config.Config{}, logger)
}

func TestListProducts_FixtureFallback(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(&ListRequest{})

	require.Len(t, products, 4)
	assert.Equal(t, "Panadol Advance 500mg", products[0].NameEn)
}

func TestListProducts_FilterByCategory(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(&ListRequest{Category: "Vitamins"})

	require.Len(t, products, 1)
	assert.Equal(t, "Folic Acid 5mg", products[0].NameEn)
}

func TestListProducts_FeaturedOnly(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(&ListRequest{FeaturedOnly: true})

	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.IsFeatured)
	}
}

func TestListProducts_SearchMatchesEitherLanguage(t *testing.T) {
	svc := newTestService(t)

	byEnglishName := svc.ListProducts(&ListRequest{Query: "pana"})
	require.Len(t, byEnglishName, 1)
	assert.Equal(t, "1", byEnglishName[0].ID)

	byArabicName := svc.ListProducts(&ListRequest{Query: "فيتامين"})
	require.Len(t, byArabicName, 1)
	assert.Equal(t, "2", byArabicName[0].ID)

	byBrand := svc.ListProducts(&ListRequest{Query: "solgar"})
	require.Len(t, byBrand, 1)
	assert.Equal(t, "4", byBrand[0].ID)
}

func TestListProducts_Limit(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(&ListRequest{Limit: 2})

	assert.Len(t, products, 2)
}

func TestListProducts_NoMatches(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(&ListRequest{Query: "nonexistent product"})

	assert.Empty(t, products)
}

func TestGetProductByID(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.GetProductByID("2")

	require.NoError(t, err)
	assert.Equal(t, "Vitamin C Serum", p.NameEn)
	assert.Equal(t, int64(8500), p.Price)
}

func TestGetProductByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetProductByID("999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProductByID("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategories_FixtureFallback(t *testing.T) {
	svc := newTestService(t)

	categories := svc.ListCategories()

	require.Len(t, categories, 13)
	assert.Equal(t, "Fragrances", categories[0].NameEn)
	assert.Equal(t, "العطور", categories[0].NameAr)
	assert.NotEmpty(t, categories[0].SubCategories)
}

func TestProduct_LocalizedAccessors(t *testing.T) {
	p := Product{NameAr: "بانادول", NameEn: "Panadol", BrandAr: "جي اس كي", BrandEn: "GSK"}

	assert.Equal(t, "بانادول", p.Name("ar"))
	assert.Equal(t, "Panadol", p.Name("en"))
	assert.Equal(t, "جي اس كي", p.Brand("ar"))
	assert.Equal(t, "GSK", p.Brand("en"))
}

func TestProduct_HasDiscount(t *testing.T) {
	withDiscount := Product{Price: 1250, OldPrice: 1500}
	assert.True(t, withDiscount.HasDiscount())

	fullPrice := Product{Price: 1250}
	assert.False(t, fullPrice.HasDiscount())
}
