package domain

import (
	"testing"
	"time"

	"github.com/metalprom/catalog/internal/seo"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestFromRowDefaultsNilPricing(t *testing.T) {
	p := FromRow(Row{ID: 1, Name: "Лист 3мм"})

	assert.Equal(t, 0.0, p.Pricing.Retail)
	assert.Equal(t, 0.0, p.Pricing.Wholesale)
	assert.Equal(t, 0.0, p.Pricing.Dealer)
	assert.True(t, p.Pricing.VATIncluded)
}

func TestFromRowPartialPricingBlob(t *testing.T) {
	row := Row{ID: 1, Pricing: datatypes.JSON(`{"retail":45000,"vatIncluded":false}`)}
	p := FromRow(row)

	assert.Equal(t, 45000.0, p.Pricing.Retail)
	assert.Equal(t, 0.0, p.Pricing.Wholesale)
	assert.False(t, p.Pricing.VATIncluded)
}

func TestFromRowCoercesArrays(t *testing.T) {
	p := FromRow(Row{ID: 1})

	if p.Tags == nil || len(p.Tags) != 0 {
		t.Fatalf("tags must be an empty slice, got %#v", p.Tags)
	}
	if p.Documents == nil || len(p.Documents) != 0 {
		t.Fatalf("documents must be an empty slice, got %#v", p.Documents)
	}
	if p.Attributes == nil || len(p.Attributes) != 0 {
		t.Fatalf("attributes must be an empty slice, got %#v", p.Attributes)
	}
}

func TestFromRowSurvivesMalformedJSON(t *testing.T) {
	row := Row{
		ID:         1,
		Pricing:    datatypes.JSON(`"not an object"`),
		Tags:       datatypes.JSON(`{"oops":true}`),
		Attributes: datatypes.JSON(`garbage`),
		SEO:        datatypes.JSON(`42`),
	}

	p := FromRow(row)

	assert.Equal(t, 0.0, p.Pricing.Retail)
	assert.True(t, p.Pricing.VATIncluded)
	assert.Empty(t, p.Tags)
	assert.Empty(t, p.Attributes)
	assert.Equal(t, seo.Descriptor{}, p.SEO)
}

func TestToRowOmitsMissingID(t *testing.T) {
	row := ToRow(Product{Name: "Швеллер 10П", Slug: "shveller-10p"}, time.Now())
	if row.ID != 0 {
		t.Fatalf("a product without id must map to a zero-ID row, got %d", row.ID)
	}
}

func TestToRowStampsUpdatedAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	row := ToRow(Product{Name: "x", UpdatedAt: now.Add(-time.Hour)}, now)
	assert.Equal(t, now, row.UpdatedAt)
}

func TestRoundTripStability(t *testing.T) {
	before := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	original := Row{
		ID:            42,
		Name:          "Арматура стальная А500С",
		Slug:          "armatura-a500c",
		Article:       "ARM-001",
		Category:      "Арматура",
		PricePerTon:   45000,
		PricePerMeter: 45,
		Stock:         120,
		Status:        string(StatusInStock),
		SteelGrade:    "А500С",
		Dimensions:    "12мм",
		Image:         "https://example.com/armatura.jpg",
		Description:   "Рифленая арматура",
		Pricing:       datatypes.JSON(`{"retail":45000,"wholesale":42750,"dealer":38250,"pricePerMeter":45,"vatIncluded":true}`),
		Attributes:    datatypes.JSON(`[{"name":"Диаметр","value":"12мм","type":"number"}]`),
		SEO:           datatypes.JSON(`{"title":"Купить арматуру","description":"desc","keywords":["арматура"]}`),
		Tags:          datatypes.JSON(`["гост","опт"]`),
		Documents:     datatypes.JSON(`[{"name":"Сертификат","url":"https://example.com/cert.pdf","type":"certificate"}]`),
		UpdatedAt:     before,
	}

	now := before.Add(time.Minute)
	back := ToRow(FromRow(original), now)

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Name, back.Name)
	assert.Equal(t, original.Slug, back.Slug)
	assert.Equal(t, original.Article, back.Article)
	assert.Equal(t, original.Category, back.Category)
	assert.Equal(t, original.PricePerTon, back.PricePerTon)
	assert.Equal(t, original.PricePerMeter, back.PricePerMeter)
	assert.Equal(t, original.Stock, back.Stock)
	assert.Equal(t, original.Status, back.Status)
	assert.Equal(t, original.SteelGrade, back.SteelGrade)
	assert.Equal(t, original.Dimensions, back.Dimensions)

	// Nested structures survive a decode/encode cycle semantically.
	reread := FromRow(back)
	assert.Equal(t, FromRow(original).Pricing, reread.Pricing)
	assert.Equal(t, FromRow(original).Attributes, reread.Attributes)
	assert.Equal(t, FromRow(original).Tags, reread.Tags)
	assert.Equal(t, FromRow(original).Documents, reread.Documents)
	assert.Equal(t, FromRow(original).SEO, reread.SEO)

	if !back.UpdatedAt.After(original.UpdatedAt) {
		t.Fatalf("updated_at must advance: %v -> %v", original.UpdatedAt, back.UpdatedAt)
	}
}

func TestNormalizeKeepsMirrorsInSync(t *testing.T) {
	p := Product{PricePerTon: 52000, PricePerMeter: 120}
	p.Normalize()
	assert.Equal(t, 52000.0, p.Pricing.Retail)
	assert.Equal(t, 120.0, p.Pricing.PricePerMeter)

	p.Pricing.Retail = 60000
	p.Normalize()
	assert.Equal(t, 60000.0, p.PricePerTon)
}
