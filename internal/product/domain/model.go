package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/seo"
	"gorm.io/datatypes"
)

// Status describes stock visibility of a product.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
	StatusHidden     Status = "hidden"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock, StatusHidden:
		return true
	default:
		return false
	}
}

// Pricing is the per-ton rate block. Retail mirrors the legacy PricePerTon
// field and PricePerMeter mirrors its legacy twin; Normalize keeps them in sync.
type Pricing struct {
	Retail        float64 `json:"retail"`
	Wholesale     float64 `json:"wholesale"`
	Dealer        float64 `json:"dealer"`
	PricePerMeter float64 `json:"pricePerMeter"`
	VATIncluded   bool    `json:"vatIncluded"`
}

// Attribute is a free-form product characteristic. Entries are not linked to
// the global attribute vocabulary by id; the name is the contract.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Document is a downloadable certificate, GOST sheet or passport.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Product is the camelCase in-memory representation used by application logic
// and serialized to API clients.
type Product struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Article       string         `json:"article"`
	Category      string         `json:"category"`
	Tags          []string       `json:"tags"`
	PricePerTon   float64        `json:"pricePerTon"`
	PricePerMeter float64        `json:"pricePerMeter"`
	Pricing       Pricing        `json:"pricing"`
	Stock         float64        `json:"stock"`
	Status        Status         `json:"status"`
	SteelGrade    string         `json:"steelGrade"`
	Dimensions    string         `json:"dimensions"`
	Attributes    []Attribute    `json:"attributes"`
	Image         string         `json:"image"`
	Description   string         `json:"description,omitempty"`
	Documents     []Document     `json:"documents"`
	SEO           seo.Descriptor `json:"seo"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Row is the persisted products record: snake_case scalar columns plus JSON
// columns for the nested structures.
type Row struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name          string         `gorm:"column:name;type:text;not null"`
	Slug          string         `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Article       string         `gorm:"column:article;type:text;index"`
	Category      string         `gorm:"column:category;type:text;index"`
	PricePerTon   float64        `gorm:"column:price_per_ton"`
	PricePerMeter float64        `gorm:"column:price_per_meter"`
	Stock         float64        `gorm:"column:stock"`
	Status        string         `gorm:"column:status;type:text"`
	SteelGrade    string         `gorm:"column:steel_grade;type:text"`
	Dimensions    string         `gorm:"column:dimensions;type:text"`
	Image         string         `gorm:"column:image;type:text"`
	Description   string         `gorm:"column:description;type:text"`
	Pricing       datatypes.JSON `gorm:"column:pricing"`
	Attributes    datatypes.JSON `gorm:"column:attributes"`
	SEO           datatypes.JSON `gorm:"column:seo"`
	Tags          datatypes.JSON `gorm:"column:tags"`
	Documents     datatypes.JSON `gorm:"column:documents"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (Row) TableName() string { return "products" }

// SEOInput adapts the product for the template generator.
func (p Product) SEOInput() seo.ProductInput {
	return seo.ProductInput{
		Name:        p.Name,
		Category:    p.Category,
		SteelGrade:  p.SteelGrade,
		Dimensions:  p.Dimensions,
		PricePerTon: p.PricePerTon,
		SEO:         p.SEO,
	}
}

// Normalize reconciles the legacy per-ton/per-meter mirrors with the pricing
// block. A non-zero block value wins; otherwise the legacy field seeds it.
// After a call both views agree.
func (p *Product) Normalize() {
	if p.Pricing.Retail == 0 && p.PricePerTon != 0 {
		p.Pricing.Retail = p.PricePerTon
	}
	if p.Pricing.PricePerMeter == 0 && p.PricePerMeter != 0 {
		p.Pricing.PricePerMeter = p.PricePerMeter
	}
	p.PricePerTon = p.Pricing.Retail
	p.PricePerMeter = p.Pricing.PricePerMeter

	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Attributes == nil {
		p.Attributes = []Attribute{}
	}
	if p.Documents == nil {
		p.Documents = []Document{}
	}
}

// ParseID converts an API id into the persisted snowflake value.
func ParseID(id string) (int64, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return parsed.Int64(), nil
}
