package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/seo"
	"gorm.io/datatypes"
)

// FromRow maps a persisted row into the fully-populated domain shape.
// Every JSON column is decoded defensively: null, absent or malformed bytes
// degrade to the default shape instead of propagating a parse error, so the
// result always has a complete pricing block and non-nil slices.
func FromRow(row Row) Product {
	return Product{
		ID:            snowflake.ID(row.ID).String(),
		Name:          row.Name,
		Slug:          row.Slug,
		Article:       row.Article,
		Category:      row.Category,
		Tags:          decodeStrings(row.Tags),
		PricePerTon:   row.PricePerTon,
		PricePerMeter: row.PricePerMeter,
		Pricing:       decodePricing(row.Pricing),
		Stock:         row.Stock,
		Status:        Status(row.Status),
		SteelGrade:    row.SteelGrade,
		Dimensions:    row.Dimensions,
		Attributes:    decodeAttributes(row.Attributes),
		Image:         row.Image,
		Description:   row.Description,
		Documents:     decodeDocuments(row.Documents),
		SEO:           decodeSEO(row.SEO),
		UpdatedAt:     row.UpdatedAt,
	}
}

// FromRows maps a result set.
func FromRows(rows []Row) []Product {
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}

// ToRow maps a domain product into its persisted form, stamping updated_at
// with the supplied time. A product without an id yields a zero-ID row; the
// repository assigns a fresh id on create so an empty primary key is never
// written.
func ToRow(p Product, now time.Time) Row {
	var id int64
	if p.ID != "" {
		if parsed, err := snowflake.ParseString(p.ID); err == nil {
			id = parsed.Int64()
		}
	}

	return Row{
		ID:            id,
		Name:          p.Name,
		Slug:          p.Slug,
		Article:       p.Article,
		Category:      p.Category,
		PricePerTon:   p.PricePerTon,
		PricePerMeter: p.PricePerMeter,
		Stock:         p.Stock,
		Status:        string(p.Status),
		SteelGrade:    p.SteelGrade,
		Dimensions:    p.Dimensions,
		Image:         p.Image,
		Description:   p.Description,
		Pricing:       encodeJSON(p.Pricing),
		Attributes:    encodeJSON(p.Attributes),
		SEO:           encodeJSON(p.SEO),
		Tags:          encodeJSON(p.Tags),
		Documents:     encodeJSON(p.Documents),
		UpdatedAt:     now.UTC(),
	}
}

func encodeJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func decodePricing(raw datatypes.JSON) Pricing {
	blob := struct {
		Retail        *float64 `json:"retail"`
		Wholesale     *float64 `json:"wholesale"`
		Dealer        *float64 `json:"dealer"`
		PricePerMeter *float64 `json:"pricePerMeter"`
		VATIncluded   *bool    `json:"vatIncluded"`
	}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &blob)
	}

	p := Pricing{VATIncluded: true}
	if blob.Retail != nil {
		p.Retail = *blob.Retail
	}
	if blob.Wholesale != nil {
		p.Wholesale = *blob.Wholesale
	}
	if blob.Dealer != nil {
		p.Dealer = *blob.Dealer
	}
	if blob.PricePerMeter != nil {
		p.PricePerMeter = *blob.PricePerMeter
	}
	if blob.VATIncluded != nil {
		p.VATIncluded = *blob.VATIncluded
	}
	return p
}

func decodeStrings(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) > 0 {
		var parsed []string
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed != nil {
			out = parsed
		}
	}
	return out
}

func decodeAttributes(raw datatypes.JSON) []Attribute {
	out := []Attribute{}
	if len(raw) > 0 {
		var parsed []Attribute
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed != nil {
			out = parsed
		}
	}
	return out
}

func decodeDocuments(raw datatypes.JSON) []Document {
	out := []Document{}
	if len(raw) > 0 {
		var parsed []Document
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed != nil {
			out = parsed
		}
	}
	return out
}

func decodeSEO(raw datatypes.JSON) seo.Descriptor {
	var d seo.Descriptor
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &d)
	}
	return d
}
