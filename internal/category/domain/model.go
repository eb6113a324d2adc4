package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/seo"
	"gorm.io/datatypes"
)

// Category is the camelCase in-memory representation. Count is derived from
// the products table at read time, never persisted authoritatively.
type Category struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Image       string         `json:"image,omitempty"`
	Description string         `json:"description,omitempty"`
	SEO         seo.Descriptor `json:"seo"`
	ParentID    string         `json:"parentId,omitempty"`
	Count       int64          `json:"count"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Row is the persisted categories record.
type Row struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name        string         `gorm:"column:name;type:text;not null"`
	Slug        string         `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Image       string         `gorm:"column:image;type:text"`
	Description string         `gorm:"column:description;type:text"`
	SEO         datatypes.JSON `gorm:"column:seo"`
	ParentID    *int64         `gorm:"column:parent_id"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (Row) TableName() string { return "categories" }

// FromRow maps a persisted row into the domain shape with defensive SEO
// decoding; malformed bytes degrade to an empty descriptor.
func FromRow(row Row) Category {
	c := Category{
		ID:          snowflake.ID(row.ID).String(),
		Name:        row.Name,
		Slug:        row.Slug,
		Image:       row.Image,
		Description: row.Description,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.SEO) > 0 {
		_ = json.Unmarshal(row.SEO, &c.SEO)
	}
	if row.ParentID != nil {
		c.ParentID = snowflake.ID(*row.ParentID).String()
	}
	return c
}

// ToRow maps a domain category into its persisted form, stamping updated_at.
func ToRow(c Category, now time.Time) Row {
	var id int64
	if c.ID != "" {
		if parsed, err := snowflake.ParseString(c.ID); err == nil {
			id = parsed.Int64()
		}
	}

	row := Row{
		ID:          id,
		Name:        c.Name,
		Slug:        c.Slug,
		Image:       c.Image,
		Description: c.Description,
		UpdatedAt:   now.UTC(),
	}
	if b, err := json.Marshal(c.SEO); err == nil {
		row.SEO = datatypes.JSON(b)
	}
	if c.ParentID != "" {
		if parsed, err := snowflake.ParseString(c.ParentID); err == nil {
			v := parsed.Int64()
			row.ParentID = &v
		}
	}
	return row
}

// SEOInput adapts the category for the template generator.
func (c Category) SEOInput() seo.CategoryInput {
	return seo.CategoryInput{Name: c.Name, SEO: c.SEO}
}
