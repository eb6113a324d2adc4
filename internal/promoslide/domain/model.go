package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PromoSlide is a homepage hero slide. SortOrder orders slides ascending with
// id as the tiebreaker, so insertion order wins between equal sort keys.
type PromoSlide struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	ButtonText  string    `json:"buttonText,omitempty"`
	Link        string    `json:"link,omitempty"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"order"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Row struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Description string    `gorm:"column:description;type:text"`
	Image       string    `gorm:"column:image;type:text"`
	ButtonText  string    `gorm:"column:button_text;type:text"`
	Link        string    `gorm:"column:link;type:text"`
	IsActive    bool      `gorm:"column:is_active"`
	SortOrder   int       `gorm:"column:sort_order"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Row) TableName() string { return "promo_slides" }

func FromRow(row Row) PromoSlide {
	return PromoSlide{
		ID:          snowflake.ID(row.ID).String(),
		Title:       row.Title,
		Description: row.Description,
		Image:       row.Image,
		ButtonText:  row.ButtonText,
		Link:        row.Link,
		IsActive:    row.IsActive,
		SortOrder:   row.SortOrder,
		UpdatedAt:   row.UpdatedAt,
	}
}

func ToRow(s PromoSlide, now time.Time) Row {
	var id int64
	if s.ID != "" {
		if parsed, err := snowflake.ParseString(s.ID); err == nil {
			id = parsed.Int64()
		}
	}
	return Row{
		ID:          id,
		Title:       s.Title,
		Description: s.Description,
		Image:       s.Image,
		ButtonText:  s.ButtonText,
		Link:        s.Link,
		IsActive:    s.IsActive,
		SortOrder:   s.SortOrder,
		UpdatedAt:   now.UTC(),
	}
}
