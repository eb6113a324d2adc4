package domain

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Type enumerates the supported attribute input kinds.
type Type string

const (
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypeSelect   Type = "select"
	TypeCheckbox Type = "checkbox"
)

func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeSelect, TypeCheckbox:
		return true
	}
	return false
}

// GlobalAttribute is a vocabulary entry for product attributes. Products keep
// free-form {name, value, type} triples, so nothing enforces a link back here.
type GlobalAttribute struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Type      Type      `json:"type"`
	Options   []string  `json:"options"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Row struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name      string         `gorm:"column:name;type:text;not null"`
	Slug      string         `gorm:"column:slug;type:text;not null;uniqueIndex"`
	Type      string         `gorm:"column:type;type:text;not null"`
	Options   datatypes.JSON `gorm:"column:options"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Row) TableName() string { return "global_attributes" }

func FromRow(row Row) GlobalAttribute {
	a := GlobalAttribute{
		ID:        snowflake.ID(row.ID).String(),
		Name:      row.Name,
		Slug:      row.Slug,
		Type:      Type(row.Type),
		Options:   []string{},
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Options) > 0 {
		var opts []string
		if err := json.Unmarshal(row.Options, &opts); err == nil && opts != nil {
			a.Options = opts
		}
	}
	return a
}

func ToRow(a GlobalAttribute, now time.Time) Row {
	var id int64
	if a.ID != "" {
		if parsed, err := snowflake.ParseString(a.ID); err == nil {
			id = parsed.Int64()
		}
	}

	row := Row{
		ID:        id,
		Name:      a.Name,
		Slug:      a.Slug,
		Type:      string(a.Type),
		UpdatedAt: now.UTC(),
	}
	opts := a.Options
	if opts == nil {
		opts = []string{}
	}
	if b, err := json.Marshal(opts); err == nil {
		row.Options = datatypes.JSON(b)
	}
	return row
}
