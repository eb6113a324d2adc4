package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status tracks fulfilment progress. Orders arrive through an external
// channel; this system only reads them.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID           string    `json:"id,omitempty"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	Status       Status    `json:"status"`
	Date         time.Time `json:"date"`
}

type Row struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	CustomerName string    `gorm:"column:customer_name;type:text;not null"`
	Total        float64   `gorm:"column:total"`
	Status       string    `gorm:"column:status;type:text;not null"`
	Date         time.Time `gorm:"column:date;index"`
}

func (Row) TableName() string { return "orders" }

func FromRow(row Row) Order {
	return Order{
		ID:           snowflake.ID(row.ID).String(),
		CustomerName: row.CustomerName,
		Total:        row.Total,
		Status:       Status(row.Status),
		Date:         row.Date,
	}
}

func ToRow(o Order) Row {
	var id int64
	if o.ID != "" {
		if parsed, err := snowflake.ParseString(o.ID); err == nil {
			id = parsed.Int64()
		}
	}
	return Row{
		ID:           id,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		Status:       string(o.Status),
		Date:         o.Date.UTC(),
	}
}
