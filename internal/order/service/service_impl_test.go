package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/order/domain"
	"github.com/metalprom/catalog/internal/order/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide()})
	return svc, db
}

func seedOrder(t *testing.T, db *gorm.DB, node int64, name string, total float64, status domain.Status, daysAgo int) {
	t.Helper()

	gen, err := snowflake.NewNode(node)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	row := domain.ToRow(domain.Order{
		ID:           gen.Generate().String(),
		CustomerName: name,
		Total:        total,
		Status:       status,
		Date:         time.Now().AddDate(0, 0, -daysAgo),
	})
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, db := setupService(t)

	seedOrder(t, db, 1, "ООО Стройком", 120000, domain.StatusWaiting, 3)
	seedOrder(t, db, 2, "ИП Иванов", 45000, domain.StatusShipped, 1)
	seedOrder(t, db, 3, "ООО Монолит", 98000, domain.StatusProcessing, 2)

	orders, err := svc.List(context.Background(), domain.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("len = %d", len(orders))
	}
	if orders[0].CustomerName != "ИП Иванов" || orders[2].CustomerName != "ООО Стройком" {
		t.Fatalf("order = %v %v %v", orders[0].CustomerName, orders[1].CustomerName, orders[2].CustomerName)
	}
}

func TestListStatusFilterAndLimit(t *testing.T) {
	svc, db := setupService(t)

	seedOrder(t, db, 1, "A", 100, domain.StatusWaiting, 4)
	seedOrder(t, db, 2, "B", 200, domain.StatusWaiting, 2)
	seedOrder(t, db, 3, "C", 300, domain.StatusDelivered, 1)

	orders, err := svc.List(context.Background(), domain.ListRequest{Status: domain.StatusWaiting, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerName != "B" {
		t.Fatalf("orders = %+v", orders)
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.List(context.Background(), domain.ListRequest{Status: "cancelled"}); err != domain.ErrInvalidStatus {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
