package seed

import (
	"fmt"
	"strings"
	"testing"

	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&categorydomain.Row{},
		&productdomain.Row{},
		&promodomain.Row{},
		&orderdomain.Row{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	db := setupDB(t)

	for i := 0; i < 2; i++ {
		if err := EnsureDefaults(db); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var categories, products, slides int64
	db.Model(&categorydomain.Row{}).Count(&categories)
	db.Model(&productdomain.Row{}).Count(&products)
	db.Model(&promodomain.Row{}).Count(&slides)

	if categories != 7 {
		t.Fatalf("categories = %d", categories)
	}
	if products != 6 {
		t.Fatalf("products = %d", products)
	}
	if slides != 1 {
		t.Fatalf("slides = %d", slides)
	}
}

func TestEnsureDefaultsKeepsPricingMirrors(t *testing.T) {
	db := setupDB(t)

	if err := EnsureDefaults(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var row productdomain.Row
	if err := db.Where("slug = ?", "armatura-a500c").First(&row).Error; err != nil {
		t.Fatalf("find: %v", err)
	}

	p := productdomain.FromRow(row)
	if p.PricePerTon != p.Pricing.Retail {
		t.Fatalf("per ton %f != retail %f", p.PricePerTon, p.Pricing.Retail)
	}
	if p.Pricing.Wholesale != 45000*0.95 {
		t.Fatalf("wholesale = %f", p.Pricing.Wholesale)
	}
}

func TestEnsureDevOrdersSkipsWhenPresent(t *testing.T) {
	db := setupDB(t)

	for i := 0; i < 2; i++ {
		if err := EnsureDevOrders(db); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var orders int64
	db.Model(&orderdomain.Row{}).Count(&orders)
	if orders != 4 {
		t.Fatalf("orders = %d", orders)
	}
}
