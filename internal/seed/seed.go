// Package seed ensures default catalog content exists on boot so a fresh
// install renders a working storefront.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
	"github.com/metalprom/catalog/pkg/slug"
	"gorm.io/gorm"
)

type categorySpec struct {
	name  string
	image string
}

var defaultCategories = []categorySpec{
	{"Арматура", "https://images.unsplash.com/photo-1626372412809-54129532822a?auto=format&fit=crop&w=600&h=400"},
	{"Трубы", "https://images.unsplash.com/photo-1576082987158-b76543b5df51?auto=format&fit=crop&w=600&h=400"},
	{"Лист", "https://images.unsplash.com/photo-1564619792078-43f05dbd0e2e?auto=format&fit=crop&w=600&h=400"},
	{"Уголок", "https://images.unsplash.com/photo-1610459521360-192e22c7104d?auto=format&fit=crop&w=600&h=400"},
	{"Швеллер", "https://images.unsplash.com/photo-1590483863896-857dd8d05267?auto=format&fit=crop&w=600&h=400"},
	{"Балка", "https://images.unsplash.com/photo-1503714251644-bd475e114f08?auto=format&fit=crop&w=600&h=400"},
	{"Профнастил", "https://images.unsplash.com/photo-1620808381227-2c67f074d22e?auto=format&fit=crop&w=600&h=400"},
}

type productSpec struct {
	name          string
	slug          string
	article       string
	category      string
	pricePerTon   float64
	pricePerMeter float64
	stock         float64
	status        productdomain.Status
	steelGrade    string
	dimensions    string
	attributes    []productdomain.Attribute
	image         string
}

var starterProducts = []productSpec{
	{
		name: "Арматура стальная А500С", slug: "armatura-a500c", article: "ARM-001",
		category: "Арматура", pricePerTon: 45000, pricePerMeter: 45, stock: 120,
		status: productdomain.StatusInStock, steelGrade: "А500С", dimensions: "12мм",
		attributes: []productdomain.Attribute{
			{Name: "Диаметр", Value: "12мм", Type: "number"},
			{Name: "Поверхность", Value: "Рифленая", Type: "text"},
		},
		image: "https://images.unsplash.com/photo-1567196646506-c87d6050302b?auto=format&fit=crop&w=800&q=80",
	},
	{
		name: "Труба профильная 40x40x2", slug: "truba-prof-40-40", article: "TR-040",
		category: "Трубы", pricePerTon: 52000, pricePerMeter: 120, stock: 50,
		status: productdomain.StatusLowStock, steelGrade: "Ст3пс", dimensions: "40x40x2",
		attributes: []productdomain.Attribute{{Name: "Сечение", Value: "Квадрат", Type: "text"}},
		image:      "https://images.unsplash.com/photo-1535063404245-7c2db922b95d?auto=format&fit=crop&w=800&q=80",
	},
	{
		name: "Лист горячекатаный 3мм", slug: "list-gk-3mm", article: "LST-003",
		category: "Лист", pricePerTon: 48000, pricePerMeter: 350, stock: 200,
		status: productdomain.StatusInStock, steelGrade: "Ст3", dimensions: "1250x2500",
		image: "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?auto=format&fit=crop&w=800&q=80",
	},
	{
		name: "Балка двутавровая 20Б1", slug: "balka-20b1", article: "BLK-020",
		category: "Балка", pricePerTon: 65000, pricePerMeter: 1200, stock: 30,
		status: productdomain.StatusInStock, steelGrade: "09Г2С", dimensions: "200мм",
		image: "https://images.unsplash.com/photo-1533062632626-d18e9c403c94?auto=format&fit=crop&w=800&q=80",
	},
	{
		name: "Швеллер 10П", slug: "shveller-10p", article: "SHV-010",
		category: "Швеллер", pricePerTon: 58000, pricePerMeter: 480, stock: 45,
		status: productdomain.StatusOutOfStock, steelGrade: "Ст3", dimensions: "100мм",
		image: "https://images.unsplash.com/photo-1504917595217-d4dc5ebe6122?auto=format&fit=crop&w=800&q=80",
	},
	{
		name: "Профнастил С8", slug: "profnastil-c8", article: "PRF-008",
		category: "Профнастил", pricePerTon: 75000, pricePerMeter: 320, stock: 500,
		status: productdomain.StatusInStock, steelGrade: "Цинк", dimensions: "0.45мм",
		image: "https://images.unsplash.com/photo-1620808381227-2c67f074d22e?auto=format&fit=crop&w=800&q=80",
	},
}

// EnsureDefaults seeds the default categories, starter products and the
// welcome promo slide. Inserts are keyed by slug, so repeated boots are
// no-ops.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategories(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureProducts(ctx, tx, node); err != nil {
			return err
		}
		return ensurePromoSlide(ctx, tx, node)
	})
}

// EnsureDevOrders inserts a handful of mock orders for non-production
// environments so the admin dashboard has data to show.
func EnsureDevOrders(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&orderdomain.Row{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		now := time.Now()
		mock := []orderdomain.Order{
			{CustomerName: "ООО СтройТех", Total: 150000, Status: orderdomain.StatusShipped, Date: now.AddDate(0, 0, -2)},
			{CustomerName: "Частное лицо", Total: 12500, Status: orderdomain.StatusWaiting, Date: now.AddDate(0, 0, -1)},
			{CustomerName: "МеталлГрупп", Total: 450000, Status: orderdomain.StatusProcessing, Date: now.AddDate(0, 0, -1)},
			{CustomerName: "АО БыстроСтрой", Total: 89000, Status: orderdomain.StatusDelivered, Date: now.AddDate(0, 0, -3)},
		}
		for _, o := range mock {
			o.ID = node.Generate().String()
			row := orderdomain.ToRow(o)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func ensureCategories(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, spec := range defaultCategories {
		s := slug.Make(spec.name)

		var existing categorydomain.Row
		err := tx.WithContext(ctx).Where("slug = ?", s).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := categorydomain.ToRow(categorydomain.Category{
			ID:    node.Generate().String(),
			Name:  spec.name,
			Slug:  s,
			Image: spec.image,
		}, time.Now())
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", spec.name, err)
		}
	}
	return nil
}

func ensureProducts(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, spec := range starterProducts {
		var existing productdomain.Row
		err := tx.WithContext(ctx).Where("slug = ?", spec.slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		p := productdomain.Product{
			ID:            node.Generate().String(),
			Name:          spec.name,
			Slug:          spec.slug,
			Article:       spec.article,
			Category:      spec.category,
			PricePerTon:   spec.pricePerTon,
			PricePerMeter: spec.pricePerMeter,
			Pricing: productdomain.Pricing{
				Retail:        spec.pricePerTon,
				Wholesale:     spec.pricePerTon * 0.95,
				Dealer:        spec.pricePerTon * 0.85,
				PricePerMeter: spec.pricePerMeter,
				VATIncluded:   true,
			},
			Stock:      spec.stock,
			Status:     spec.status,
			SteelGrade: spec.steelGrade,
			Dimensions: spec.dimensions,
			Attributes: spec.attributes,
			Image:      spec.image,
		}
		p.Normalize()

		row := productdomain.ToRow(p, time.Now())
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", spec.name, err)
		}
	}
	return nil
}

func ensurePromoSlide(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing int64
	if err := tx.WithContext(ctx).Model(&promodomain.Row{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	row := promodomain.ToRow(promodomain.PromoSlide{
		ID:          node.Generate().String(),
		Title:       "Металлопрокат от производителя",
		Description: "Арматура, трубы, листовой прокат в наличии на складе. Доставка по РФ.",
		ButtonText:  "Смотреть каталог",
		Link:        "/catalog",
		IsActive:    true,
		SortOrder:   1,
	}, time.Now())
	return tx.WithContext(ctx).Create(&row).Error
}
