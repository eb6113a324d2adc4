package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/category/domain"
	"github.com/metalprom/catalog/internal/category/repository"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Row{}, &productdomain.Row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func seedProduct(t *testing.T, db *gorm.DB, node int64, name, category string) {
	t.Helper()

	gen, err := snowflake.NewNode(node)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	row := productdomain.ToRow(productdomain.Product{
		ID:       gen.Generate().String(),
		Name:     name,
		Slug:     fmt.Sprintf("p-%d-%s", node, strings.ToLower(name)),
		Category: category,
		Status:   productdomain.StatusInStock,
	}, time.Now())
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Category{Name: "Нержавеющая сталь"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Slug != "nerjaveyushchaya-stal" {
		t.Fatalf("slug = %q", created.Slug)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.Create(context.Background(), domain.Category{Name: "   "}); err != domain.ErrInvalidName {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.Category{Name: "Арматура"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.Category{Name: "Другое", Slug: "armatura"}); err != domain.ErrSlugTaken {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestListCountsProducts(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.Category{Name: "Арматура"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.Category{Name: "Трубы"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	seedProduct(t, db, 2, "a500", "Арматура")
	seedProduct(t, db, 3, "a400", "Арматура")
	seedProduct(t, db, 4, "t40", "Трубы")

	cats, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("len = %d", len(cats))
	}

	byName := map[string]int64{}
	for _, c := range cats {
		byName[c.Name] = c.Count
	}
	if byName["Арматура"] != 2 || byName["Трубы"] != 1 {
		t.Fatalf("counts = %v", byName)
	}
}

func TestRenameCascadesToProducts(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Category{Name: "Балки"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	seedProduct(t, db, 2, "b20", "Балки")
	seedProduct(t, db, 3, "b30", "Балки")
	seedProduct(t, db, 4, "t40", "Трубы")

	newName := "Двутавровые балки"
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("name = %q", updated.Name)
	}

	var moved, untouched int64
	if err := db.Table("products").Where("category = ?", newName).Count(&moved).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := db.Table("products").Where("category = ?", "Трубы").Count(&untouched).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if moved != 2 {
		t.Fatalf("moved = %d", moved)
	}
	if untouched != 1 {
		t.Fatalf("untouched = %d", untouched)
	}
}

func TestGetBySlugBuildsSEO(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.Category{Name: "Арматура"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	seedProduct(t, db, 2, "a500", "Арматура")

	page, err := svc.GetBySlug(ctx, "armatura")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Category.Count != 1 {
		t.Fatalf("count = %d", page.Category.Count)
	}
	if !strings.Contains(page.SEO.Title, "Арматура") {
		t.Fatalf("seo title = %q", page.SEO.Title)
	}
}

func TestDeleteLeavesProducts(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Category{Name: "Листы"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	seedProduct(t, db, 2, "l3", "Листы")

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetBySlug(ctx, "listy"); err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var kept int64
	if err := db.Table("products").Where("category = ?", "Листы").Count(&kept).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if kept != 1 {
		t.Fatalf("kept = %d", kept)
	}
}
