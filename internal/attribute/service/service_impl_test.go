package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/metalprom/catalog/internal/attribute/domain"
	"github.com/metalprom/catalog/internal/attribute/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
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
	if err := db.AutoMigrate(&domain.Row{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateDerivesSlugAndDefaultsType(t *testing.T) {
	svc := setupService(t)

	created, err := svc.Create(context.Background(), domain.GlobalAttribute{Name: "Марка стали"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "marka-stali" {
		t.Fatalf("slug = %q", created.Slug)
	}
	if created.Type != domain.TypeText {
		t.Fatalf("type = %q", created.Type)
	}
	if created.Options == nil || len(created.Options) != 0 {
		t.Fatalf("options = %v, want empty slice", created.Options)
	}
}

func TestCreateSelectRequiresOptions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.GlobalAttribute{Name: "Диаметр", Type: domain.TypeSelect})
	if err != domain.ErrMissingOptions {
		t.Fatalf("err = %v, want ErrMissingOptions", err)
	}

	created, err := svc.Create(ctx, domain.GlobalAttribute{
		Name:    "Диаметр",
		Type:    domain.TypeSelect,
		Options: []string{"10", "12", "14"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Options) != 3 {
		t.Fatalf("options = %v", created.Options)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), domain.GlobalAttribute{Name: "Вес", Type: "slider"})
	if err != domain.ErrInvalidType {
		t.Fatalf("err = %v, want ErrInvalidType", err)
	}
}

func TestUpdateToSelectRequiresOptions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.GlobalAttribute{Name: "Длина"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sel := domain.TypeSelect
	if _, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Type: &sel}); err != domain.ErrMissingOptions {
		t.Fatalf("err = %v, want ErrMissingOptions", err)
	}

	opts := []string{"6м", "12м"}
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Type: &sel, Options: &opts})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != domain.TypeSelect || len(updated.Options) != 2 {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestDeleteThenList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.GlobalAttribute{Name: "Толщина"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	attrs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attrs) != 0 {
		t.Fatalf("len = %d", len(attrs))
	}

	if err := svc.Delete(ctx, created.ID); err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
