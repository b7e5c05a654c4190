package repository

import (
	"context"
	"testing"
	"time"

	"dealfinder/internal/db"
	"dealfinder/internal/model"
)

func newTestRepo(t *testing.T) *SearchLogRepository {
	t.Helper()
	conn, dialect, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	repo := &SearchLogRepository{DB: conn, Dialect: dialect}
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return repo
}

func TestSearchLogRepository_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	filters := model.Filters{Gender: "Men", Category: "Jeans", Color: "Blue", MinPrice: 499, MaxPrice: 3000, Sort: model.SortPriceAsc}

	if err := repo.Save(ctx, SearchLog{Query: "Men Jeans Blue", Filters: filters, Received: 40, Kept: 12, CreatedAt: base}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, SearchLog{Query: "Men Jeans", Filters: filters, Error: "Invalid API key.", CreatedAt: base.Add(time.Minute)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	list, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d rows, want 2", len(list))
	}

	newest := list[0]
	if newest.Query != "Men Jeans" || newest.Error != "Invalid API key." {
		t.Errorf("newest = %+v", newest)
	}
	if newest.ID == "" {
		t.Error("expected generated id")
	}

	oldest := list[1]
	if oldest.Filters != filters {
		t.Errorf("filters = %+v, want %+v", oldest.Filters, filters)
	}
	if oldest.Received != 40 || oldest.Kept != 12 {
		t.Errorf("counts = %d/%d", oldest.Received, oldest.Kept)
	}
	if !oldest.CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", oldest.CreatedAt, base)
	}
}

func TestSearchLogRepository_RecentLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		repo.Save(ctx, SearchLog{Query: "q", Filters: model.Filters{Sort: model.SortBestMatch}, CreatedAt: base.Add(time.Duration(i) * time.Second)})
	}

	list, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("got %d rows, want 3", len(list))
	}
}
