package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dealfinder/internal/db"
	"dealfinder/internal/model"
)

// SearchLog é uma linha de auditoria por busca. Produtos não são gravados.
type SearchLog struct {
	ID        string
	Query     string
	Filters   model.Filters
	Received  int
	Kept      int
	Error     string
	CreatedAt time.Time
}

type SearchLogRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

const schema = `
	CREATE TABLE IF NOT EXISTS search_log (
		id         TEXT PRIMARY KEY,
		query      TEXT NOT NULL,
		gender     TEXT NOT NULL,
		category   TEXT NOT NULL,
		color      TEXT NOT NULL,
		min_price  INTEGER NOT NULL,
		max_price  INTEGER NOT NULL,
		sort_mode  TEXT NOT NULL,
		received   INTEGER NOT NULL,
		kept       INTEGER NOT NULL,
		error      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`

func (r *SearchLogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create search_log: %w", err)
	}
	return nil
}

func (r *SearchLogRepository) Save(ctx context.Context, l SearchLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`
		INSERT INTO search_log
		(id, query, gender, category, color, min_price, max_price, sort_mode, received, kept, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), l.ID, l.Query, l.Filters.Gender, l.Filters.Category, l.Filters.Color,
		l.Filters.MinPrice, l.Filters.MaxPrice, string(l.Filters.Sort),
		l.Received, l.Kept, l.Error, l.CreatedAt)

	return err
}

// Recent returns the latest searches, newest first.
func (r *SearchLogRepository) Recent(ctx context.Context, limit int) ([]SearchLog, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(`
		SELECT id, query, gender, category, color, min_price, max_price, sort_mode, received, kept, error, created_at
		FROM search_log
		ORDER BY created_at DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []SearchLog
	for rows.Next() {
		var l SearchLog
		var sortMode string
		if err := rows.Scan(&l.ID, &l.Query, &l.Filters.Gender, &l.Filters.Category, &l.Filters.Color,
			&l.Filters.MinPrice, &l.Filters.MaxPrice, &sortMode, &l.Received, &l.Kept, &l.Error, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Filters.Sort = model.SortMode(sortMode)
		list = append(list, l)
	}

	return list, rows.Err()
}
