package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Open escolhe o driver pela URL: postgres:// usa pgx, sqlite:/file:/:memory: usa modernc.
func Open(url string) (*sql.DB, Dialect, error) {
	driver, dsn, dialect, err := resolve(url)
	if err != nil {
		return nil, "", err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s connection: %w", dialect, err)
	}

	if dialect == SQLite {
		// cada conexão de :memory: é um banco diferente
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}

	return conn, dialect, nil
}

func resolve(url string) (driver, dsn string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "pgx", url, Postgres, nil
	case strings.HasPrefix(url, "sqlite:"):
		return "sqlite", strings.TrimPrefix(url, "sqlite:"), SQLite, nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return "sqlite", url, SQLite, nil
	default:
		return "", "", "", fmt.Errorf("unsupported DATABASE_URL %q", url)
	}
}

// Rebind troca os "?" da query pelos "$n" que o Postgres espera.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
