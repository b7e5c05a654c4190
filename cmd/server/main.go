package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"dealfinder/internal/catalog"
	"dealfinder/internal/config"
	"dealfinder/internal/db"
	"dealfinder/internal/deals"
	"dealfinder/internal/observability"
	"dealfinder/internal/repository"
	"dealfinder/internal/search"
	"dealfinder/internal/session"
	"dealfinder/internal/web"
)

func main() {
	cfg := config.Load()

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		var err error
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			log.Fatalf("Erro ao carregar catálogo %s: %v", cfg.CatalogFile, err)
		}
	}

	svc := &deals.Service{
		Catalog:  cat,
		Searcher: search.New(cfg),
		Slot:     newSlot(cfg),
	}

	if cfg.DatabaseURL != "" {
		conn, dialect, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Erro ao conectar no banco: %v", err)
		}
		defer conn.Close()

		repo := &repository.SearchLogRepository{DB: conn, Dialect: dialect}
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Erro ao criar tabela search_log: %v", err)
		}
		svc.Log = repo
	}

	if cfg.SerpAPIKey == "" {
		log.Println("[Server] SERPAPI_KEY não definido; as buscas vão falhar")
	}

	observability.Start(cfg.MetricsPort)

	log.Printf("Fashion finder rodando %s (métricas :%s)", cfg.HTTPAddr, cfg.MetricsPort)
	if err := http.ListenAndServe(cfg.HTTPAddr, web.New(svc, cat).Routes()); err != nil {
		log.Fatal(err)
	}
}

// newSlot usa Redis quando REDIS_URL está definido, senão memória local.
func newSlot(cfg *config.Config) session.Slot {
	if cfg.RedisURL == "" {
		return session.NewMemorySlot()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		// aceita host:porta puro também
		opts = &redis.Options{Addr: cfg.RedisURL}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Erro ao conectar no Redis: %v", err)
	}
	return &session.RedisSlot{Client: client, TTL: cfg.SessionTTL}
}
