package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dealfinder/internal/catalog"
	"dealfinder/internal/config"
	"dealfinder/internal/db"
	"dealfinder/internal/deals"
	"dealfinder/internal/export"
	"dealfinder/internal/model"
	"dealfinder/internal/query"
	"dealfinder/internal/repository"
	"dealfinder/internal/search"
)

// Códigos de saída: 1 falha do provedor ou de infraestrutura, 2 filtros inválidos.
const (
	exitOK = iota
	exitFailure
	exitBadFilters
)

type options struct {
	filters model.Filters
	csvPath string
	history int
}

// go run ./cmd/dealfinder -gender=Men -category=Jeans -color=Blue -min=499 -max=3000 -sort=price_asc
// go run ./cmd/dealfinder -gender=Women -category=Kurti -csv=kurtis.csv
// go run ./cmd/dealfinder -history=10
func main() {
	gender := flag.String("gender", "", "Gênero do catálogo (Men, Women)")
	category := flag.String("category", "", "Categoria dentro do gênero")
	color := flag.String("color", catalog.AnyColor, "Cor, ou Any para ignorar")
	minPrice := flag.Int("min", 0, "Preço mínimo (inclusivo)")
	maxPrice := flag.Int("max", 0, "Preço máximo (inclusivo)")
	sortMode := flag.String("sort", string(model.SortBestMatch), "best_match, price_asc ou price_desc")
	csvPath := flag.String("csv", "", "Grava os resultados neste arquivo CSV")
	history := flag.Int("history", 0, "Lista as últimas N buscas gravadas em DATABASE_URL e sai")
	flag.Parse()

	opts := options{
		filters: model.Filters{
			Gender:   *gender,
			Category: *category,
			Color:    *color,
			MinPrice: *minPrice,
			MaxPrice: *maxPrice,
			Sort:     model.SortMode(*sortMode),
		},
		csvPath: *csvPath,
		history: *history,
	}
	os.Exit(run(context.Background(), config.Load(), opts, os.Stdout, os.Stderr))
}

// run devolve o código de saída; os defers rodam antes do os.Exit em main.
func run(ctx context.Context, cfg *config.Config, opts options, stdout, stderr io.Writer) int {
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		var err error
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			log.Printf("Erro ao carregar catálogo %s: %v", cfg.CatalogFile, err)
			return exitFailure
		}
	}

	var repo *repository.SearchLogRepository
	if cfg.DatabaseURL != "" {
		conn, dialect, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Erro ao conectar no banco: %v", err)
			return exitFailure
		}
		defer conn.Close()
		repo = &repository.SearchLogRepository{DB: conn, Dialect: dialect}
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("Erro ao criar tabela search_log: %v", err)
			return exitFailure
		}
	}

	if opts.history > 0 {
		if repo == nil {
			fmt.Fprintln(stderr, "DATABASE_URL não definido")
			return exitFailure
		}
		if err := printHistory(ctx, stdout, repo, opts.history); err != nil {
			log.Printf("Erro ao ler histórico: %v", err)
			return exitFailure
		}
		return exitOK
	}

	svc := &deals.Service{Catalog: cat, Searcher: search.New(cfg)}
	if repo != nil {
		svc.Log = repo
	}

	res, err := svc.Search(ctx, "", opts.filters)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, query.ErrUnknownCategory) {
			cats, _ := cat.Categories(opts.filters.Gender)
			fmt.Fprintf(stderr, "categorias disponíveis: %v\n", cats)
		}
		return exitBadFilters
	}

	fmt.Fprintf(stdout, "Query: %s (%s - %s)\n\n", res.Query,
		export.FormatPrice(cat.Currency, res.Filters.MinPrice),
		export.FormatPrice(cat.Currency, res.Filters.MaxPrice))

	switch {
	case res.Err != nil:
		fmt.Fprintln(stderr, res.Message)
		return exitFailure
	case res.Empty():
		fmt.Fprintln(stdout, res.Message)
		for _, s := range deals.Suggestions {
			fmt.Fprintln(stdout, "  -", s)
		}
		return exitOK
	}

	if err := export.WriteTable(stdout, cat.Currency, res.Products); err != nil {
		log.Printf("Erro ao imprimir tabela: %v", err)
		return exitFailure
	}
	fmt.Fprintln(stdout)
	if err := export.WriteSummary(stdout, cat.Currency, *res.Summary); err != nil {
		log.Printf("Erro ao imprimir resumo: %v", err)
		return exitFailure
	}

	if opts.csvPath != "" {
		if err := writeCSV(opts.csvPath, res.Products); err != nil {
			log.Printf("Erro ao gravar CSV: %v", err)
			return exitFailure
		}
		log.Printf("Resultados gravados em %s", opts.csvPath)
	}
	return exitOK
}

func writeCSV(path string, products []model.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(f, products); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printHistory(ctx context.Context, w io.Writer, repo *repository.SearchLogRepository, n int) error {
	logs, err := repo.Recent(ctx, n)
	if err != nil {
		return err
	}
	for _, l := range logs {
		status := fmt.Sprintf("%d/%d mantidos", l.Kept, l.Received)
		if l.Error != "" {
			status = "erro: " + l.Error
		}
		fmt.Fprintf(w, "%s  %-30s  %d..%d  %s\n",
			l.CreatedAt.Format("2006-01-02 15:04"), l.Query, l.Filters.MinPrice, l.Filters.MaxPrice, status)
	}
	return nil
}
