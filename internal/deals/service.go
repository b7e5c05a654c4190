// Package deals runs one search action end to end: validate filters, build the query,
// call the provider once, normalize, sort and store the list in the session slot.
package deals

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dealfinder/internal/catalog"
	"dealfinder/internal/model"
	"dealfinder/internal/normalizer"
	"dealfinder/internal/observability"
	"dealfinder/internal/query"
	"dealfinder/internal/repository"
	"dealfinder/internal/search"
	"dealfinder/internal/session"
)

const noResultsMessage = "No products found. Try adjusting your filters."

// Suggestions shown when a search comes back empty.
var Suggestions = []string{
	"Widen your price range",
	"Try different color",
	"Use more general category",
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]model.RawProduct, error)
}

type SearchLogger interface {
	Save(ctx context.Context, l repository.SearchLog) error
}

type Result struct {
	Filters  model.Filters     `json:"filters"`
	Query    string            `json:"query"`
	Products []model.Product   `json:"products"`
	Summary  *model.Summary    `json:"summary,omitempty"`
	Message  string            `json:"message"`
	Err      error             `json:"-"`
	Report   normalizer.Report `json:"-"`
}

// Empty distingue "nenhum produto" de falha do provedor.
func (r *Result) Empty() bool {
	return r.Err == nil && len(r.Products) == 0
}

type Service struct {
	Catalog  *catalog.Catalog
	Searcher Searcher
	// Slot e Log são opcionais; a CLI roda sem nenhum dos dois.
	Slot session.Slot
	Log  SearchLogger
}

// Search returns an error only for invalid filters. Provider failures are reported in
// Result.Err and Result.Message and count as an empty result.
func (s *Service) Search(ctx context.Context, sessionID string, f model.Filters) (*Result, error) {
	filters, err := query.Resolve(s.Catalog, f)
	if err != nil {
		return nil, err
	}

	q, minPrice, maxPrice := query.FromFilters(filters)
	res := &Result{Filters: filters, Query: q, Products: []model.Product{}}

	start := time.Now()
	raw, err := s.Searcher.Search(ctx, q)
	observability.SearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		res.Err = err
		res.Message = errorMessage(err)
		observability.SearchesTotal.WithLabelValues("error").Inc()
		log.Printf("[Deals] Erro na busca %q: %v", q, err)
	} else {
		products, report := normalizer.NormalizeWithReport(raw, minPrice, maxPrice)
		res.Products = normalizer.Sort(products, filters.Sort)
		res.Report = report
		recordReport(report)

		if summary, ok := normalizer.Summarize(res.Products); ok {
			res.Summary = &summary
			res.Message = fmt.Sprintf("Found %d products matching your criteria", summary.Count)
			observability.SearchesTotal.WithLabelValues("ok").Inc()
		} else {
			res.Message = noResultsMessage
			observability.SearchesTotal.WithLabelValues("empty").Inc()
		}
		log.Printf("[Deals] Busca %q: %d recebidos, %d mantidos, descartes %v", q, report.Received, report.Kept, report.Dropped)
	}

	s.store(ctx, sessionID, res)
	s.audit(ctx, res)

	return res, nil
}

// Current devolve a última lista da sessão, usada pelo export.
func (s *Service) Current(ctx context.Context, sessionID string) ([]model.Product, error) {
	if s.Slot == nil {
		return nil, nil
	}
	return s.Slot.Current(ctx, sessionID)
}

func (s *Service) store(ctx context.Context, sessionID string, res *Result) {
	if s.Slot == nil || sessionID == "" {
		return
	}
	if err := s.Slot.Replace(ctx, sessionID, res.Products); err != nil {
		log.Printf("[Deals] Erro ao salvar resultados da sessão %s: %v", sessionID, err)
	}
}

func (s *Service) audit(ctx context.Context, res *Result) {
	if s.Log == nil {
		return
	}
	entry := repository.SearchLog{
		Query:    res.Query,
		Filters:  res.Filters,
		Received: res.Report.Received,
		Kept:     res.Report.Kept,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if err := s.Log.Save(ctx, entry); err != nil {
		log.Printf("[Deals] Erro ao gravar auditoria: %v", err)
	}
}

func recordReport(r normalizer.Report) {
	observability.ProductsKept.Add(float64(r.Kept))
	for reason, n := range r.Dropped {
		observability.ProductsDropped.WithLabelValues(string(reason)).Add(float64(n))
	}
}

func errorMessage(err error) string {
	var perr *search.ProviderError
	if errors.As(err, &perr) {
		return "API Error: " + perr.Message
	}
	return "Search failed: " + err.Error()
}
