// Package web serves the filter page, the JSON search API and the CSV download.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dealfinder/internal/catalog"
	"dealfinder/internal/deals"
	"dealfinder/internal/export"
	"dealfinder/internal/model"
	"dealfinder/internal/query"
)

const sessionCookie = "dealfinder_sid"

//go:embed templates/index.html
var templates embed.FS

type Server struct {
	Service *deals.Service
	Catalog *catalog.Catalog
	tmpl    *template.Template
}

type pageData struct {
	Catalog     *catalog.Catalog
	Categories  []string
	Filters     model.Filters
	SortModes   []model.SortMode
	Result      *deals.Result
	Suggestions []string
}

type searchResponse struct {
	Query       string          `json:"query"`
	Products    []model.Product `json:"products"`
	Summary     *model.Summary  `json:"summary,omitempty"`
	Message     string          `json:"message"`
	Error       string          `json:"error,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

func New(svc *deals.Service, c *catalog.Catalog) *Server {
	funcs := template.FuncMap{
		"price": func(n int) string { return export.FormatPrice(c.Currency, n) },
	}
	tmpl := template.Must(template.New("index.html").Funcs(funcs).ParseFS(templates, "templates/index.html"))
	return &Server{Service: svc, Catalog: c, tmpl: tmpl}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/export.csv", s.handleExport)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	data := pageData{
		Catalog:     s.Catalog,
		SortModes:   model.SortModes(),
		Suggestions: deals.Suggestions,
		Filters: model.Filters{
			Gender:   s.Catalog.Genders[0].Name,
			Color:    catalog.AnyColor,
			MinPrice: s.Catalog.Budget.DefaultMin,
			MaxPrice: s.Catalog.Budget.DefaultMax,
			Sort:     model.SortBestMatch,
		},
	}

	if r.URL.Query().Get("search") != "" {
		f, err := parseFilters(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := s.Service.Search(r.Context(), sid, f)
		if errors.Is(err, query.ErrUnknownCategory) {
			// o formulário ainda traz a categoria do gênero anterior
			f.Category = ""
			res, err = s.Service.Search(r.Context(), sid, f)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data.Result = res
		data.Filters = res.Filters
	}
	data.Categories, _ = s.Catalog.Categories(data.Filters.Gender)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("[Web] Erro ao renderizar página: %v", err)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	f, err := parseFilters(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := s.Service.Search(r.Context(), sid, f)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp := searchResponse{
		Query:    res.Query,
		Products: res.Products,
		Summary:  res.Summary,
		Message:  res.Message,
	}
	status := http.StatusOK
	switch {
	case res.Err != nil:
		resp.Error = res.Err.Error()
		status = http.StatusBadGateway
	case res.Empty():
		resp.Suggestions = deals.Suggestions
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	products, err := s.Service.Current(r.Context(), sessionID(w, r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(products) == 0 {
		http.Error(w, "no results to export", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	if err := export.WriteCSV(w, products); err != nil {
		log.Printf("[Web] Erro ao exportar CSV: %v", err)
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog)
}

var errBadPrice = errors.New("min and max must be integers")

func parseFilters(r *http.Request) (model.Filters, error) {
	q := r.URL.Query()
	f := model.Filters{
		Gender:   q.Get("gender"),
		Category: q.Get("category"),
		Color:    q.Get("color"),
		Sort:     model.SortMode(q.Get("sort")),
	}

	var err error
	if v := q.Get("min"); v != "" {
		if f.MinPrice, err = strconv.Atoi(v); err != nil {
			return f, errBadPrice
		}
	}
	if v := q.Get("max"); v != "" {
		if f.MaxPrice, err = strconv.Atoi(v); err != nil {
			return f, errBadPrice
		}
	}
	return f, nil
}

// sessionID lê o cookie da sessão ou cria um novo.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
