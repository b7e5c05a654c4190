// Package search calls the SerpAPI google_shopping engine.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dealfinder/internal/config"
	"dealfinder/internal/model"
)

const (
	engine       = "google_shopping"
	maxBodyBytes = 8 << 20
)

var ErrMissingAPIKey = errors.New("missing SERPAPI_KEY")

// ProviderError is a failure reported by the provider itself, either as an
// "error" field in the body or as a non-2xx status.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 && e.Status != http.StatusOK {
		return fmt.Sprintf("provider status %d: %s", e.Status, e.Message)
	}
	return e.Message
}

type shoppingResponse struct {
	Error           string             `json:"error"`
	ShoppingResults []model.RawProduct `json:"shopping_results"`
}

type Client struct {
	BaseURL      string
	APIKey       string
	GL           string
	HL           string
	GoogleDomain string
	Num          int
	HTTP         *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL:      cfg.SerpAPIBaseURL,
		APIKey:       cfg.SerpAPIKey,
		GL:           cfg.SearchGL,
		HL:           cfg.SearchHL,
		GoogleDomain: cfg.GoogleDomain,
		Num:          cfg.SearchNum,
		HTTP:         &http.Client{Timeout: cfg.SearchTimeout},
	}
}

// Search faz uma única chamada ao provedor, sem retry, e devolve os itens crus na
// ordem de relevância do Google Shopping.
func (c *Client) Search(ctx context.Context, query string) ([]model.RawProduct, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + "/search.json")
	if err != nil {
		return nil, fmt.Errorf("invalid search endpoint %q: %w", c.BaseURL, err)
	}
	q := endpoint.Query()
	q.Set("engine", engine)
	q.Set("q", query)
	q.Set("gl", c.GL)
	q.Set("hl", c.HL)
	q.Set("google_domain", c.GoogleDomain)
	q.Set("num", strconv.Itoa(c.Num))
	q.Set("api_key", c.APIKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	log.Printf("[Search] Buscando %q (gl=%s, num=%d)", query, c.GL, c.Num)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var result shoppingResponse
	decodeErr := dec.Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := result.Error
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &ProviderError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if result.Error != "" {
		return nil, &ProviderError{Status: resp.StatusCode, Message: result.Error}
	}

	log.Printf("[Search] %d itens recebidos em %s", len(result.ShoppingResults), time.Since(start).Round(time.Millisecond))
	return result.ShoppingResults, nil
}
