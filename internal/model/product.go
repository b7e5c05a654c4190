package model

import "strings"

// RawProduct é um item de "shopping_results" como veio do provedor, sem schema garantido.
type RawProduct map[string]any

// Product is a display-ready record. Every Product carries a price, a buy link and a thumbnail.
type Product struct {
	Title          string   `json:"title"`
	PriceValue     int      `json:"price_value"`
	FormattedPrice string   `json:"formatted_price"`
	Link           string   `json:"link"`
	Thumbnail      string   `json:"thumbnail"`
	Source         string   `json:"source"`
	Rating         *float64 `json:"rating,omitempty"`
	Reviews        *int     `json:"reviews,omitempty"`
}

// Summary agrega uma lista de produtos; só faz sentido quando Count > 0.
type Summary struct {
	Count      int `json:"count"`
	Average    int `json:"average"`
	Min        int `json:"min"`
	Max        int `json:"max"`
	StoreCount int `json:"store_count"`
	Total      int `json:"total"`
}

type SortMode string

const (
	SortBestMatch SortMode = "best_match"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
)

// Labels exibidos no formulário de filtros.
var sortLabels = map[SortMode]string{
	SortPriceAsc:  "Price: Low to High",
	SortPriceDesc: "Price: High to Low",
	SortBestMatch: "Best Match",
}

func (m SortMode) Label() string {
	return sortLabels[m]
}

// ParseSortMode accepts both the short keys and the display labels.
func ParseSortMode(s string) (SortMode, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortBestMatch, true
	}
	for mode, label := range sortLabels {
		if strings.EqualFold(s, string(mode)) || strings.EqualFold(s, label) {
			return mode, true
		}
	}
	return "", false
}

// SortModes lista os modos na ordem do seletor.
func SortModes() []SortMode {
	return []SortMode{SortPriceAsc, SortPriceDesc, SortBestMatch}
}

type Filters struct {
	Gender   string   `json:"gender"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	MinPrice int      `json:"min_price"`
	MaxPrice int      `json:"max_price"`
	Sort     SortMode `json:"sort"`
}
