// Package normalizer turns raw shopping results into display-ready products:
// price extraction, buy-link selection, filtering, sorting and summary stats.
package normalizer

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"dealfinder/internal/model"
)

const (
	MaxTitleLength = 80

	DefaultTitle          = "Product"
	DefaultFormattedPrice = "Price on site"
	DefaultSource         = "Unknown Store"
)

type DropReason string

const (
	DropMissingPrice     DropReason = "missing_price"
	DropMissingLink      DropReason = "missing_link"
	DropZeroPrice        DropReason = "zero_price"
	DropMissingThumbnail DropReason = "missing_thumbnail"
	DropOutOfRange       DropReason = "out_of_range"
)

// Report conta o que entrou, o que ficou e por que o resto foi descartado.
type Report struct {
	Received int
	Kept     int
	Dropped  map[DropReason]int
}

// Normalize filters and converts raw records, keeping the input order.
func Normalize(raw []model.RawProduct, minPrice, maxPrice int) []model.Product {
	products, _ := NormalizeWithReport(raw, minPrice, maxPrice)
	return products
}

// NormalizeWithReport is Normalize plus per-reason drop counts.
//
// A record with a price of exactly 0 is dropped as if it had no price. Free items
// are indistinguishable from missing prices here; keep it that way until product
// decides otherwise.
func NormalizeWithReport(raw []model.RawProduct, minPrice, maxPrice int) ([]model.Product, Report) {
	report := Report{Received: len(raw), Dropped: map[DropReason]int{}}
	products := make([]model.Product, 0, len(raw))

	for _, item := range raw {
		reason, ok := check(item, minPrice, maxPrice)
		if !ok {
			report.Dropped[reason]++
			continue
		}
		products = append(products, toProduct(item))
	}

	report.Kept = len(products)
	return products, report
}

func check(item model.RawProduct, minPrice, maxPrice int) (DropReason, bool) {
	price, ok := ExtractPrice(item["price"])
	if !ok {
		return DropMissingPrice, false
	}
	if _, ok := SelectBuyLink(item); !ok {
		return DropMissingLink, false
	}
	if price == 0 {
		return DropZeroPrice, false
	}
	if thumb, _ := item["thumbnail"].(string); thumb == "" {
		return DropMissingThumbnail, false
	}
	if price < minPrice || price > maxPrice {
		return DropOutOfRange, false
	}
	return "", true
}

// toProduct assume que check já aprovou o item.
func toProduct(item model.RawProduct) model.Product {
	price, _ := ExtractPrice(item["price"])
	link, _ := SelectBuyLink(item)

	p := model.Product{
		Title:          truncate(textOr(item, "title", DefaultTitle), MaxTitleLength),
		PriceValue:     price,
		FormattedPrice: textOr(item, "price", DefaultFormattedPrice),
		Link:           link,
		Thumbnail:      item["thumbnail"].(string),
		Source:         textOr(item, "source", DefaultSource),
	}

	if r, ok := toFloat(item["rating"]); ok {
		p.Rating = &r
	}
	if n, ok := toFloat(item["reviews"]); ok {
		reviews := int(n)
		p.Reviews = &reviews
	}

	return p
}

func textOr(item model.RawProduct, key, fallback string) string {
	if s, ok := scalarText(item[key]); ok {
		return s
	}
	return fallback
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		// "1,234" aparece em reviews de alguns provedores
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(x), ",", ""), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
