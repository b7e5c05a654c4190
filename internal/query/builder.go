// Package query turns the user's filter selection into a provider search query.
package query

import (
	"errors"
	"fmt"
	"strings"

	"dealfinder/internal/catalog"
	"dealfinder/internal/model"
)

var (
	ErrUnknownGender     = errors.New("unknown gender")
	ErrUnknownCategory   = errors.New("category not offered for gender")
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownSort       = errors.New("unknown sort mode")
	ErrInvalidPriceRange = errors.New("invalid price range")
)

// Build junta gênero e categoria, e a cor só quando não for "Any".
// Nenhum escape é feito aqui; isso fica com o cliente HTTP.
func Build(gender, category, color string) string {
	parts := []string{gender, category}
	if !strings.EqualFold(color, catalog.AnyColor) {
		parts = append(parts, color)
	}
	return strings.Join(parts, " ")
}

// FromFilters returns the search query and the closed price interval for f.
func FromFilters(f model.Filters) (string, int, int) {
	return Build(f.Gender, f.Category, f.Color), f.MinPrice, f.MaxPrice
}

// Resolve applies catalog defaults to empty fields, canonicalizes spelling and
// validates the selection against the catalog. A zero price bound means unset; the
// range must stay inside the catalog budget.
func Resolve(c *catalog.Catalog, f model.Filters) (model.Filters, error) {
	out := f

	if strings.TrimSpace(out.Gender) == "" {
		out.Gender = c.Genders[0].Name
	}
	gender, ok := catalog.Canonical(c.GenderNames(), out.Gender)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownGender, f.Gender)
	}
	out.Gender = gender

	categories, _ := c.Categories(gender)
	if strings.TrimSpace(out.Category) == "" {
		out.Category = categories[0]
	}
	category, ok := catalog.Canonical(categories, out.Category)
	if !ok {
		return f, fmt.Errorf("%w: %q for %s", ErrUnknownCategory, f.Category, gender)
	}
	out.Category = category

	if strings.TrimSpace(out.Color) == "" {
		out.Color = catalog.AnyColor
	}
	color, ok := catalog.Canonical(c.Colors, out.Color)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownColor, f.Color)
	}
	out.Color = color

	// limite ausente (0) usa o default do catálogo
	if out.MinPrice == 0 {
		out.MinPrice = c.Budget.DefaultMin
	}
	if out.MaxPrice == 0 {
		out.MaxPrice = c.Budget.DefaultMax
	}
	b := c.Budget
	if out.MinPrice < b.Floor || out.MaxPrice > b.Ceiling || out.MinPrice > out.MaxPrice {
		return f, fmt.Errorf("%w: %d..%d outside %d..%d", ErrInvalidPriceRange, out.MinPrice, out.MaxPrice, b.Floor, b.Ceiling)
	}

	mode, ok := model.ParseSortMode(string(out.Sort))
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownSort, f.Sort)
	}
	out.Sort = mode

	return out, nil
}
