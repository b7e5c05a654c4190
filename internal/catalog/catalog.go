// Package catalog holds the filter choices offered to the user: genders with their
// categories, colors and the budget slider bounds.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnyColor é o valor sentinela que não restringe a cor.
const AnyColor = "Any"

var (
	ErrNoGenders     = errors.New("catalog: at least one gender is required")
	ErrNoCategories  = errors.New("catalog: every gender needs at least one category")
	ErrNoAnyColor    = errors.New("catalog: colors must include \"Any\"")
	ErrInvalidBudget = errors.New("catalog: budget floor must be <= default_min <= default_max <= ceiling")
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Gender struct {
	Name       string   `yaml:"name" json:"name"`
	Categories []string `yaml:"categories" json:"categories"`
}

type Budget struct {
	Floor      int `yaml:"floor" json:"floor"`
	Ceiling    int `yaml:"ceiling" json:"ceiling"`
	Step       int `yaml:"step" json:"step"`
	DefaultMin int `yaml:"default_min" json:"default_min"`
	DefaultMax int `yaml:"default_max" json:"default_max"`
}

type Catalog struct {
	Genders  []Gender `yaml:"genders" json:"genders"`
	Colors   []string `yaml:"colors" json:"colors"`
	Budget   Budget   `yaml:"budget" json:"budget"`
	Currency string   `yaml:"currency" json:"currency"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load lê o catálogo de um arquivo; caminho vazio usa o embutido.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Genders) == 0 {
		return ErrNoGenders
	}
	for _, g := range c.Genders {
		if len(g.Categories) == 0 {
			return fmt.Errorf("%w: %s", ErrNoCategories, g.Name)
		}
	}
	if !contains(c.Colors, AnyColor) {
		return ErrNoAnyColor
	}
	b := c.Budget
	if b.Floor > b.DefaultMin || b.DefaultMin > b.DefaultMax || b.DefaultMax > b.Ceiling {
		return ErrInvalidBudget
	}
	return nil
}

// Categories returns the categories offered for a gender, matched case-insensitively.
func (c *Catalog) Categories(gender string) ([]string, bool) {
	for _, g := range c.Genders {
		if strings.EqualFold(g.Name, gender) {
			return g.Categories, true
		}
	}
	return nil, false
}

func (c *Catalog) GenderNames() []string {
	names := make([]string, 0, len(c.Genders))
	for _, g := range c.Genders {
		names = append(names, g.Name)
	}
	return names
}

// Canonical devolve a grafia do catálogo para um valor digitado em qualquer caixa.
func Canonical(options []string, v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o, true
		}
	}
	return "", false
}

func contains(options []string, v string) bool {
	_, ok := Canonical(options, v)
	return ok
}
