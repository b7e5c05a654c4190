package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	men, ok := c.Categories("men")
	if !ok {
		t.Fatal("expected Men in default catalog")
	}
	if men[0] != "Shirt" || len(men) != 12 {
		t.Errorf("Men categories = %v", men)
	}

	women, ok := c.Categories("Women")
	if !ok || len(women) != 11 {
		t.Errorf("Women categories = %v", women)
	}

	if c.Colors[0] != AnyColor {
		t.Errorf("first color = %q, want %q", c.Colors[0], AnyColor)
	}
	if c.Budget.DefaultMin != 499 || c.Budget.DefaultMax != 3000 {
		t.Errorf("budget defaults = %d..%d", c.Budget.DefaultMin, c.Budget.DefaultMax)
	}
	if c.Budget.Floor != 199 || c.Budget.Ceiling != 20000 || c.Budget.Step != 100 {
		t.Errorf("budget bounds = %+v", c.Budget)
	}
}

func TestCanonical(t *testing.T) {
	got, ok := Canonical([]string{"Black", "White"}, " black ")
	if !ok || got != "Black" {
		t.Errorf("Canonical = (%q, %v)", got, ok)
	}
	if _, ok := Canonical([]string{"Black"}, "Purple"); ok {
		t.Error("expected Purple to be rejected")
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no genders",
			yaml: "colors: [Any]\n",
			want: ErrNoGenders,
		},
		{
			name: "empty categories",
			yaml: "genders:\n  - name: Men\ncolors: [Any]\n",
			want: ErrNoCategories,
		},
		{
			name: "missing Any",
			yaml: "genders:\n  - name: Men\n    categories: [Shirt]\ncolors: [Black]\n",
			want: ErrNoAnyColor,
		},
		{
			name: "bad budget",
			yaml: "genders:\n  - name: Men\n    categories: [Shirt]\ncolors: [Any]\nbudget:\n  floor: 10\n  ceiling: 100\n  default_min: 200\n  default_max: 300\n",
			want: ErrInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
genders:
  - name: Kids
    categories: [Shorts]
colors: [Any, Yellow]
budget:
  floor: 0
  ceiling: 1000
  step: 50
  default_min: 100
  default_max: 500
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if names := c.GenderNames(); len(names) != 1 || names[0] != "Kids" {
		t.Errorf("GenderNames = %v", names)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
