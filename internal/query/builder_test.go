package query

import (
	"errors"
	"testing"

	"dealfinder/internal/catalog"
	"dealfinder/internal/model"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		gender, category, color string
		want                    string
	}{
		{"Men", "Jeans", "Any", "Men Jeans"},
		{"Men", "Jeans", "any", "Men Jeans"},
		{"Women", "Dress", "Red", "Women Dress Red"},
		{"Women", "Polo T-Shirt", "Black", "Women Polo T-Shirt Black"},
	}

	for _, tt := range tests {
		if got := Build(tt.gender, tt.category, tt.color); got != tt.want {
			t.Errorf("Build(%q, %q, %q) = %q, want %q", tt.gender, tt.category, tt.color, got, tt.want)
		}
	}
}

func TestFromFilters(t *testing.T) {
	q, lo, hi := FromFilters(model.Filters{Gender: "Men", Category: "Hoodie", Color: "Grey", MinPrice: 100, MaxPrice: 900})
	if q != "Men Hoodie Grey" || lo != 100 || hi != 900 {
		t.Errorf("FromFilters = (%q, %d, %d)", q, lo, hi)
	}
}

func TestResolve_Defaults(t *testing.T) {
	c := catalog.Default()

	got, err := Resolve(c, model.Filters{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := model.Filters{Gender: "Men", Category: "Shirt", Color: "Any", MinPrice: 499, MaxPrice: 3000, Sort: model.SortBestMatch}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolve_Canonicalizes(t *testing.T) {
	got, err := Resolve(catalog.Default(), model.Filters{
		Gender: "women", Category: "kurti", Color: "pink", MinPrice: 199, MaxPrice: 1999, Sort: "Price: High to Low",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Gender != "Women" || got.Category != "Kurti" || got.Color != "Pink" || got.Sort != model.SortPriceDesc {
		t.Errorf("Resolve = %+v", got)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   model.Filters
		want error
	}{
		{"gender", model.Filters{Gender: "Kids"}, ErrUnknownGender},
		{"category for gender", model.Filters{Gender: "Men", Category: "Saree"}, ErrUnknownCategory},
		{"color", model.Filters{Color: "Purple"}, ErrUnknownColor},
		{"min above max", model.Filters{MinPrice: 3000, MaxPrice: 1000}, ErrInvalidPriceRange},
		{"negative", model.Filters{MinPrice: -5, MaxPrice: 10}, ErrInvalidPriceRange},
		{"below budget floor", model.Filters{MinPrice: 100, MaxPrice: 1000}, ErrInvalidPriceRange},
		{"above budget ceiling", model.Filters{MinPrice: 500, MaxPrice: 25000}, ErrInvalidPriceRange},
		{"max below default min", model.Filters{MaxPrice: 300}, ErrInvalidPriceRange},
		{"sort", model.Filters{Sort: "rating"}, ErrUnknownSort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(catalog.Default(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolve_SingleBound(t *testing.T) {
	tests := []struct {
		name             string
		min, max         int
		wantMin, wantMax int
	}{
		{"only min", 500, 0, 500, 3000},
		{"only max", 0, 1500, 499, 1500},
		{"budget edges", 199, 20000, 199, 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(catalog.Default(), model.Filters{MinPrice: tt.min, MaxPrice: tt.max})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got.MinPrice != tt.wantMin || got.MaxPrice != tt.wantMax {
				t.Errorf("range = %d..%d, want %d..%d", got.MinPrice, got.MaxPrice, tt.wantMin, tt.wantMax)
			}
		})
	}
}
