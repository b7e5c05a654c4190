package normalizer

import (
	"testing"

	"dealfinder/internal/model"
)

func titles(products []model.Product) string {
	var s string
	for _, p := range products {
		s += p.Title
	}
	return s
}

func TestSort_AscendingIsReverseOfDescending(t *testing.T) {
	in := []model.Product{
		{Title: "a", PriceValue: 300},
		{Title: "b", PriceValue: 100},
		{Title: "c", PriceValue: 500},
		{Title: "d", PriceValue: 200},
	}

	asc := Sort(in, model.SortPriceAsc)
	desc := Sort(in, model.SortPriceDesc)

	if titles(asc) != "bdac" {
		t.Errorf("asc = %q", titles(asc))
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc is not the reverse of asc: %q vs %q", titles(asc), titles(desc))
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	in := []model.Product{
		{Title: "A", PriceValue: 100},
		{Title: "B", PriceValue: 50},
		{Title: "C", PriceValue: 100},
		{Title: "D", PriceValue: 50},
	}

	if got := titles(Sort(in, model.SortPriceAsc)); got != "BDAC" {
		t.Errorf("asc = %q, want BDAC", got)
	}
	if got := titles(Sort(in, model.SortPriceDesc)); got != "ACBD" {
		t.Errorf("desc = %q, want ACBD", got)
	}
}

func TestSort_BestMatchKeepsOrder(t *testing.T) {
	in := []model.Product{
		{Title: "x", PriceValue: 900},
		{Title: "y", PriceValue: 100},
		{Title: "z", PriceValue: 500},
	}

	if got := titles(Sort(in, model.SortBestMatch)); got != "xyz" {
		t.Errorf("best match = %q, want xyz", got)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := []model.Product{
		{Title: "x", PriceValue: 900},
		{Title: "y", PriceValue: 100},
	}

	_ = Sort(in, model.SortPriceAsc)
	if titles(in) != "xy" {
		t.Errorf("input reordered to %q", titles(in))
	}
}
