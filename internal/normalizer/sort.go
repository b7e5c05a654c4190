package normalizer

import (
	"sort"

	"dealfinder/internal/model"
)

// Sort returns a sorted copy. Price sorts are stable, so ties keep the provider's
// order; best-match leaves the provider's relevance order untouched.
func Sort(products []model.Product, mode model.SortMode) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	switch mode {
	case model.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue < out[j].PriceValue
		})
	case model.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceValue > out[j].PriceValue
		})
	}

	return out
}
