package normalizer

import "dealfinder/internal/model"

// Summarize computes the result-set summary in one pass. ok is false for an empty
// list, where none of the figures are meaningful.
func Summarize(products []model.Product) (model.Summary, bool) {
	if len(products) == 0 {
		return model.Summary{}, false
	}

	s := model.Summary{
		Count: len(products),
		Min:   products[0].PriceValue,
		Max:   products[0].PriceValue,
	}
	stores := make(map[string]struct{})

	for _, p := range products {
		s.Total += p.PriceValue
		if p.PriceValue < s.Min {
			s.Min = p.PriceValue
		}
		if p.PriceValue > s.Max {
			s.Max = p.PriceValue
		}
		stores[p.Source] = struct{}{}
	}

	// divisão inteira = média truncada, preços nunca são negativos
	s.Average = s.Total / s.Count
	s.StoreCount = len(stores)

	return s, true
}
