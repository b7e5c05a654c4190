// Package export writes a product list as CSV or as a plain-text table.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"dealfinder/internal/model"
)

const FileName = "fashion_finder_results.csv"

var Header = []string{"title", "price_value", "formatted_price", "link", "thumbnail", "source", "rating", "reviews"}

// WriteCSV writes one row per product. Missing rating or reviews become empty cells.
func WriteCSV(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, p := range products {
		row := []string{
			p.Title,
			strconv.Itoa(p.PriceValue),
			p.FormattedPrice,
			p.Link,
			p.Thumbnail,
			p.Source,
			"",
			"",
		}
		if p.Rating != nil {
			row[6] = strconv.FormatFloat(*p.Rating, 'f', -1, 64)
		}
		if p.Reviews != nil {
			row[7] = strconv.Itoa(*p.Reviews)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
