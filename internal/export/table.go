package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"dealfinder/internal/model"
)

const titleWidth = 48

// FormatPrice agrupa milhares com vírgula: 125000 -> "₹125,000".
func FormatPrice(currency string, n int) string {
	if n < 0 {
		return "-" + FormatPrice(currency, -n)
	}
	s := strconv.Itoa(n)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return currency + sb.String()
}

// WriteTable prints the products as an aligned text table. Widths are measured in
// terminal cells so titles with wide characters still line up.
func WriteTable(w io.Writer, currency string, products []model.Product) error {
	rows := [][]string{{"#", "Title", "Price", "Store", "Rating", "Link"}}
	for i, p := range products {
		rating := "-"
		if p.Rating != nil {
			rating = strconv.FormatFloat(*p.Rating, 'f', -1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(p.Title, titleWidth, "…"),
			FormatPrice(currency, p.PriceValue),
			p.Source,
			rating,
			p.Link,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			// última coluna sem padding para não deixar espaço no fim da linha
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the summary lines shown under the table.
func WriteSummary(w io.Writer, currency string, s model.Summary) error {
	_, err := fmt.Fprintf(w,
		"Found %d products\nAverage Price: %s\nPrice Range: %s - %s\nStores Found: %d\nTotal Value: %s\n",
		s.Count,
		FormatPrice(currency, s.Average),
		FormatPrice(currency, s.Min),
		FormatPrice(currency, s.Max),
		s.StoreCount,
		FormatPrice(currency, s.Total),
	)
	return err
}
