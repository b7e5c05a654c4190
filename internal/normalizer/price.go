package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Primeiro trecho numérico: dígitos com vírgulas de milhar e no máximo um ponto decimal.
var priceRe = regexp.MustCompile(`[\d,]+\.?\d*`)

// ExtractPrice pulls an integer price out of free-form price text such as "₹1,299.00"
// or "$50". Only the first numeric run is considered and the value is truncated, not
// rounded. Any failure reports false; a literal zero is a valid price.
func ExtractPrice(v any) (int, bool) {
	text, ok := scalarText(v)
	if !ok || text == "" {
		return 0, false
	}

	match := priceRe.FindString(text)
	if match == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f >= float64(math.MaxInt) {
		return 0, false
	}

	return int(f), true
}

// scalarText converte valores vindos do JSON para texto sem notação científica.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return "", false
	default:
		return fmt.Sprint(x), true
	}
}
