package normalizer

import (
	"strings"

	"dealfinder/internal/model"
)

// LinkFields is the priority order for purchase links, most reliable first.
// An earlier field wins even when a later one is also present.
var LinkFields = []string{
	"product_link",
	"merchant_link",
	"offers_link",
	"link",
	"source_link",
}

const productLookupURL = "https://www.google.com/shopping/product/"

// NormalizeURL makes a link absolute. Protocol-relative links get "https:", bare
// hosts get "https://", and anything already carrying http(s) is returned as is.
// No reachability or syntax check is done beyond the scheme.
func NormalizeURL(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(s, "//"):
		return "https:" + s, true
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return s, true
	default:
		return "https://" + s, true
	}
}

// SelectBuyLink escolhe o link de compra seguindo LinkFields; sem nenhum, monta a
// URL de consulta a partir do product_id.
func SelectBuyLink(raw model.RawProduct) (string, bool) {
	for _, key := range LinkFields {
		if u, ok := NormalizeURL(raw[key]); ok {
			return u, true
		}
	}

	if id, ok := scalarText(raw["product_id"]); ok && id != "" {
		return productLookupURL + id, true
	}

	return "", false
}
