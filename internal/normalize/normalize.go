// Package normalize reduces a raw category keyword candidate to its canonical
// comparable form: lower-cased, trimmed, and stripped of the trailing
// descriptive suffixes Turkish speakers attach to spending keywords
// ("market harcaması" → "market").
package normalize

import "strings"

// suffixes lists the recognized trailing descriptors, longest first so the
// most specific form wins. Dotted and ASCII-folded spellings are both listed
// because extraction output is not consistent about Turkish characters.
var suffixes = []string{
	"alışverişi",
	"alisverisi",
	"harcaması",
	"harcamasi",
	"faturası",
	"faturasi",
	"ödemesi",
	"odemesi",
	"masrafı",
	"masrafi",
	"kazancı",
	"kazanci",
	"gideri",
	"geliri",
	"ödemi",
	"odemi",
}

// Suffixes returns the recognized suffix list in match order. The returned
// slice is read-only.
func Suffixes() []string {
	return suffixes
}

// Keyword normalizes a raw keyword candidate: lower-case, trim, strip
// trailing recognized suffixes until none remains, trim again. Stripping runs
// to a fixed point so the function is idempotent even when stacked suffixes
// appear ("su faturası ödemesi" → "su").
func Keyword(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	for {
		stripped := s
		for _, suffix := range suffixes {
			if strings.HasSuffix(stripped, suffix) {
				stripped = strings.TrimSpace(strings.TrimSuffix(stripped, suffix))
				break
			}
		}
		if stripped == s {
			return s
		}
		s = stripped
	}
}
