package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

var foldReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ä", "a", "å", "a",
	"ç", "c",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i", "ı", "i",
	"ñ", "n",
	"ò", "o", "ó", "o", "ô", "o", "ö", "o", "ø", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ğ", "g", "ş", "s", "ß", "ss",
)

// Generate creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Navy Blue" → "navy-blue"
//   - "Crème Brûlée" → "creme-brulee"
//   - "Hello   World!" → "hello-world"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = foldReplacer.Replace(s)
	s = slugRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Humanize turns a slug back into a title-cased label: "t-shirts" → "T Shirts".
func Humanize(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
