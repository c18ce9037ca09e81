package catalog

import "strings"

// MaxQueryRunes caps search queries taken from URLs and flags.
const MaxQueryRunes = 100

// Filter returns the products whose title, category, or any stack tag
// contains query as a case-insensitive substring. Order is preserved and an
// empty query matches everything. The input slice is never modified.
func Filter(products []Product, query string) []Product {
	out := make([]Product, 0, len(products))
	if query == "" {
		return append(out, products...)
	}

	q := strings.ToLower(query)
	for _, p := range products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p is selected by query.
func Matches(p Product, query string) bool {
	return matches(p, strings.ToLower(query))
}

// NormalizeQuery trims surrounding whitespace and caps a user supplied query
// at MaxQueryRunes.
func NormalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if r := []rune(q); len(r) > MaxQueryRunes {
		q = string(r[:MaxQueryRunes])
	}
	return q
}

// SearchKey is the lowercased searchable fields of p, one per line. explore.js
// matches a query against each line the same way Filter does.
func SearchKey(p Product) string {
	return strings.ToLower(strings.Join(searchFields(p), "\n"))
}

func searchFields(p Product) []string {
	fields := make([]string, 0, 2+len(p.Stack))
	fields = append(fields, p.Title, p.Category)
	return append(fields, p.Stack...)
}

// matches expects q already lowercased.
func matches(p Product, q string) bool {
	for _, f := range searchFields(p) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
