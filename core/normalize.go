package core

import "strings"

// NormalizeQuery folds a raw query into the canonical form used for
// logging, aggregation keys, and vocabulary lookups: lowercase with
// runs of whitespace collapsed to single spaces.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
