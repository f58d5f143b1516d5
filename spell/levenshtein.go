package spell

// levenshtein computes the edit distance between two strings, counting
// insertions, deletions, and substitutions. Operates on runes so
// multi-byte characters count as single edits.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Single row of the DP matrix, updated in place.
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			current := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(row[j]+1, min(row[j-1]+1, prev+cost))
			prev = current
		}
	}

	return row[len(rb)]
}

// levenshteinWithin reports whether the edit distance between a and b is
// at most limit, bailing out early once every cell in a row exceeds it.
func levenshteinWithin(a, b string, limit int) bool {
	ra := []rune(a)
	rb := []rune(b)

	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if diff > limit {
		return false
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0]
		row[0] = i
		rowMin := row[0]
		for j := 1; j <= len(rb); j++ {
			current := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(row[j]+1, min(row[j-1]+1, prev+cost))
			prev = current
			if row[j] < rowMin {
				rowMin = row[j]
			}
		}
		if rowMin > limit {
			return false
		}
	}

	return row[len(rb)] <= limit
}
