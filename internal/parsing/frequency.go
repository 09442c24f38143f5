package parsing

import "sort"

// KeywordCount pairs a keyword with its occurrence count.
type KeywordCount struct {
	Word  string
	Count int
}

// Frequencies builds a frequency ranking of a keyword sequence:
// descending count, ties broken by first occurrence in the sequence.
// The stable tie-break makes the ranking deterministic for identical
// input, unlike a hash-ordered frequency table.
func Frequencies(keywords []string) []KeywordCount {
	counts := make(map[string]int, len(keywords))
	firstSeen := make(map[string]int, len(keywords))
	order := make([]string, 0, len(keywords))

	for i, kw := range keywords {
		if _, seen := counts[kw]; !seen {
			firstSeen[kw] = i
			order = append(order, kw)
		}
		counts[kw]++
	}

	ranked := make([]KeywordCount, 0, len(order))
	for _, kw := range order {
		ranked = append(ranked, KeywordCount{Word: kw, Count: counts[kw]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	return ranked
}

// TopN returns the first n entries of a ranking, or the whole ranking
// when it is shorter than n.
func TopN(ranked []KeywordCount, n int) []KeywordCount {
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}
