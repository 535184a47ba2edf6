// Package similarity provides the text similarity measure used for
// near-duplicate detection across resume content sections.
package similarity

import "strings"

// Ratio returns a similarity score in [0, 1] for two strings. Comparison is
// case-insensitive and ignores leading and trailing whitespace. The score is
// 2*LCS/(len(a)+len(b)) over runes, so identical strings score 1.0 and
// strings with no common subsequence score 0.0. Two empty strings are
// considered identical.
func Ratio(a, b string) float64 {
	ra := fold(a)
	rb := fold(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	lcs := lcsLength(ra, rb)
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}

func fold(s string) []rune {
	return []rune(strings.ToLower(strings.TrimSpace(s)))
}

// lcsLength computes the longest common subsequence length with two rolling
// rows, keeping memory proportional to the shorter string.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
