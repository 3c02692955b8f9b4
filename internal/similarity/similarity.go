// Package similarity implements the fuzzy text comparison primitives used by
// the answer grader: a Ratcliff/Obershelp block-matching ratio, keyword
// extraction with a Russian stop-word list and part-wise name comparison.
package similarity

import "strings"

// Characters stripped before keyword extraction.
const punctuation = ".,;:!?—()-\"'"

// Short function words excluded from keywords.
var stopWords = map[string]struct{}{
	"в": {}, "на": {}, "и": {}, "с": {}, "по": {}, "а": {}, "о": {}, "у": {},
	"к": {}, "от": {}, "до": {}, "из": {}, "для": {}, "за": {}, "под": {}, "над": {},
}

// Ratio returns a case-insensitive similarity ratio between two strings in
// [0, 1]. It is the classic block-matching measure 2*M/T, where M is the
// total number of characters in matching blocks found by the recursive
// longest-matching-block algorithm and T is the combined length. The measure
// is commutative and returns 1.0 for identical strings.
func Ratio(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}

	return 2 * float64(matchingTotal(ar, br)) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks between a and b.
// Blocks are found by repeatedly taking the longest match and recursing
// into the unmatched pieces on both sides of it.
func matchingTotal(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type window struct{ alo, ahi, blo, bhi int }

	matched := 0
	stack := []window{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, k := longestMatch(a, b2j, w.alo, w.ahi, w.blo, w.bhi)
		if k == 0 {
			continue
		}
		matched += k
		stack = append(stack,
			window{w.alo, i, w.blo, j},
			window{i + k, w.ahi, j + k, w.bhi},
		)
	}

	return matched
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] within the given
// window, preferring the earliest block in a and then in b on ties.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo

	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestk
}

// ExtractKeywords lowercases the text, strips punctuation, splits on
// whitespace and drops short tokens and stop words. The result keeps the
// original token order, including duplicates: match fractions are computed
// over the extracted sequence, not over a deduplicated set.
func ExtractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))

	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}

	return keywords
}

// KeywordMatchFraction returns the fraction of keywords that occur as
// substrings of the lowercased answer. Returns 0 for an empty keyword list.
func KeywordMatchFraction(answer string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	lowered := strings.ToLower(answer)

	found := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			found++
		}
	}

	return float64(found) / float64(len(keywords))
}

// NameSimilarity compares a user-entered name against the correct one by
// matching whitespace-separated parts: each part of the correct name counts
// as matched if any part of the user's input has Ratio > 0.8 with it. The
// result is the fraction of matched parts; exact equality short-circuits
// to 1.0.
func NameSimilarity(userName, correctName string) float64 {
	user := strings.ToLower(userName)
	correct := strings.ToLower(correctName)

	if user == correct {
		return 1.0
	}

	userParts := strings.Fields(user)
	correctParts := strings.Fields(correct)
	if len(correctParts) == 0 {
		return 0.0
	}

	matched := 0
	for _, cp := range correctParts {
		for _, up := range userParts {
			if Ratio(up, cp) > 0.8 {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(correctParts))
}
