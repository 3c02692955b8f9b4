package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio_Identical(t *testing.T) {
	for _, s := range []string{"a", "1569", "Тадеуш Костюшко", "Великая Отечественная война"} {
		assert.Equal(t, 1.0, Ratio(s, s), s)
	}
}

func TestRatio_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("ЛюБлИнСкАя УнИя", "люблинская уния"))
}

func TestRatio_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
}

func TestRatio_Commutative(t *testing.T) {
	pairs := [][2]string{
		{"восстание", "восстания"},
		{"1941-1944", "1944"},
		{"кастусь калиновский", "калиновский"},
		{"abcd", "bcde"},
	}
	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]), "%s vs %s", p[0], p[1])
	}
}

func TestRatio_KnownValues(t *testing.T) {
	// Longest block "bcd" of length 3, total length 8: 2*3/8.
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)

	// Single-letter typo at the end: 2*7/16.
	assert.InDelta(t, 0.875, Ratio("костюшко", "костюшка"), 1e-9)
}

func TestRatio_Empty(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("", "abc"))
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Восстание под руководством К. Калиновского")
	assert.Equal(t, []string{"восстание", "руководством", "калиновского"}, got)
}

func TestExtractKeywords_KeepsDuplicates(t *testing.T) {
	got := ExtractKeywords("уния, уния и снова уния")
	assert.Equal(t, []string{"уния", "уния", "снова", "уния"}, got)
}

func TestExtractKeywords_DropsShortAndStopWords(t *testing.T) {
	got := ExtractKeywords("в на для за под над мир")
	assert.Empty(t, got)
}

func TestKeywordMatchFraction(t *testing.T) {
	keywords := []string{"восстание", "руководством", "калиновского"}

	assert.InDelta(t, 2.0/3.0, KeywordMatchFraction("восстание Калиновского", keywords), 1e-9)
	assert.Equal(t, 1.0, KeywordMatchFraction("восстание под руководством калиновского", keywords))
	assert.Equal(t, 0.0, KeywordMatchFraction("ничего общего", keywords))
}

func TestKeywordMatchFraction_EmptyKeywords(t *testing.T) {
	assert.Equal(t, 0.0, KeywordMatchFraction("любой ответ", nil))
}

func TestNameSimilarity_Exact(t *testing.T) {
	assert.Equal(t, 1.0, NameSimilarity("Тадеуш Костюшко", "Тадеуш Костюшко"))
	assert.Equal(t, 1.0, NameSimilarity("тадеуш костюшко", "Тадеуш Костюшко"))
}

func TestNameSimilarity_PartialParts(t *testing.T) {
	// One of two parts matched.
	require.InDelta(t, 0.5, NameSimilarity("Костюшко", "Тадеуш Костюшко"), 1e-9)
}

func TestNameSimilarity_Typo(t *testing.T) {
	// A close misspelling of the surname still matches its part.
	assert.InDelta(t, 0.5, NameSimilarity("Костюшка", "Тадеуш Костюшко"), 1e-9)
}

func TestNameSimilarity_NoParts(t *testing.T) {
	assert.Equal(t, 0.0, NameSimilarity("кто-то", " "))
}
