package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/similarity"
)

// Grading thresholds calibrated against the block-matching ratio.
const (
	textSimilarityThreshold  = 0.6
	keywordFractionThreshold = 0.7
	nameSimilarityThreshold  = 0.8
	dateFallbackThreshold    = 0.8
)

// Grader grades free-text answers against a question's reference fact.
// Grading is heuristic string comparison, not semantic understanding.
type Grader struct{}

func NewGrader() *Grader {
	return &Grader{}
}

// Grade applies the per-type grading policy to the user's raw answer.
func (g *Grader) Grade(q *entities.Question, answer string) entities.GradeResult {
	switch q.Type {
	case entities.ByDate, entities.ByFigureName:
		return g.gradeText(answer, q.Expected())
	case entities.ByEvent:
		return g.gradeDate(answer, q.Expected())
	case entities.ByAchievement:
		return g.gradeName(answer, q.Expected())
	}
	return entities.GradeResult{}
}

// gradeText combines overall similarity with keyword coverage: the answer is
// correct if either measure clears its threshold.
func (g *Grader) gradeText(answer, reference string) entities.GradeResult {
	sim := similarity.Ratio(answer, reference)

	keywords := similarity.ExtractKeywords(reference)
	kwFraction := similarity.KeywordMatchFraction(answer, keywords)

	score := sim
	if kwFraction > score {
		score = kwFraction
	}

	return entities.GradeResult{
		IsCorrect:   sim >= textSimilarityThreshold || kwFraction >= keywordFractionThreshold,
		Score:       score,
		Explanation: fmt.Sprintf("схожесть текста %.0f%%, ключевые слова %.0f%%", sim*100, kwFraction*100),
	}
}

// gradeDate checks a date answer with the rule chain in checkDateAnswer.
func (g *Grader) gradeDate(answer, correctDate string) entities.GradeResult {
	if checkDateAnswer(answer, correctDate) {
		return entities.GradeResult{
			IsCorrect:   true,
			Score:       1.0,
			Explanation: "дата распознана",
		}
	}

	sim := similarity.Ratio(answer, correctDate)
	return entities.GradeResult{
		Score:       sim,
		Explanation: fmt.Sprintf("схожесть с датой %.0f%%", sim*100),
	}
}

// gradeName compares names part-wise.
func (g *Grader) gradeName(answer, correctName string) entities.GradeResult {
	sim := similarity.NameSimilarity(answer, correctName)

	return entities.GradeResult{
		IsCorrect:   sim >= nameSimilarityThreshold,
		Score:       sim,
		Explanation: fmt.Sprintf("совпадение частей имени %.0f%%", sim*100),
	}
}

// checkDateAnswer validates a free-text date answer against the correct date.
// Both sides are trimmed and lowercased; the first matching rule wins:
//  1. exact string equality;
//  2. a year range "YYYY-YYYY" accepts a single year inside the range or the
//     exact same range;
//  3. a composite date with a textual month accepts any answer containing one
//     of its numeric tokens as a substring;
//  4. two purely numeric strings must be equal;
//  5. otherwise the similarity ratio decides.
//
// Malformed numbers never fail the check outright, they fall through to the
// similarity fallback.
func checkDateAnswer(userAnswer, correctAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))

	if user == correct {
		return true
	}

	if strings.Contains(correct, "-") {
		if handled, matched := checkYearRange(user, correct); handled {
			return matched
		}
	}

	if strings.Contains(correct, " ") {
		for _, part := range strings.Fields(correct) {
			if isNumeric(part) && strings.Contains(user, part) {
				return true
			}
		}
	}

	if isNumeric(correct) && isNumeric(user) {
		return correct == user
	}

	return similarity.Ratio(user, correct) >= dateFallbackThreshold
}

// checkYearRange handles a "YYYY-YYYY" correct answer. It reports handled
// only when both the correct bounds and the user's answer parse cleanly;
// otherwise the caller falls through to the remaining rules.
func checkYearRange(user, correct string) (handled, matched bool) {
	bounds := strings.Split(correct, "-")
	if len(bounds) != 2 {
		return false, false
	}

	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return false, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return false, false
	}

	if isNumeric(user) {
		year, err := strconv.Atoi(user)
		if err != nil {
			return false, false
		}
		return true, start <= year && year <= end
	}

	if strings.Contains(user, "-") {
		userBounds := strings.Split(user, "-")
		if len(userBounds) != 2 {
			return false, false
		}
		userStart, err := strconv.Atoi(strings.TrimSpace(userBounds[0]))
		if err != nil {
			return false, false
		}
		userEnd, err := strconv.Atoi(strings.TrimSpace(userBounds[1]))
		if err != nil {
			return false, false
		}
		return true, userStart == start && userEnd == end
	}

	return false, false
}

// isNumeric reports whether s is a non-empty string of decimal digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
