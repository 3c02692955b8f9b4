package entities

import "math"

// MarathonTier classifies a finished marathon by its accuracy.
type MarathonTier int

const (
	TierWeak   MarathonTier = iota // accuracy < 50
	TierMedium                     // accuracy < 70
	TierStrong                     // accuracy >= 70
)

// MarathonEntry records one answered marathon question.
type MarathonEntry struct {
	Type      QuestionType
	Question  string // prompt-side text of the fact
	Answer    string // expected answer text
	IsCorrect bool
}

// MarathonSession is a fixed-length sequence of mixed-type questions
// graded as one session with aggregate scoring.
type MarathonSession struct {
	Total    int            // requested question count
	Position int            // index of the next question to present
	Correct  int            // running correct count
	Types    []QuestionType // pre-built question type sequence, len == Total
	History  []MarathonEntry
}

// NewMarathonSession creates a marathon session over a prepared type sequence.
func NewMarathonSession(types []QuestionType) *MarathonSession {
	return &MarathonSession{
		Total:   len(types),
		Types:   types,
		History: make([]MarathonEntry, 0, len(types)),
	}
}

// Finished reports whether every question has been presented.
func (m *MarathonSession) Finished() bool {
	return m.Position >= m.Total
}

// NextType returns the type of the next question and advances the position.
func (m *MarathonSession) NextType() QuestionType {
	t := m.Types[m.Position]
	m.Position++
	return t
}

// RecordAnswer appends a graded question to the history and updates the score.
func (m *MarathonSession) RecordAnswer(q *Question, isCorrect bool) {
	m.History = append(m.History, MarathonEntry{
		Type:      q.Type,
		Question:  q.Subject(),
		Answer:    q.Expected(),
		IsCorrect: isCorrect,
	})
	if isCorrect {
		m.Correct++
	}
}

// Accuracy returns the percentage of correct answers rounded to 2 decimals.
func (m *MarathonSession) Accuracy() float64 {
	if m.Total == 0 {
		return 0
	}
	return math.Round(float64(m.Correct)/float64(m.Total)*100*100) / 100
}

// Tier maps the final accuracy onto a recommendation tier.
func (m *MarathonSession) Tier() MarathonTier {
	switch acc := m.Accuracy(); {
	case acc < 50:
		return TierWeak
	case acc < 70:
		return TierMedium
	default:
		return TierStrong
	}
}
