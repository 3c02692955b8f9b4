package entities

import "fmt"

// QuestionType determines which fact field is shown as the prompt
// and which one the user is expected to answer with.
type QuestionType string

const (
	ByDate        QuestionType = "date"        // prompt: date, expected: description
	ByEvent       QuestionType = "event"       // prompt: description, expected: date
	ByFigureName  QuestionType = "figure"      // prompt: name, expected: achievement
	ByAchievement QuestionType = "achievement" // prompt: achievement, expected: name
)

// AllQuestionTypes lists every question type exactly once.
var AllQuestionTypes = []QuestionType{ByDate, ByEvent, ByFigureName, ByAchievement}

// Kind returns the fact kind this question type draws from.
func (t QuestionType) Kind() FactKind {
	switch t {
	case ByDate, ByEvent:
		return KindEvent
	default:
		return KindFigure
	}
}

// Title returns the human-readable Russian name of the question type.
func (t QuestionType) Title() string {
	switch t {
	case ByDate:
		return "Дата"
	case ByEvent:
		return "Событие"
	case ByFigureName:
		return "Деятель"
	case ByAchievement:
		return "Достижение"
	}
	return string(t)
}

// Question is one active quiz question with a snapshot of the fact
// it was built from. Event is set for ByDate/ByEvent questions,
// Figure for ByFigureName/ByAchievement.
type Question struct {
	Type   QuestionType
	Event  *Event
	Figure *Figure
}

// Subject returns the prompt-side field of the underlying fact.
func (q *Question) Subject() string {
	switch q.Type {
	case ByDate:
		return q.Event.Date
	case ByEvent:
		return q.Event.Description
	case ByFigureName:
		return q.Figure.Name
	case ByAchievement:
		return q.Figure.Achievement
	}
	return ""
}

// Expected returns the answer-side field of the underlying fact.
func (q *Question) Expected() string {
	switch q.Type {
	case ByDate:
		return q.Event.Description
	case ByEvent:
		return q.Event.Date
	case ByFigureName:
		return q.Figure.Achievement
	case ByAchievement:
		return q.Figure.Name
	}
	return ""
}

// Prompt returns the user-facing question text.
func (q *Question) Prompt() string {
	switch q.Type {
	case ByDate:
		return fmt.Sprintf("📅 %s\n\nКакое историческое событие произошло в эту дату? Опишите своими словами.", q.Event.Date)
	case ByEvent:
		return fmt.Sprintf("🔍 Событие: %s\n\nКогда произошло это событие? Укажите дату.", q.Event.Description)
	case ByFigureName:
		return fmt.Sprintf("👤 %s\n\nЧем прославился этот исторический деятель? Опишите его основные достижения.", q.Figure.Name)
	case ByAchievement:
		return fmt.Sprintf("🏆 Достижение: %s\n\nКакой исторический деятель известен этим? Укажите полное имя.", q.Figure.Achievement)
	}
	return ""
}

// Label returns the stable question label used as a statistics key.
func (q *Question) Label() string {
	return q.Type.Title() + ": " + q.Subject()
}

// GradeResult is the outcome of grading a single free-text answer.
type GradeResult struct {
	IsCorrect   bool
	Score       float64 // best similarity measure used, in [0, 1]
	Explanation string
}
