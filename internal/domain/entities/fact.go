package entities

// FactKind distinguishes the two kinds of quizzable facts.
type FactKind string

const (
	KindEvent  FactKind = "event"
	KindFigure FactKind = "figure"
)

// Event is a dated historical event.
// IDs are dense non-negative integers assigned at creation and never reused.
type Event struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`        // "1569", "1941-1944" or "27 июля 1990"
	Description string `json:"description"` // what happened on that date
}

// Figure is a historical figure together with their achievement.
type Figure struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Achievement string `json:"achievement"`
}
