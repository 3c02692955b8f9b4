package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionType_Kind(t *testing.T) {
	assert.Equal(t, KindEvent, ByDate.Kind())
	assert.Equal(t, KindEvent, ByEvent.Kind())
	assert.Equal(t, KindFigure, ByFigureName.Kind())
	assert.Equal(t, KindFigure, ByAchievement.Kind())
}

func TestQuestion_SubjectAndExpected(t *testing.T) {
	ev := &Event{Date: "1569", Description: "Люблинская уния"}
	f := &Figure{Name: "Франциск Скорина", Achievement: "Первопечатник"}

	tests := []struct {
		q        Question
		subject  string
		expected string
	}{
		{Question{Type: ByDate, Event: ev}, "1569", "Люблинская уния"},
		{Question{Type: ByEvent, Event: ev}, "Люблинская уния", "1569"},
		{Question{Type: ByFigureName, Figure: f}, "Франциск Скорина", "Первопечатник"},
		{Question{Type: ByAchievement, Figure: f}, "Первопечатник", "Франциск Скорина"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.subject, tt.q.Subject(), string(tt.q.Type))
		assert.Equal(t, tt.expected, tt.q.Expected(), string(tt.q.Type))
	}
}

func TestQuestion_Label(t *testing.T) {
	q := Question{Type: ByEvent, Event: &Event{Date: "1569", Description: "Люблинская уния"}}
	assert.Equal(t, "Событие: Люблинская уния", q.Label())
}

func TestQuestion_PromptMentionsSubject(t *testing.T) {
	q := Question{Type: ByFigureName, Figure: &Figure{Name: "Франциск Скорина", Achievement: "Первопечатник"}}
	assert.Contains(t, q.Prompt(), "Франциск Скорина")
}
