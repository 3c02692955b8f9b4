package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

func TestCheckDateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{"exact year", "1569", "1569", true},
		{"exact range", "1941-1944", "1941-1944", true},
		{"year inside range", "1942", "1941-1944", true},
		{"range start", "1941", "1941-1944", true},
		{"range end", "1944", "1941-1944", true},
		{"year before range", "1940", "1941-1944", false},
		{"year after range", "1945", "1941-1944", false},
		{"different range", "1942-1943", "1941-1944", false},
		{"textual month full year", "1944", "3 июля 1944", true},
		{"textual month day only", "3 июля", "3 июля 1944", true},
		{"textual month miss", "июнь", "3 июля 1944", false},
		{"numeric mismatch", "1570", "1569", false},
		{"whitespace and case", "  1569  ", "1569", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkDateAnswer(tt.user, tt.correct))
		})
	}
}

func TestCheckDateAnswer_FallsThroughOnMalformedRange(t *testing.T) {
	// A dash in the correct answer that is not a year range must not reject
	// the answer outright: the remaining rules still apply.
	assert.True(t, checkDateAnswer("восстание 1863-1864 годов", "восстание 1863-1864 годов"))
	assert.False(t, checkDateAnswer("что-то", "начало-конец"))
}

func TestGrade_ByEventUsesDateRules(t *testing.T) {
	g := NewGrader()
	q := &entities.Question{
		Type:  entities.ByEvent,
		Event: &entities.Event{Date: "1941-1944", Description: "Оккупация Беларуси немецкими войсками"},
	}

	res := g.Grade(q, "1942")
	assert.True(t, res.IsCorrect)
	assert.Equal(t, 1.0, res.Score)

	res = g.Grade(q, "1939")
	assert.False(t, res.IsCorrect)
}

func TestGrade_ByDateAcceptsKeywordAnswer(t *testing.T) {
	g := NewGrader()
	q := &entities.Question{
		Type: entities.ByDate,
		Event: &entities.Event{
			Date:        "1863-1864",
			Description: "Восстание под руководством К. Калиновского",
		},
	}

	// Keyword coverage clears the threshold even though the phrasing differs.
	res := g.Grade(q, "восстание под руководством Калиновского против царской власти")
	assert.True(t, res.IsCorrect)

	res = g.Grade(q, "не знаю")
	assert.False(t, res.IsCorrect)
}

func TestGrade_ByFigureNameAcceptsCloseDescription(t *testing.T) {
	g := NewGrader()
	q := &entities.Question{
		Type: entities.ByFigureName,
		Figure: &entities.Figure{
			Name:        "Франциск Скорина",
			Achievement: "Белорусский первопечатник, переводчик Библии на старобелорусский язык",
		},
	}

	res := g.Grade(q, "белорусский первопечатник, переводчик Библии на старобелорусский язык")
	assert.True(t, res.IsCorrect)
	assert.Equal(t, 1.0, res.Score)
}

func TestGrade_ByAchievementChecksNameParts(t *testing.T) {
	g := NewGrader()
	q := &entities.Question{
		Type: entities.ByAchievement,
		Figure: &entities.Figure{
			Name:        "Тадеуш Костюшко",
			Achievement: "Руководитель восстания 1794 года",
		},
	}

	res := g.Grade(q, "Тадеуш Костюшко")
	assert.True(t, res.IsCorrect)
	assert.Equal(t, 1.0, res.Score)

	// A single matched part of two is below the name threshold.
	res = g.Grade(q, "Костюшко")
	assert.False(t, res.IsCorrect)
	assert.InDelta(t, 0.5, res.Score, 1e-9)
}
