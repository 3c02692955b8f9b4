package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

func TestFormatResult_CorrectDate(t *testing.T) {
	q := &entities.Question{
		Type:  entities.ByDate,
		Event: &entities.Event{Date: "1569", Description: "Люблинская уния"},
	}

	got := formatResult(q, entities.GradeResult{IsCorrect: true})
	assert.Contains(t, got, "✅ Правильно!")
	assert.Contains(t, got, "📅 1569: Люблинская уния")
	assert.NotContains(t, got, "Совет")
}

func TestFormatResult_IncorrectAddsAdvice(t *testing.T) {
	q := &entities.Question{
		Type:   entities.ByAchievement,
		Figure: &entities.Figure{Name: "Тадеуш Костюшко", Achievement: "Руководитель восстания 1794 года"},
	}

	got := formatResult(q, entities.GradeResult{IsCorrect: false})
	assert.Contains(t, got, "❌ Неправильно.")
	assert.Contains(t, got, "Деятель: Тадеуш Костюшко")
	assert.Contains(t, got, "💡 Совет:")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "короткий", truncate("короткий", 30))
	assert.Equal(t, "аб", truncate("аб", 2))

	long := "Восстание под руководством Кастуся Калиновского"
	got := truncate(long, 30)
	assert.Equal(t, string([]rune(long)[:30])+"...", got)
}

func TestFormatMarathonSummary(t *testing.T) {
	m := entities.NewMarathonSession([]entities.QuestionType{entities.ByDate, entities.ByEvent})
	q1 := &entities.Question{Type: entities.ByDate, Event: &entities.Event{Date: "1569", Description: "Люблинская уния"}}
	q2 := &entities.Question{Type: entities.ByEvent, Event: &entities.Event{Date: "1863-1864", Description: "Восстание Калиновского"}}
	m.RecordAnswer(q1, true)
	m.RecordAnswer(q2, false)

	got := formatMarathonSummary(m)
	assert.Contains(t, got, "🏁 Марафон завершен!")
	assert.Contains(t, got, "1 из 2")
	assert.Contains(t, got, "1. Дата: 1569 ✅")
	assert.Contains(t, got, "2. Событие: Восстание Калиновского ❌")
	assert.Contains(t, got, "Рекомендации")
}

func TestFormatStats_Empty(t *testing.T) {
	stats := &entities.UserStats{}
	got := formatStats(stats, nil, nil)
	assert.Contains(t, got, "У вас пока нет статистики обучения.")
}

func TestFormatStats_WithData(t *testing.T) {
	stats := &entities.UserStats{
		TestsTotal:   10,
		TestsCorrect: 7,
		Accuracy:     70,
		ByType: map[entities.QuestionType]entities.TestTypeStats{
			entities.ByDate: {Total: 4, Correct: 3, Accuracy: 75},
		},
	}
	difficult := []*entities.QuestionStats{{Question: "Дата: 1569", Accuracy: 25}}
	recent := []*entities.QuestionStats{{Question: "Событие: Восстание Калиновского"}}

	got := formatStats(stats, difficult, recent)
	assert.Contains(t, got, "Всего тестов: 10")
	assert.Contains(t, got, "Точность: 70.00%")
	assert.Contains(t, got, "Даты: 3/4 (75.00%)")
	assert.Contains(t, got, "Сложные вопросы:")
	assert.Contains(t, got, "Недавние ошибки:")
}

func TestFormatDailyProgress(t *testing.T) {
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	progress := []*entities.DailyProgress{
		{Day: day},
		{Day: day.AddDate(0, 0, 1), Total: 4, Correct: 3, Accuracy: 75},
	}

	got := formatDailyProgress(progress)
	assert.Contains(t, got, "24.08 — без тестов")
	assert.Contains(t, got, "25.08 — 3/4 (75.00%)")

	empty := formatDailyProgress([]*entities.DailyProgress{{Day: day}})
	assert.Contains(t, empty, "тестов не было")
}

func TestFormatReminderSettings(t *testing.T) {
	rem := entities.NewUserReminders(1, 10)
	assert.Contains(t, formatReminderSettings(rem), "🔕 Отключены")

	rem.Enabled = true
	rem.IntervalHours = 6
	assert.Contains(t, formatReminderSettings(rem), "🔔 Включены (каждые 6 ч.)")
}
