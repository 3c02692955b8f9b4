// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

const (
	msgWelcome = "👋 Приветствую вас в боте для подготовки к экзамену по истории Беларуси!\n\n" +
		"🤖 Возможности бота:\n" +
		"• 📚 Тестирование знаний по датам, событиям и историческим деятелям\n" +
		"• 🏆 Марафон для комплексной проверки знаний\n" +
		"• 📊 Отслеживание прогресса и персональные рекомендации\n" +
		"• ⏰ Регулярная отправка учебных материалов\n" +
		"• ➕ Добавление собственных данных в базу\n\n" +
		"🚀 Начало работы:\n" +
		"1️⃣ Проверьте свои знания в «Проверка знаний»\n" +
		"2️⃣ Пройдите «Марафон» для комплексной подготовки\n" +
		"3️⃣ Следите за прогрессом в «Статистика»\n\n" +
		"Выберите режим:"

	msgHelp = "🤖 Помощник по истории Беларуси\n\n" +
		"Этот бот создан, чтобы помочь вам эффективно подготовиться к экзамену.\n\n" +
		"📚 Основные команды:\n" +
		"/start — запустить бота\n" +
		"/test — пройти тест\n" +
		"/marathon — начать марафон\n" +
		"/stats — показать статистику\n" +
		"/addevent — добавить событие\n" +
		"/addfigure — добавить деятеля\n" +
		"/reminders — настроить напоминания\n" +
		"/cancel — отменить текущее действие\n\n" +
		"📝 Как отвечать на вопросы:\n" +
		"• Система распознает близкие по смыслу ответы\n" +
		"• Старайтесь использовать ключевые термины\n" +
		"• Для периодов указывайте диапазон (например, 1863-1864)"

	msgChooseTestType = "📚 Выберите тип теста:"

	msgNoEvents = "К сожалению, в базе данных нет событий. " +
		"Добавьте их через команду /addevent."
	msgNoFigures = "К сожалению, в базе данных нет исторических деятелей. " +
		"Добавьте их через команду /addfigure."
	msgNoFacts = "К сожалению, в базе данных недостаточно данных для тестирования. " +
		"Добавьте события и деятелей через меню «Добавить данные»."

	msgNoActiveQuestion = "⚠️ Произошла ошибка. Пожалуйста, начните тестирование заново."
	msgNoMarathon       = "⚠️ Марафон не инициализирован. Пожалуйста, начните заново."
	msgMarathonNext     = "Нажмите кнопку, чтобы перейти к следующему вопросу марафона."

	msgAddEventPrompt  = "📅 Введите событие в формате:\n\nдата | описание\n\nНапример: 1569 | Люблинская уния. Объединение ВКЛ и Польского королевства"
	msgAddFigurePrompt = "👤 Введите деятеля в формате:\n\nимя | достижение\n\nНапример: Франциск Скорина | Белорусский первопечатник, переводчик Библии на старобелорусский язык"
	msgAddFormatError  = "Некорректный формат. Используйте разделитель «|» и заполните обе части."
	msgEventAdded      = "✅ Событие добавлено в базу данных."
	msgFigureAdded     = "✅ Деятель добавлен в базу данных."
	msgChooseAddKind   = "➕ Что вы хотите добавить?"

	msgCancelled       = "Действие отменено."
	msgStatsReset      = "Статистика сброшена."
	msgInternalError   = "Что-то пошло не так. Попробуйте позже."
	msgUnknownCommand  = "Неизвестная команда. Используйте /help для списка доступных команд."
	msgInvalidInterval = "Неверный интервал. Выберите значение от 1 до 24 часов."
)

// Study advice shown under an incorrect answer, keyed by question type.
func adviceFor(t entities.QuestionType) string {
	switch t {
	case entities.ByDate:
		return "💡 Совет: Для запоминания дат связывайте их с контекстом эпохи или другими событиями, " +
			"составляйте хронологические таблицы и регулярно повторяйте."
	case entities.ByEvent:
		return "💡 Совет: Группируйте события по историческим периодам и изучайте их в контексте " +
			"причин и последствий для лучшего запоминания дат."
	case entities.ByFigureName:
		return "💡 Совет: Создавайте мнемонические ассоциации между историческими деятелями " +
			"и их достижениями, группируйте их по сферам деятельности или эпохам."
	case entities.ByAchievement:
		return "💡 Совет: Создайте карточки, где на одной стороне достижение, а на другой — имя деятеля. " +
			"Тренируйтесь, вспоминая имя по достижению и наоборот."
	}
	return ""
}

// formatResult builds the answer feedback: verdict, the reference fact and
// study advice when the answer was wrong.
func formatResult(q *entities.Question, res entities.GradeResult) string {
	var b strings.Builder

	if res.IsCorrect {
		b.WriteString("✅ Правильно!")
	} else {
		b.WriteString("❌ Неправильно.")
	}

	switch q.Type {
	case entities.ByDate:
		fmt.Fprintf(&b, "\n\n📅 %s: %s", q.Event.Date, q.Event.Description)
	case entities.ByEvent:
		fmt.Fprintf(&b, "\n\n🔍 Событие: %s\n📅 Дата: %s", q.Event.Description, q.Event.Date)
	case entities.ByFigureName:
		fmt.Fprintf(&b, "\n\n👤 %s: %s", q.Figure.Name, q.Figure.Achievement)
	case entities.ByAchievement:
		fmt.Fprintf(&b, "\n\n🏆 Достижение: %s\n👤 Деятель: %s", q.Figure.Achievement, q.Figure.Name)
	}

	if !res.IsCorrect {
		b.WriteString("\n\n")
		b.WriteString(adviceFor(q.Type))
	}

	return b.String()
}

// formatMarathonProgress builds the header shown before each marathon question.
func formatMarathonProgress(current, total int) string {
	return fmt.Sprintf("🏆 Марафон: вопрос %d из %d", current, total)
}

// formatMarathonSummary builds the final marathon report: score, per-question
// history and a recommendation tier.
func formatMarathonSummary(m *entities.MarathonSession) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏁 Марафон завершен!\n\nВаш результат: %d из %d (%g%%)\n\n",
		m.Correct, m.Total, m.Accuracy())

	if len(m.History) > 0 {
		b.WriteString("История марафона:\n")
		for i, e := range m.History {
			mark := "❌"
			if e.IsCorrect {
				mark = "✅"
			}
			fmt.Fprintf(&b, "%d. %s: %s %s\n", i+1, e.Type.Title(), truncate(e.Question, 30), mark)
		}
	}

	switch m.Tier() {
	case entities.TierWeak:
		b.WriteString("\n💡 Рекомендации: Вам стоит больше внимания уделить систематическому изучению материала. " +
			"Используйте режим обучения для регулярного получения информации.")
	case entities.TierMedium:
		b.WriteString("\n💡 Рекомендации: Неплохой результат, но есть над чем работать. " +
			"Сосредоточьтесь на тех типах вопросов, где у вас больше ошибок.")
	default:
		b.WriteString("\n💡 Рекомендации: Отличный результат! Продолжайте регулярные тренировки " +
			"для поддержания и улучшения ваших знаний.")
	}

	return b.String()
}

// truncate shortens s to at most max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// formatStats builds the statistics screen: totals, per-type breakdown and
// repetition recommendations.
func formatStats(stats *entities.UserStats, difficult, recent []*entities.QuestionStats) string {
	var b strings.Builder

	b.WriteString("📊 Ваша статистика обучения 📊\n\n")

	if stats.TestsTotal == 0 {
		b.WriteString("У вас пока нет статистики обучения.\n")
		b.WriteString("Начните проходить тесты и марафоны, чтобы отслеживать свой прогресс!\n\n")
		b.WriteString("💡 Совет: Регулярное тестирование — ключ к успешной подготовке.")
		return b.String()
	}

	b.WriteString("Общая статистика:\n")
	fmt.Fprintf(&b, "• Всего тестов: %d\n", stats.TestsTotal)
	fmt.Fprintf(&b, "• Правильных ответов: %d\n", stats.TestsCorrect)
	fmt.Fprintf(&b, "• Точность: %.2f%%\n\n", stats.Accuracy)

	if len(stats.ByType) > 0 {
		b.WriteString("Результаты по категориям:\n")
		for _, t := range entities.AllQuestionTypes {
			ts, ok := stats.ByType[t]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "• %s: %d/%d (%.2f%%)\n", typeCategory(t), ts.Correct, ts.Total, ts.Accuracy)
		}
	}

	if len(difficult) > 0 || len(recent) > 0 {
		b.WriteString("\n🔄 Рекомендации для повторения:\n")

		if len(difficult) > 0 {
			b.WriteString("Сложные вопросы:\n")
			for _, q := range difficult {
				fmt.Fprintf(&b, "• %s (точность: %.2f%%)\n", q.Question, q.Accuracy)
			}
		}

		if len(recent) > 0 {
			b.WriteString("\nНедавние ошибки:\n")
			for _, q := range recent {
				fmt.Fprintf(&b, "• %s\n", q.Question)
			}
		}

		b.WriteString("\n💡 Совет: Сосредоточьтесь на темах с наибольшим количеством ошибок.")
	}

	return b.String()
}

// formatDailyProgress builds the last-week activity screen.
func formatDailyProgress(progress []*entities.DailyProgress) string {
	var b strings.Builder

	b.WriteString("📈 Прогресс за последние дни\n\n")

	active := false
	for _, day := range progress {
		if day.Total == 0 {
			fmt.Fprintf(&b, "%s — без тестов\n", day.Day.Format("02.01"))
			continue
		}
		active = true
		fmt.Fprintf(&b, "%s — %d/%d (%.2f%%)\n", day.Day.Format("02.01"), day.Correct, day.Total, day.Accuracy)
	}

	if !active {
		b.WriteString("\nЗа этот период тестов не было. Самое время начать!")
	}

	return b.String()
}

// typeCategory returns the statistics category name for a question type.
func typeCategory(t entities.QuestionType) string {
	switch t {
	case entities.ByDate:
		return "Даты"
	case entities.ByEvent:
		return "События"
	case entities.ByFigureName:
		return "Деятели"
	case entities.ByAchievement:
		return "Достижения"
	}
	return string(t)
}

// formatReminderSettings builds the reminder settings screen.
func formatReminderSettings(rem *entities.UserReminders) string {
	status := "🔕 Отключены"
	if rem.Enabled {
		status = fmt.Sprintf("🔔 Включены (каждые %d ч.)", rem.IntervalHours)
	}

	return "⏰ Настройки напоминаний\n\n" +
		"Статус: " + status + "\n\n" +
		"Напоминания помогут регулярно повторять учебный материал даже в интенсивном режиме подготовки."
}

// newPlainMessage creates a plain text message without a parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
