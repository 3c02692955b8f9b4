package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

// buildMainMenuKeyboard builds the main navigation keyboard.
func buildMainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Проверка знаний", "testing"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Марафон", "marathon:start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", "statistics"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить данные", "add"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏰ Напоминания", "reminders"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Справка", "help"),
		),
	)
}

// buildTestTypesKeyboard builds the test type selection keyboard.
func buildTestTypesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Дата", "test:"+string(entities.ByDate)),
			tgbotapi.NewInlineKeyboardButtonData("🔍 Событие", "test:"+string(entities.ByEvent)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 Деятель", "test:"+string(entities.ByFigureName)),
			tgbotapi.NewInlineKeyboardButtonData("🏆 Достижение", "test:"+string(entities.ByAchievement)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", "menu"),
		),
	)
}

// buildAfterAnswerKeyboard builds the keyboard shown under a graded answer.
func buildAfterAnswerKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Продолжить тестирование", "testing"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать статистику", "statistics"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Главное меню", "menu"),
		),
	)
}

// buildMarathonNextKeyboard builds the keyboard shown between marathon questions.
func buildMarathonNextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Следующий вопрос", "marathon:next"),
		),
	)
}

// buildMarathonResultKeyboard builds the keyboard under the marathon summary.
func buildMarathonResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Новый марафон", "marathon:start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать статистику", "statistics"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Главное меню", "menu"),
		),
	)
}

// buildStatsKeyboard builds the keyboard under the statistics screen.
func buildStatsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Начать тестирование", "testing"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Пройти марафон", "marathon:start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Рекомендации", "recommendations"),
			tgbotapi.NewInlineKeyboardButtonData("📈 Прогресс", "progress"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Сбросить статистику", "stats:reset"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Главное меню", "menu"),
		),
	)
}

// buildAddDataKeyboard builds the keyboard for choosing what to add.
func buildAddDataKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Добавить событие", "add:event"),
			tgbotapi.NewInlineKeyboardButtonData("👤 Добавить деятеля", "add:figure"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", "menu"),
		),
	)
}

// buildRemindersKeyboard builds the reminder settings keyboard. The toggle
// button label reflects the current state.
func buildRemindersKeyboard(rem *entities.UserReminders) tgbotapi.InlineKeyboardMarkup {
	toggle := "🔔 Включить напоминания"
	if rem.Enabled {
		toggle = "🔕 Отключить напоминания"
	}

	var intervals []tgbotapi.InlineKeyboardButton
	for _, h := range []int{1, 3, 6, 12} {
		intervals = append(intervals, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d ч.", h),
			fmt.Sprintf("reminders:interval:%d", h),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle, "reminders:toggle"),
		),
		intervals,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Главное меню", "menu"),
		),
	)
}
