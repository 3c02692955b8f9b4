package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	switch {
	case cb.Data == "menu":
		msg := newPlainMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildMainMenuKeyboard()
		h.send(msg)

	case cb.Data == "help":
		h.handleHelp(chatID)

	case cb.Data == "testing":
		h.handleTest(chatID)

	case strings.HasPrefix(cb.Data, "test:"):
		qType := entities.QuestionType(strings.TrimPrefix(cb.Data, "test:"))
		if !validQuestionType(qType) {
			h.logger.Warn("invalid test type in callback", zap.String("data", cb.Data))
			break
		}
		h.startQuestion(ctx, userID, chatID, qType)

	case cb.Data == "marathon:start":
		h.startMarathon(ctx, userID, chatID)

	case cb.Data == "marathon:next":
		h.sendNextMarathonQuestion(ctx, userID, chatID)

	case cb.Data == "statistics":
		h.showStats(ctx, userID, chatID)

	case cb.Data == "stats:reset":
		h.resetStats(ctx, userID, chatID)

	case cb.Data == "recommendations":
		h.showRecommendations(ctx, userID, chatID)

	case cb.Data == "progress":
		h.showDailyProgress(ctx, userID, chatID)

	case cb.Data == "add":
		msg := newPlainMessage(chatID, msgChooseAddKind)
		msg.ReplyMarkup = buildAddDataKeyboard()
		h.send(msg)

	case cb.Data == "add:event":
		h.promptAdd(userID, chatID, pendingAddEvent)

	case cb.Data == "add:figure":
		h.promptAdd(userID, chatID, pendingAddFigure)

	case cb.Data == "reminders":
		h.showReminders(ctx, userID, chatID)

	case cb.Data == "reminders:toggle":
		h.toggleReminders(ctx, userID, chatID)

	case strings.HasPrefix(cb.Data, "reminders:interval:"):
		h.setReminderInterval(ctx, userID, chatID, strings.TrimPrefix(cb.Data, "reminders:interval:"))

	default:
		h.logger.Warn("unknown callback data", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("failed to answer callback query", zap.Error(err))
	}
}

func (h *Handler) resetStats(ctx context.Context, userID, chatID int64) {
	if err := h.statsService.Reset(ctx, userID); err != nil {
		h.logger.Error("failed to reset user stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	msg := newPlainMessage(chatID, msgStatsReset)
	msg.ReplyMarkup = buildMainMenuKeyboard()
	h.send(msg)
}

func (h *Handler) showRecommendations(ctx context.Context, userID, chatID int64) {
	recs, err := h.statsService.GetRecommendations(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get recommendations",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	msg := newPlainMessage(chatID, "💡 Персональные рекомендации:\n\n"+strings.Join(recs, "\n"))
	msg.ReplyMarkup = buildStatsKeyboard()
	h.send(msg)
}

func (h *Handler) showDailyProgress(ctx context.Context, userID, chatID int64) {
	progress, err := h.statsService.GetDailyProgress(ctx, userID, 7)
	if err != nil {
		h.logger.Error("failed to get daily progress",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	msg := newPlainMessage(chatID, formatDailyProgress(progress))
	msg.ReplyMarkup = buildStatsKeyboard()
	h.send(msg)
}

func (h *Handler) toggleReminders(ctx context.Context, userID, chatID int64) {
	rem, err := h.reminderService.Toggle(ctx, userID, chatID)
	if err != nil {
		h.logger.Error("failed to toggle reminders",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	msg := newPlainMessage(chatID, formatReminderSettings(rem))
	msg.ReplyMarkup = buildRemindersKeyboard(rem)
	h.send(msg)
}

func (h *Handler) setReminderInterval(ctx context.Context, userID, chatID int64, raw string) {
	hours, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.Warn("invalid reminder interval in callback", zap.String("data", raw))
		return
	}

	if err := h.reminderService.SetIntervalHours(ctx, userID, chatID, hours); err != nil {
		h.logger.Error("failed to set reminder interval",
			zap.Int64("user_id", userID),
			zap.Int("hours", hours),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInvalidInterval))
		return
	}

	h.showReminders(ctx, userID, chatID)
}

func validQuestionType(t entities.QuestionType) bool {
	for _, known := range entities.AllQuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}
