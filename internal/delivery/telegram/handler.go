package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Handler routes Telegram updates to the quiz, marathon, fact, stats and
// reminder services and renders their results back to the chat.
type Handler struct {
	bot               *tgbotapi.BotAPI
	logger            *zap.Logger
	quizService       QuizService
	marathonService   MarathonService
	factService       FactService
	statsService      StatsService
	reminderService   ReminderService
	sessions          SessionStore
	marathonQuestions int
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	marathonService MarathonService,
	factService FactService,
	statsService StatsService,
	reminderService ReminderService,
	sessions SessionStore,
	marathonQuestions int,
) *Handler {
	return &Handler{
		bot:               bot,
		logger:            logger,
		quizService:       quizService,
		marathonService:   marathonService,
		factService:       factService,
		statsService:      statsService,
		reminderService:   reminderService,
		sessions:          sessions,
		marathonQuestions: marathonQuestions,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.handleStart(chatID)
		case "help":
			h.handleHelp(chatID)
		case "test":
			h.handleTest(chatID)
		case "marathon":
			h.startMarathon(ctx, userID, chatID)
		case "stats":
			h.showStats(ctx, userID, chatID)
		case "addevent":
			h.promptAdd(userID, chatID, pendingAddEvent)
		case "addfigure":
			h.promptAdd(userID, chatID, pendingAddFigure)
		case "reminders":
			h.showReminders(ctx, userID, chatID)
		case "cancel":
			h.handleCancel(userID, chatID)
		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
		return
	}

	h.handleText(ctx, userID, chatID, update.Message.Text)
}

// SendReminder delivers a scheduled study nudge to the chat. It is called
// from the reminder service's cron loop.
func (h *Handler) SendReminder(chatID int64, text string) error {
	_, err := h.bot.Send(newPlainMessage(chatID, text))
	return err
}

func (h *Handler) sendError(chatID int64) {
	h.send(newPlainMessage(chatID, msgInternalError))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
