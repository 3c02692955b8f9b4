package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/service"
)

// Pending input states for multi-step add flows.
const (
	pendingAddEvent  = "add_event"
	pendingAddFigure = "add_figure"
)

func (h *Handler) handleStart(chatID int64) {
	msg := newPlainMessage(chatID, msgWelcome)
	msg.ReplyMarkup = buildMainMenuKeyboard()
	h.send(msg)
}

func (h *Handler) handleHelp(chatID int64) {
	h.send(newPlainMessage(chatID, msgHelp))
}

func (h *Handler) handleTest(chatID int64) {
	msg := newPlainMessage(chatID, msgChooseTestType)
	msg.ReplyMarkup = buildTestTypesKeyboard()
	h.send(msg)
}

// startQuestion starts a single question of the given type and sends its prompt.
func (h *Handler) startQuestion(ctx context.Context, userID, chatID int64, qType entities.QuestionType) {
	q, err := h.quizService.StartQuestion(ctx, userID, qType)
	if err != nil {
		if errors.Is(err, service.ErrNoFacts) {
			if qType.Kind() == entities.KindEvent {
				h.send(newPlainMessage(chatID, msgNoEvents))
			} else {
				h.send(newPlainMessage(chatID, msgNoFigures))
			}
			return
		}

		h.logger.Error("failed to start question",
			zap.Int64("user_id", userID),
			zap.String("test_type", string(qType)),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	h.send(newPlainMessage(chatID, q.Prompt()))
}

// startMarathon begins a new marathon and presents its first question.
func (h *Handler) startMarathon(ctx context.Context, userID, chatID int64) {
	if err := h.marathonService.Start(ctx, userID, h.marathonQuestions); err != nil {
		h.logger.Error("failed to start marathon",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	h.sendNextMarathonQuestion(ctx, userID, chatID)
}

// sendNextMarathonQuestion presents the next marathon question, or the final
// summary when the marathon is over.
func (h *Handler) sendNextMarathonQuestion(ctx context.Context, userID, chatID int64) {
	q, finished, err := h.marathonService.NextQuestion(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoMarathon):
			h.send(newPlainMessage(chatID, msgNoMarathon))
		case errors.Is(err, service.ErrNoFacts):
			h.send(newPlainMessage(chatID, msgNoFacts))
		default:
			h.logger.Error("failed to advance marathon",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.sendError(chatID)
		}
		return
	}

	if finished != nil {
		msg := newPlainMessage(chatID, formatMarathonSummary(finished))
		msg.ReplyMarkup = buildMarathonResultKeyboard()
		h.send(msg)
		return
	}

	current, total, err := h.marathonService.Progress(userID)
	if err == nil {
		h.send(newPlainMessage(chatID, formatMarathonProgress(current, total)))
	}

	h.send(newPlainMessage(chatID, q.Prompt()))
}

func (h *Handler) showStats(ctx context.Context, userID, chatID int64) {
	stats, err := h.statsService.GetSummary(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get user stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	difficult, err := h.statsService.GetDifficultQuestions(ctx, userID, 3)
	if err != nil {
		h.logger.Error("failed to get difficult questions", zap.Error(err))
	}

	recent, err := h.statsService.GetRecentlyIncorrect(ctx, userID, 3)
	if err != nil {
		h.logger.Error("failed to get recently incorrect questions", zap.Error(err))
	}

	msg := newPlainMessage(chatID, formatStats(stats, difficult, recent))
	msg.ReplyMarkup = buildStatsKeyboard()
	h.send(msg)
}

func (h *Handler) showReminders(ctx context.Context, userID, chatID int64) {
	rem, err := h.reminderService.Get(ctx, userID, chatID)
	if err != nil {
		h.logger.Error("failed to get reminder settings",
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

// promptAdd arms the pending input state and asks for the fact text.
func (h *Handler) promptAdd(userID, chatID int64, pending string) {
	sess := h.sessions.Get(userID)
	sess.Lock()
	sess.PendingInput = pending
	sess.Unlock()

	prompt := msgAddEventPrompt
	if pending == pendingAddFigure {
		prompt = msgAddFigurePrompt
	}
	h.send(newPlainMessage(chatID, prompt))
}

// handleCancel drops any pending flow, active question and running marathon.
func (h *Handler) handleCancel(userID, chatID int64) {
	sess := h.sessions.Get(userID)
	sess.Lock()
	sess.PendingInput = ""
	sess.ActiveQuestion = nil
	sess.Marathon = nil
	sess.Unlock()

	msg := newPlainMessage(chatID, msgCancelled)
	msg.ReplyMarkup = buildMainMenuKeyboard()
	h.send(msg)
}

// handleText dispatches a free-text message: a pending add flow consumes it,
// otherwise it is graded as an answer to the active question.
func (h *Handler) handleText(ctx context.Context, userID, chatID int64, text string) {
	sess := h.sessions.Get(userID)
	sess.Lock()
	pending := sess.PendingInput
	sess.PendingInput = ""
	sess.Unlock()

	if pending != "" {
		h.handleAddInput(ctx, userID, chatID, pending, text)
		return
	}

	h.handleAnswer(ctx, userID, chatID, text)
}

// handleAddInput parses "left | right" input for the add flows.
func (h *Handler) handleAddInput(ctx context.Context, userID, chatID int64, pending, text string) {
	parts := strings.SplitN(text, "|", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		// Re-arm the flow so the user can retry without the command.
		sess := h.sessions.Get(userID)
		sess.Lock()
		sess.PendingInput = pending
		sess.Unlock()

		h.send(newPlainMessage(chatID, msgAddFormatError))
		return
	}

	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	var (
		err  error
		done string
	)
	if pending == pendingAddEvent {
		_, err = h.factService.AddEvent(ctx, left, right)
		done = msgEventAdded
	} else {
		_, err = h.factService.AddFigure(ctx, left, right)
		done = msgFigureAdded
	}
	if err != nil {
		h.logger.Error("failed to add fact",
			zap.Int64("user_id", userID),
			zap.String("flow", pending),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	if events, figures, err := h.factService.Counts(ctx); err == nil {
		done += fmt.Sprintf("\n\nВ базе: %d событий, %d деятелей.", events, figures)
	}

	msg := newPlainMessage(chatID, done)
	msg.ReplyMarkup = buildMainMenuKeyboard()
	h.send(msg)
}

// handleAnswer grades the text against the active question and renders the
// verdict. In marathon mode the reply offers the next question instead of
// the regular follow-up menu.
func (h *Handler) handleAnswer(ctx context.Context, userID, chatID int64, text string) {
	result, q, err := h.quizService.GradeAnswer(ctx, userID, text)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveQuestion) {
			msg := newPlainMessage(chatID, msgNoActiveQuestion)
			msg.ReplyMarkup = buildMainMenuKeyboard()
			h.send(msg)
			return
		}

		h.logger.Error("failed to grade answer",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sendError(chatID)
		return
	}

	msg := newPlainMessage(chatID, formatResult(q, result))
	if h.marathonService.Active(userID) {
		h.send(msg)

		next := newPlainMessage(chatID, msgMarathonNext)
		next.ReplyMarkup = buildMarathonNextKeyboard()
		h.send(next)
		return
	}

	msg.ReplyMarkup = buildAfterAnswerKeyboard()
	h.send(msg)
}
