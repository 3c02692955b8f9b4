package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/repository"
)

// ErrInvalidInterval is returned for reminder intervals outside 1-24 hours.
var ErrInvalidInterval = errors.New("invalid reminder interval")

// ReminderService sends periodic study nudges with a random fact to users
// who enabled reminders.
type ReminderService struct {
	reminderRepo ReminderRepository
	factRepo     FactRepository
	notifier     ReminderNotifier
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(
	reminderRepo ReminderRepository,
	factRepo FactRepository,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		factRepo:     factRepo,
		logger:       logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start begins the reminder scheduling loop and blocks until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started")

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc("0 * * * *", func() {
		if err := s.sendDueReminders(ctx); err != nil {
			s.logger.Error("failed to send due reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

// sendDueReminders delivers a study nudge to every user whose reminder is due.
func (s *ReminderService) sendDueReminders(ctx context.Context) error {
	if s.notifier == nil {
		return errors.New("reminder notifier is not set")
	}

	now := time.Now().UTC()

	due, err := s.reminderRepo.GetDueReminders(ctx, now)
	if err != nil {
		return fmt.Errorf("get due reminders: %w", err)
	}

	for _, rem := range due {
		text := s.buildReminderText(ctx)

		if err := s.notifier.SendReminder(rem.ChatID, text); err != nil {
			s.logger.Error("failed to send reminder",
				zap.Int64("user_id", rem.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := s.reminderRepo.MarkAsSent(ctx, rem.UserID, now); err != nil {
			s.logger.Error("failed to mark reminder as sent",
				zap.Int64("user_id", rem.UserID),
				zap.Error(err),
			)
		}
	}

	if len(due) > 0 {
		s.logger.Info("reminders sent", zap.Int("count", len(due)))
	}

	return nil
}

// buildReminderText composes a nudge with a random fact, falling back to a
// plain reminder when the fact pool is empty.
func (s *ReminderService) buildReminderText(ctx context.Context) string {
	const header = "🕰 Время повторить историю!\n\n"

	if rand.Intn(2) == 0 {
		if ev, err := s.factRepo.GetRandomEvent(ctx); err == nil {
			return fmt.Sprintf("%s📅 %s: %s", header, ev.Date, ev.Description)
		}
	}

	if f, err := s.factRepo.GetRandomFigure(ctx); err == nil {
		return fmt.Sprintf("%s👤 %s: %s", header, f.Name, f.Achievement)
	}

	return header + "Пройдите тест, чтобы закрепить знания."
}

// Get returns the user's reminder settings, creating defaults on first use.
func (s *ReminderService) Get(ctx context.Context, userID, chatID int64) (*entities.UserReminders, error) {
	rem, err := s.reminderRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRemindersNotFound) {
			return entities.NewUserReminders(userID, chatID), nil
		}
		return nil, err
	}
	return rem, nil
}

// Toggle flips the reminder on/off for the user.
func (s *ReminderService) Toggle(ctx context.Context, userID, chatID int64) (*entities.UserReminders, error) {
	rem, err := s.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	rem.Enabled = !rem.Enabled
	rem.ChatID = chatID

	if err := s.reminderRepo.Upsert(ctx, rem); err != nil {
		return nil, err
	}

	return rem, nil
}

// SetIntervalHours sets how often reminders are sent.
func (s *ReminderService) SetIntervalHours(ctx context.Context, userID, chatID int64, hours int) error {
	if hours < 1 || hours > 24 {
		return ErrInvalidInterval
	}

	rem, err := s.Get(ctx, userID, chatID)
	if err != nil {
		return err
	}

	rem.IntervalHours = hours
	rem.ChatID = chatID

	return s.reminderRepo.Upsert(ctx, rem)
}
