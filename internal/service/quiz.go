package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/storage"
)

// ErrNoActiveQuestion is returned when an answer arrives without a started question.
var ErrNoActiveQuestion = errors.New("no active question")

// QuizService runs single questions: it selects a fact, keeps the active
// question in the user's session and grades the incoming answer against it.
// One question is active at a time per user; grading consumes it.
type QuizService struct {
	selector  *Selector
	grader    *Grader
	statsRepo StatsRepository
	sessions  *storage.SessionStorage
	logger    *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	selector *Selector,
	grader *Grader,
	statsRepo StatsRepository,
	sessions *storage.SessionStorage,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		selector:  selector,
		grader:    grader,
		statsRepo: statsRepo,
		sessions:  sessions,
		logger:    logger,
	}
}

// StartQuestion selects a fact of the kind the question type needs and makes
// it the user's active question. Returns ErrNoFacts when the pool is empty.
func (s *QuizService) StartQuestion(ctx context.Context, userID int64, qType entities.QuestionType) (*entities.Question, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	return s.startQuestionLocked(ctx, sess, qType)
}

func (s *QuizService) startQuestionLocked(ctx context.Context, sess *storage.UserSession, qType entities.QuestionType) (*entities.Question, error) {
	q := &entities.Question{Type: qType}

	switch qType.Kind() {
	case entities.KindEvent:
		ev, err := s.selector.SelectEvent(ctx, sess)
		if err != nil {
			return nil, err
		}
		q.Event = ev
	case entities.KindFigure:
		f, err := s.selector.SelectFigure(ctx, sess)
		if err != nil {
			return nil, err
		}
		q.Figure = f
	}

	sess.ActiveQuestion = q
	return q, nil
}

// GradeAnswer grades the user's raw answer against their active question,
// records the result into statistics and clears the active question. The
// graded question is returned alongside the result so the caller can render
// the reference fact. Returns ErrNoActiveQuestion when nothing is active.
func (s *QuizService) GradeAnswer(ctx context.Context, userID int64, answer string) (entities.GradeResult, *entities.Question, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	q := sess.ActiveQuestion
	if q == nil {
		return entities.GradeResult{}, nil, ErrNoActiveQuestion
	}

	result := s.grader.Grade(q, answer)
	sess.ActiveQuestion = nil

	if m := sess.Marathon; m != nil {
		m.RecordAnswer(q, result.IsCorrect)
	}

	if err := s.statsRepo.RecordResult(ctx, userID, q.Type, q.Label(), result.IsCorrect); err != nil {
		s.logger.Error("failed to record test result",
			zap.Int64("user_id", userID),
			zap.String("test_type", string(q.Type)),
			zap.Error(err),
		)
	}

	return result, q, nil
}
