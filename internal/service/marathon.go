package service

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/dkazarau/histbot/internal/domain/entities"
	"github.com/dkazarau/histbot/internal/storage"
)

// ErrNoMarathon is returned when a marathon operation arrives without a started session.
var ErrNoMarathon = errors.New("no active marathon")

// DefaultMarathonQuestions is the marathon length when the caller does not ask for one.
const DefaultMarathonQuestions = 5

// MarathonService sequences a fixed number of mixed-type questions and
// aggregates their results into one session.
type MarathonService struct {
	quiz     *QuizService
	sessions *storage.SessionStorage
	logger   *zap.Logger
}

// NewMarathonService creates a new MarathonService.
func NewMarathonService(quiz *QuizService, sessions *storage.SessionStorage, logger *zap.Logger) *MarathonService {
	return &MarathonService{
		quiz:     quiz,
		sessions: sessions,
		logger:   logger,
	}
}

// Start initializes a marathon of count questions (DefaultMarathonQuestions
// when count <= 0) and replaces any previous session.
func (s *MarathonService) Start(ctx context.Context, userID int64, count int) error {
	if count <= 0 {
		count = DefaultMarathonQuestions
	}

	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	sess.Marathon = entities.NewMarathonSession(buildTypeSequence(count))

	s.logger.Info("marathon started",
		zap.Int64("user_id", userID),
		zap.Int("questions", count),
	)

	return nil
}

// NextQuestion presents the next marathon question, or returns the finished
// session when every question has been asked. Exactly one of the returned
// question and session is non-nil on success. A finished session is removed
// from the store; the caller renders its summary.
func (s *MarathonService) NextQuestion(ctx context.Context, userID int64) (*entities.Question, *entities.MarathonSession, error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	m := sess.Marathon
	if m == nil {
		return nil, nil, ErrNoMarathon
	}

	if m.Finished() {
		sess.Marathon = nil
		return nil, m, nil
	}

	q, err := s.quiz.startQuestionLocked(ctx, sess, m.NextType())
	if err != nil {
		return nil, nil, err
	}

	return q, nil, nil
}

// Active reports whether the user has a marathon in progress.
func (s *MarathonService) Active(userID int64) bool {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()
	return sess.Marathon != nil
}

// Progress returns the 1-based number of the current question and the total.
func (s *MarathonService) Progress(userID int64) (current, total int, err error) {
	sess := s.sessions.Get(userID)
	sess.Lock()
	defer sess.Unlock()

	m := sess.Marathon
	if m == nil {
		return 0, 0, ErrNoMarathon
	}
	return m.Position, m.Total, nil
}

// buildTypeSequence builds a question type sequence of the requested length.
// One shuffled permutation of all four types goes first, so every type is
// covered whenever count >= 4; uniformly random types fill the rest. The
// final sequence is truncated and shuffled again.
func buildTypeSequence(count int) []entities.QuestionType {
	seq := append([]entities.QuestionType(nil), entities.AllQuestionTypes...)
	rand.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})

	for len(seq) < count {
		seq = append(seq, entities.AllQuestionTypes[rand.Intn(len(entities.AllQuestionTypes))])
	}

	seq = seq[:count]
	rand.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})

	return seq
}
