// Package quiz walks a user through the questionnaire one statement at a
// time and submits the answers once all of them are given.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/pkg/contextx"
	"neetup/pkg/errcodes"
	"neetup/pkg/logx"
)

//go:generate moq -rm -out mocks.gen.go . Store:StoreMock Submitter:SubmitterMock
type Store interface {
	Save(ctx context.Context, session entity.QuizSession) error
	Get(ctx context.Context, id value.QuizSessionID) (entity.QuizSession, error)
	// Update applies fn atomically and stores the result unless fn fails.
	Update(
		ctx context.Context,
		id value.QuizSessionID,
		fn func(session *entity.QuizSession) error,
	) (entity.QuizSession, error)
	// Take removes and returns the session. Concurrent callers get it once.
	Take(ctx context.Context, id value.QuizSessionID) (entity.QuizSession, error)
}

type Submitter interface {
	Submit(ctx context.Context, userID value.UserID, answers value.AnswerSet) (*entity.Assessment, error)
}

type Service struct {
	store     Store
	submitter Submitter
	now       func() time.Time
}

func NewService(store Store, submitter Submitter) *Service {
	return &Service{
		store:     store,
		submitter: submitter,
		now:       time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Start(ctx context.Context, userID value.UserID) (entity.QuizSession, error) {
	session := entity.NewQuizSession(userID, s.now().UTC())

	if err := s.store.Save(ctx, session); err != nil {
		return entity.QuizSession{}, fmt.Errorf("store.Save: %w", err)
	}

	logger(ctx).Info("quiz started", slog.String(logx.FieldQuizSessionID, session.ID.String()))

	return session, nil
}

// Get loads a session owned by userID. Sessions of other users are reported
// as not found.
func (s *Service) Get(ctx context.Context, userID value.UserID, id value.QuizSessionID) (entity.QuizSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return entity.QuizSession{}, fmt.Errorf("store.Get: %w", err)
	}

	if err := checkOwner(session, userID); err != nil {
		return entity.QuizSession{}, err
	}

	return session, nil
}

// Answer records the answer to a 1-based statement number.
func (s *Service) Answer(
	ctx context.Context,
	userID value.UserID,
	id value.QuizSessionID,
	number int,
	answer value.Likert,
) (entity.QuizSession, error) {
	return s.update(ctx, userID, id, func(session *entity.QuizSession, now time.Time) error {
		return session.Answer(number, answer, now)
	})
}

// Seek moves the 0-based cursor, e.g. when the user goes back a statement.
func (s *Service) Seek(
	ctx context.Context,
	userID value.UserID,
	id value.QuizSessionID,
	cursor int,
) (entity.QuizSession, error) {
	return s.update(ctx, userID, id, func(session *entity.QuizSession, now time.Time) error {
		return session.Seek(cursor, now)
	})
}

// Finish submits a complete session and forgets it. An incomplete session
// stays stored and fails with domain.ErrIncompleteAnswers. The session is
// taken out of the store before submitting, so concurrent calls submit it
// once; the others see QuizSessionNotFound.
func (s *Service) Finish(
	ctx context.Context,
	userID value.UserID,
	id value.QuizSessionID,
) (*entity.Assessment, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if !session.Complete() {
		return nil, domain.ErrIncompleteAnswers
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldQuizSessionID, id.String())))

	session, err = s.store.Take(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.Take: %w", err)
	}

	assessment, err := s.submitter.Submit(ctx, userID, session.Answers)
	if err != nil {
		// Put the session back so the user can retry.
		if restoreErr := s.store.Save(ctx, session); restoreErr != nil {
			logger(ctx).Error("failed to restore quiz session", logx.Error(restoreErr))
		}

		return nil, fmt.Errorf("submitter.Submit: %w", err)
	}

	return assessment, nil
}

func (s *Service) update(
	ctx context.Context,
	userID value.UserID,
	id value.QuizSessionID,
	fn func(session *entity.QuizSession, now time.Time) error,
) (entity.QuizSession, error) {
	session, err := s.store.Update(ctx, id, func(session *entity.QuizSession) error {
		if err := checkOwner(*session, userID); err != nil {
			return err
		}

		return fn(session, s.now().UTC())
	})
	if err != nil {
		return entity.QuizSession{}, fmt.Errorf("store.Update: %w", err)
	}

	return session, nil
}

func checkOwner(session entity.QuizSession, userID value.UserID) error {
	if session.UserID != userID {
		return domain.NewError(errcodes.QuizSessionNotFound, "quiz session not found")
	}

	return nil
}
