package entity

import (
	"fmt"
	"time"

	"neetup/internal/domain"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
)

// QuizSession tracks a user walking through the questionnaire. The cursor is
// the 0-based index of the statement currently shown.
type QuizSession struct {
	ID        value.QuizSessionID
	UserID    value.UserID
	Cursor    int
	Answers   value.AnswerSet
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewQuizSession(userID value.UserID, now time.Time) QuizSession {
	return QuizSession{
		ID:        value.NewQuizSessionID(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Answer records the answer to a 1-based statement and moves the cursor to
// the following statement, staying on the last one.
func (s *QuizSession) Answer(number int, answer value.Likert, now time.Time) error {
	answers, err := s.Answers.With(number, answer)
	if err != nil {
		return fmt.Errorf("answers.With: %w", err)
	}

	s.Answers = answers
	s.Cursor = min(number, value.StatementCount-1)
	s.UpdatedAt = now

	return nil
}

// Seek moves the cursor without touching answers.
func (s *QuizSession) Seek(cursor int, now time.Time) error {
	if cursor < 0 || cursor >= value.StatementCount {
		return domain.NewError(
			errcodes.InvalidPosition,
			fmt.Sprintf("cursor must be between 0 and %d, got %d", value.StatementCount-1, cursor),
		)
	}

	s.Cursor = cursor
	s.UpdatedAt = now

	return nil
}

func (s QuizSession) Complete() bool {
	return s.Answers.IsComplete()
}

// Progress is the answered share of the questionnaire in percent.
func (s QuizSession) Progress() int {
	return s.Answers.Answered() * 100 / value.StatementCount
}
