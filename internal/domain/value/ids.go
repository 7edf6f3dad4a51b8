package value

import (
	"fmt"

	"github.com/rs/xid"
)

type UserID string

func (u UserID) String() string {
	return string(u)
}

type AssessmentID string

func NewAssessmentID() AssessmentID {
	return AssessmentID(xid.New().String())
}

func ParseAssessmentID(s string) (AssessmentID, error) {
	if _, err := xid.FromString(s); err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return AssessmentID(s), nil
}

func (id AssessmentID) String() string {
	return string(id)
}

type QuizSessionID string

func NewQuizSessionID() QuizSessionID {
	return QuizSessionID(xid.New().String())
}

func ParseQuizSessionID(s string) (QuizSessionID, error) {
	if _, err := xid.FromString(s); err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return QuizSessionID(s), nil
}

func (id QuizSessionID) String() string {
	return string(id)
}
