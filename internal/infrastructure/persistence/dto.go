package persistence

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// assessmentSchema maps a row of the assessments table.
type assessmentSchema struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Answers   []byte    `db:"answers"`
	Result    []byte    `db:"result"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

func fromAssessment(a *entity.Assessment) (*assessmentSchema, error) {
	answers, err := json.Marshal(a.Answers.Ints())
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(answers): %w", err)
	}

	result, err := json.Marshal(a.Result)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(result): %w", err)
	}

	return &assessmentSchema{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Answers:   answers,
		Result:    result,
		Source:    string(a.Source),
		CreatedAt: a.CreatedAt,
	}, nil
}

func (s *assessmentSchema) toDomain() (*entity.Assessment, error) {
	var values []int
	if err := json.Unmarshal(s.Answers, &values); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(answers): %w", err)
	}

	answers, err := value.NewAnswerSet(values)
	if err != nil {
		return nil, fmt.Errorf("value.NewAnswerSet: %w", err)
	}

	var result entity.RankedResult
	if err := json.Unmarshal(s.Result, &result); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(result): %w", err)
	}

	return &entity.Assessment{
		ID:        value.AssessmentID(s.ID),
		UserID:    value.UserID(s.UserID),
		Answers:   answers,
		Result:    result,
		Source:    entity.ScoreSource(s.Source),
		CreatedAt: s.CreatedAt,
	}, nil
}
