package entity

import (
	"time"

	"neetup/internal/domain/value"
)

// ScoreSource tells which scorer produced an assessment result.
type ScoreSource string

const (
	ScoreSourceRemote ScoreSource = "remote"
	ScoreSourceLocal  ScoreSource = "local"
)

// Assessment is a completed personality test.
type Assessment struct {
	ID        value.AssessmentID
	UserID    value.UserID
	Answers   value.AnswerSet
	Result    RankedResult
	Source    ScoreSource
	CreatedAt time.Time
}
