// Package handler answers advisor commands sent to the Telegram bot.
package handler

import (
	"context"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
)

// HistoryLimit caps /history replies.
const HistoryLimit = 10

type AssessmentReader interface {
	GetByID(ctx context.Context, id value.AssessmentID) (*entity.Assessment, error)
	ListByUser(ctx context.Context, userID value.UserID, limit, offset int) ([]entity.Assessment, error)
}

type Handler struct {
	assessments AssessmentReader
}

func New(assessments AssessmentReader) *Handler {
	return &Handler{
		assessments: assessments,
	}
}
