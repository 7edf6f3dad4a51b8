package handler

import (
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"neetup/internal/domain"
	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/internal/transport/bot/view"
	"neetup/pkg/errcodes"
	"neetup/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatements(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Statements(value.Statements()))
}

// OnScore ranks answers locally, nothing is stored.
func (h *Handler) OnScore(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.ScoreUsage)
	}

	answers, err := parseAnswers(args)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.Invalid(domain.GetMessage(err)))
	}

	result, err := careerscore.Score(answers)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.Invalid(domain.GetMessage(err)))
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Score(result, careerscore.Breakdown(answers)))
}

func (h *Handler) OnAssessment(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) != 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.AssessmentUsage)
	}

	id, err := value.ParseAssessmentID(args[0])
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.AssessmentUsage)
	}

	assessment, err := h.assessments.GetByID(ctx, id)
	if err != nil {
		if domain.HasCode(err, errcodes.AssessmentNotFound) {
			return h.sendHTML(ctx, msg.Chat.ID, view.AssessmentNotFound)
		}

		logger(ctx).Error("failed to get assessment",
			slog.String(logx.FieldAssessmentID, id.String()),
			slog.Any(logx.FieldError, err),
		)

		return h.sendHTML(ctx, msg.Chat.ID, view.InternalError)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Assessment(assessment))
}

func (h *Handler) OnHistory(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) != 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.HistoryUsage)
	}

	userID := value.UserID(args[0])

	assessments, err := h.assessments.ListByUser(ctx, userID, HistoryLimit, 0)
	if err != nil {
		logger(ctx).Error("failed to list assessments",
			slog.String(logx.FieldUserID, userID.String()),
			slog.Any(logx.FieldError, err),
		)

		return h.sendHTML(ctx, msg.Chat.ID, view.InternalError)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.History(userID, assessments))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
