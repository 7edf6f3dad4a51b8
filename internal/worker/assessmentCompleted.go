// Package worker moves assessment follow-ups off the request path through
// asynq tasks.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/internal/metrics"
	"neetup/pkg/contextx"
	"neetup/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TypeAssessmentCompleted = "assessment:completed"
	QueueNotifications      = "notifications"

	assessmentCompletedMaxRetry = 5
	assessmentCompletedTimeout  = 30 * time.Second
)

type AssessmentCompletedPayload struct {
	AssessmentID string                   `json:"assessmentId"`
	UserID       string                   `json:"userId"`
	Source       string                   `json:"source"`
	Areas        []entity.CareerAreaScore `json:"areas"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func (p AssessmentCompletedPayload) assessment() *entity.Assessment {
	return &entity.Assessment{
		ID:        value.AssessmentID(p.AssessmentID),
		UserID:    value.UserID(p.UserID),
		Result:    entity.RankedResult{Areas: p.Areas},
		Source:    entity.ScoreSource(p.Source),
		CreatedAt: p.CreatedAt,
	}
}

func NewAssessmentCompletedTask(assessment *entity.Assessment) (*asynq.Task, error) {
	payload, err := json.Marshal(AssessmentCompletedPayload{
		AssessmentID: assessment.ID.String(),
		UserID:       assessment.UserID.String(),
		Source:       string(assessment.Source),
		Areas:        assessment.Result.Areas,
		CreatedAt:    assessment.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(
		TypeAssessmentCompleted,
		payload,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(assessmentCompletedMaxRetry),
		asynq.Timeout(assessmentCompletedTimeout),
		asynq.TaskID(TypeAssessmentCompleted+":"+assessment.ID.String()),
	), nil
}

//go:generate moq -rm -out mocks.gen.go . enqueuer:EnqueuerMock notifier:NotifierMock
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher enqueues assessment tasks. *asynq.Client is the production
// enqueuer.
type Publisher struct {
	client enqueuer
}

func NewPublisher(client enqueuer) *Publisher {
	return &Publisher{client: client}
}

// PublishAssessmentCompleted is idempotent per assessment.
func (p *Publisher) PublishAssessmentCompleted(ctx context.Context, assessment *entity.Assessment) error {
	task, err := NewAssessmentCompletedTask(assessment)
	if err != nil {
		return fmt.Errorf("NewAssessmentCompletedTask: %w", err)
	}

	info, err := p.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug("task enqueued",
		slog.String(logx.FieldTaskType, info.Type),
		slog.String("queue", info.Queue),
	)

	return nil
}

type notifier interface {
	SendAssessment(ctx context.Context, assessment *entity.Assessment) error
}

type AssessmentCompletedHandler struct {
	notifier notifier
}

func NewAssessmentCompletedHandler(notifier notifier) *AssessmentCompletedHandler {
	return &AssessmentCompletedHandler{notifier: notifier}
}

// Handle sends the advisor notification. Undecodable payloads are dropped
// without retry.
func (h *AssessmentCompletedHandler) Handle(ctx context.Context, task *asynq.Task) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldTaskType, task.Type())))

	var payload AssessmentCompletedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		metrics.NotificationsTotal.WithLabelValues(task.Type(), "dropped").Inc()
		logger(ctx).Error("malformed task payload", logx.Error(err))

		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	if payload.AssessmentID == "" || len(payload.Areas) == 0 {
		metrics.NotificationsTotal.WithLabelValues(task.Type(), "dropped").Inc()

		return fmt.Errorf("incomplete task payload: %w", asynq.SkipRetry)
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldAssessmentID, payload.AssessmentID)))

	if err := h.notifier.SendAssessment(ctx, payload.assessment()); err != nil {
		metrics.NotificationsTotal.WithLabelValues(task.Type(), "failed").Inc()

		return fmt.Errorf("notifier.SendAssessment: %w", err)
	}

	metrics.NotificationsTotal.WithLabelValues(task.Type(), "sent").Inc()
	logger(ctx).Info("assessment notification sent")

	return nil
}
