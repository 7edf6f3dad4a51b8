// Package assessment submits completed questionnaires, keeping the remote
// scoring API as the source of truth and the local calculator as fallback.
package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/internal/metrics"
	"neetup/pkg/contextx"
	"neetup/pkg/errcodes"
	"neetup/pkg/logx"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	cacheCleanupInterval = time.Hour
)

//go:generate moq -rm -out mocks.gen.go . Scorer:ScorerMock Repository:RepositoryMock Publisher:PublisherMock
type Scorer interface {
	Score(ctx context.Context, answers value.AnswerSet) (entity.RankedResult, error)
}

type Repository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	GetByID(ctx context.Context, id value.AssessmentID) (*entity.Assessment, error)
	ListByUser(ctx context.Context, userID value.UserID, limit, offset int) ([]entity.Assessment, error)
}

type Publisher interface {
	PublishAssessmentCompleted(ctx context.Context, assessment *entity.Assessment) error
}

type Service struct {
	repo        Repository
	scorer      Scorer
	publisher   Publisher
	resultCache *cache.Cache
	now         func() time.Time
}

type Option func(*Service)

// WithRemoteScorer makes the service ask scorer first. Remote results are
// memoised per answer set for cacheTTL.
func WithRemoteScorer(scorer Scorer, cacheTTL time.Duration) Option {
	return func(s *Service) {
		s.scorer = scorer
		s.resultCache = cache.New(cacheTTL, cacheCleanupInterval)
	}
}

func WithPublisher(publisher Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit scores and stores a completed answer set. An incomplete set fails
// with domain.ErrIncompleteAnswers before anything else happens.
func (s *Service) Submit(
	ctx context.Context,
	userID value.UserID,
	answers value.AnswerSet,
) (*entity.Assessment, error) {
	local, err := careerscore.Score(answers)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	result, source := s.score(ctx, answers, local)

	assessment := &entity.Assessment{
		ID:        value.NewAssessmentID(),
		UserID:    userID,
		Answers:   answers,
		Result:    result,
		Source:    source,
		CreatedAt: s.now().UTC(),
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldAssessmentID, assessment.ID.String())))

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("repo.Create: %w", err)
	}

	metrics.AssessmentsTotal.WithLabelValues(string(source)).Inc()
	for _, area := range result.Areas {
		metrics.CareerRecommendationsTotal.WithLabelValues(area.Area.String()).Inc()
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAssessmentCompleted(ctx, assessment); err != nil {
			logger(ctx).Warn("failed to publish assessment", logx.Error(err))
		}
	}

	logger(ctx).Info("assessment submitted",
		slog.String(logx.FieldScoreSource, string(source)),
		slog.String(logx.FieldCareerArea, result.Top().Area.String()),
	)

	return assessment, nil
}

func (s *Service) score(
	ctx context.Context,
	answers value.AnswerSet,
	local entity.RankedResult,
) (entity.RankedResult, entity.ScoreSource) {
	if s.scorer == nil {
		return local, entity.ScoreSourceLocal
	}

	key := answers.Key()

	if cached, ok := s.resultCache.Get(key); ok {
		if result, ok := cached.(entity.RankedResult); ok {
			return result, entity.ScoreSourceRemote
		}
	}

	remote, err := s.scorer.Score(ctx, answers)
	if err != nil {
		reason := "error"
		if code, ok := domain.GetCode(err); ok {
			reason = code.String()
		}

		metrics.ScoringFallbacksTotal.WithLabelValues(reason).Inc()
		logger(ctx).Warn("remote scoring failed, using local result", logx.Error(err))

		return local, entity.ScoreSourceLocal
	}

	if remote.Top() != local.Top() {
		logger(ctx).Info("remote result differs from local calculator",
			slog.String("remote", remote.Top().Area.String()),
			slog.String("local", local.Top().Area.String()),
		)
	}

	s.resultCache.SetDefault(key, remote)

	return remote, entity.ScoreSourceRemote
}

// Get returns an assessment of the user. Assessments of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, userID value.UserID, id value.AssessmentID) (*entity.Assessment, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	if assessment.UserID != userID {
		return nil, domain.NewError(errcodes.AssessmentNotFound, "assessment not found")
	}

	return assessment, nil
}

// ListByUser pages through the assessments of a user, newest first. A zero
// limit means DefaultListLimit.
func (s *Service) ListByUser(
	ctx context.Context,
	userID value.UserID,
	limit, offset int,
) ([]entity.Assessment, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	if limit < 0 || limit > MaxListLimit || offset < 0 {
		return nil, domain.NewError(
			errcodes.InvalidPaging,
			fmt.Sprintf("limit must be between 1 and %d and offset must not be negative", MaxListLimit),
		)
	}

	assessments, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repo.ListByUser: %w", err)
	}

	return assessments, nil
}
