// Package application wires the assessment service together and runs its
// servers until the context is cancelled.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"neetup/internal/config"
	"neetup/internal/domain/service/assessment"
	"neetup/internal/domain/service/quiz"
	"neetup/internal/infrastructure/notifier"
	"neetup/internal/infrastructure/persistence"
	"neetup/internal/infrastructure/quizstore"
	"neetup/internal/infrastructure/scoring"
	"neetup/internal/server"
	advisor "neetup/internal/transport/bot"
	"neetup/internal/worker"
	"neetup/pkg/application/connectors"
	"neetup/pkg/application/modules"
	"neetup/pkg/contextx"
	"neetup/pkg/logx"
	"neetup/pkg/probe"
)

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	notificationConcurrency     = 2
)

func Run(ctx context.Context, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rdb := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rdb.Client(ctx)
	defer rdb.Close(ctx)

	g, ctx := errgroup.WithContext(ctx)

	var assessmentOpts []assessment.Option

	if cfg.Scoring.Enabled() {
		scorer := scoring.NewClient(scoring.Options{
			BaseURL:        cfg.Scoring.BaseURL,
			Token:          cfg.Scoring.Token,
			Timeout:        cfg.Scoring.Timeout,
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
		})

		assessmentOpts = append(assessmentOpts, assessment.WithRemoteScorer(scorer, cfg.Scoring.CacheTTL))

		logger(ctx).Info("remote scoring enabled", slog.String(logx.FieldURL, cfg.Scoring.BaseURL))
	}

	repo := persistence.NewAssessmentRepository(db)

	if cfg.Notifier.Enabled {
		bot, err := notifier.NewTelegramBot(cfg.Notifier.BotToken, cfg.Notifier.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		queueConnection := asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.QueueDatabaseNumber,
		}

		asynqClient := asynq.NewClient(queueConnection)
		defer asynqClient.Close()

		assessmentOpts = append(assessmentOpts, assessment.WithPublisher(worker.NewPublisher(asynqClient)))

		modules.AsynqServer{
			RedisUsername:   cfg.Redis.Username,
			RedisPassword:   cfg.Redis.Password,
			RedisAddress:    cfg.Redis.Address,
			RedisDB:         cfg.Redis.QueueDatabaseNumber,
			Concurrency:     notificationConcurrency,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		}.Run(
			ctx,
			g,
			modules.AsynqQueues{worker.QueueNotifications: 1},
			modules.AsynqHandler{
				Pattern: worker.TypeAssessmentCompleted,
				Handle:  worker.NewAssessmentCompletedHandler(bot).Handle,
			},
		)

		if cfg.Notifier.CommandsEnabled() {
			advisorBot := advisor.New(bot.Client(), repo, cfg.Notifier.AdvisorIDs)

			g.Go(func() error {
				if err := advisorBot.Run(ctx); err != nil {
					return fmt.Errorf("advisorBot.Run: %w", err)
				}

				return nil
			})
		}
	}

	assessmentService := assessment.NewService(repo, assessmentOpts...)

	quizService := quiz.NewService(
		quizstore.NewRedisStore(redisClient, cfg.Quiz.SessionTTL),
		assessmentService,
	)

	srv := server.NewServer(
		server.NewCalculatorServer(),
		server.NewAssessmentServer(assessmentService),
		server.NewQuizServer(quizService),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           srv.Router(cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: []probe.Check{
			{Name: "postgres", Func: pg.Ping},
			{Name: "redis", Func: rdb.Ping},
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
