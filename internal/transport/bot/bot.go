// Package bot runs the advisor command bot over long polling.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"neetup/internal/transport/bot/handler"
	"neetup/pkg/logx"
)

const longPollingTimeout = 60

type Bot struct {
	bot        *telego.Bot
	handler    *handler.Handler
	advisorIDs []int64
}

func New(bot *telego.Bot, assessments handler.AssessmentReader, advisorIDs []int64) *Bot {
	return &Bot{
		bot:        bot,
		handler:    handler.New(assessments),
		advisorIDs: advisorIDs,
	}
}

// Run polls updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.advisorIDs)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("failed to start bot handler", slog.Any(logx.FieldError, err))
		}
	}()

	logger(ctx).Info("advisor bot started", slog.Int("advisors", len(b.advisorIDs)))

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("failed to stop bot handler", slog.Any(logx.FieldError, err))
	}

	logger(ctx).Info("advisor bot stopped")

	return nil
}
