// Package notifier posts assessment summaries to the career advisors' chat.
package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"neetup/internal/domain/entity"
	"neetup/pkg/logx"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Client exposes the underlying bot so the advisor commands share one token.
func (b *TelegramBot) Client() *telego.Bot {
	return b.bot
}

// SendAssessment posts the recommendation of a finished assessment.
func (b *TelegramBot) SendAssessment(ctx context.Context, assessment *entity.Assessment) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatAssessment(assessment),
	).WithParseMode(telego.ModeHTML)

	sent, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	logger(ctx).Debug("telegram message sent", slog.Int(logx.FieldMessageID, sent.MessageID))

	return nil
}

// FormatAssessment renders the HTML message body for an assessment.
func FormatAssessment(assessment *entity.Assessment) string {
	var sb strings.Builder

	top := assessment.Result.Top()

	sb.WriteString("🎯 <b>New career assessment</b>\n\n")
	fmt.Fprintf(&sb, "👤 <b>User:</b> <code>%s</code>\n", html.EscapeString(assessment.UserID.String()))
	fmt.Fprintf(&sb, "🏆 <b>Recommended:</b> %s (%d)\n", html.EscapeString(top.Area.String()), top.Score)

	if runnerUp, ok := assessment.Result.RunnerUp(); ok {
		fmt.Fprintf(&sb, "🥈 <b>Also close:</b> %s (%d)\n", html.EscapeString(runnerUp.Area.String()), runnerUp.Score)
	}

	fmt.Fprintf(&sb, "⚙️ <b>Scored:</b> %s\n", assessment.Source)
	fmt.Fprintf(&sb, "🆔 <code>%s</code>", html.EscapeString(assessment.ID.String()))

	return sb.String()
}
