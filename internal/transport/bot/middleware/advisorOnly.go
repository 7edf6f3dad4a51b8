// Package middleware filters bot updates.
package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"

	"neetup/pkg/contextx"
	"neetup/pkg/logx"
)

// AdvisorOnly drops updates from anyone outside advisorIDs.
func AdvisorOnly(advisorIDs ...int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if !IsAdvisor(update, advisorIDs) {
			contextx.LoggerFromContextOrDefault(ctx).Debug("update from non advisor ignored",
				slog.Int(logx.FieldUpdateID, update.UpdateID),
			)

			return nil
		}

		return ctx.Next(update)
	}
}

// IsAdvisor reports whether the update sender is one of advisorIDs.
func IsAdvisor(update telego.Update, advisorIDs []int64) bool {
	var from *telego.User

	switch {
	case update.Message != nil:
		from = update.Message.From
	case update.CallbackQuery != nil:
		from = &update.CallbackQuery.From
	}

	return from != nil && lo.Contains(advisorIDs, from.ID)
}
