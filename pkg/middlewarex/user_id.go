package middlewarex

import (
	"log/slog"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"neetup/pkg/contextx"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx/reply"
	"neetup/pkg/logx"
)

const (
	headerNameUserID = "X-User-Id"
	maxUserIDLen     = 128
)

// UserID puts the caller identity set by the gateway into the context.
// Requests without it are rejected.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := strings.TrimSpace(r.Header.Get(headerNameUserID))
		if userID == "" || len(userID) > maxUserIDLen {
			reply.Error(ctx, w, failure.NewInvalidArgumentError(
				"invalid "+headerNameUserID+" header",
				failure.WithCode(errcodes.InvalidUserID),
				failure.WithDescription("Missing or invalid "+headerNameUserID+" header"),
			))

			return
		}

		ctx = contextx.WithUserID(ctx, contextx.UserID(userID))
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, userID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
