package server

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"neetup/internal/domain"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx/reply"
)

// replyError maps domain error codes onto HTTP statuses. Errors without a
// domain code go through reply.Error unchanged.
func replyError(ctx context.Context, w http.ResponseWriter, err error) {
	code, ok := domain.GetCode(err)
	if !ok {
		reply.Error(ctx, w, err)
		return
	}

	switch code {
	case errcodes.AssessmentNotFound, errcodes.QuizSessionNotFound:
		reply.Failure(ctx, w, http.StatusNotFound, code, domain.GetMessage(err), err)
	case errcodes.QuizSessionConflict:
		reply.Failure(ctx, w, http.StatusConflict, code, domain.GetMessage(err), err)
	case errcodes.IncompleteAnswers,
		errcodes.InvalidAnswer,
		errcodes.InvalidPosition,
		errcodes.InvalidPaging,
		errcodes.InvalidUserID:
		reply.Error(ctx, w, failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(code),
			failure.WithDescription(domain.GetMessage(err)),
		))
	default:
		reply.Error(ctx, w, err)
	}
}
