package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"neetup/pkg/logx"
	"neetup/pkg/middlewarex"
)

// Router builds the public API handler with the standard middleware chain.
func (s Server) Router(logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		// anonymous zone
		r.Get("/quiz/statements", handler(s.getV1QuizStatements))
		r.Post("/career-scores", handler(s.postV1CareerScores))

		// caller identified by the gateway
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.UserID)

			r.Route("/assessments", func(r chi.Router) {
				r.Post("/", handler(s.postV1Assessments))
				r.Get("/", handler(s.getV1Assessments))
				r.Get("/{id}", handler(s.getV1Assessment))
			})

			r.Route("/quiz/sessions", func(r chi.Router) {
				r.Post("/", handler(s.postV1QuizSessions))
				r.Get("/{id}", handler(s.getV1QuizSession))
				r.Put("/{id}/answers/{position}", handler(s.putV1QuizSessionAnswer))
				r.Put("/{id}/cursor", handler(s.putV1QuizSessionCursor))
				r.Post("/{id}/finish", handler(s.postV1QuizSessionFinish))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(r.Context(), w, err)
		}
	}
}
