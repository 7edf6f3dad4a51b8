package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx/reply"
	"neetup/pkg/httpx/req"
	"neetup/pkg/rest"
)

type quizService interface {
	Start(context.Context, value.UserID) (entity.QuizSession, error)
	Get(context.Context, value.UserID, value.QuizSessionID) (entity.QuizSession, error)
	Answer(
		ctx context.Context,
		userID value.UserID,
		id value.QuizSessionID,
		number int,
		answer value.Likert,
	) (entity.QuizSession, error)
	Seek(ctx context.Context, userID value.UserID, id value.QuizSessionID, cursor int) (entity.QuizSession, error)
	Finish(context.Context, value.UserID, value.QuizSessionID) (*entity.Assessment, error)
}

type QuizServer struct {
	quizService quizService
}

func NewQuizServer(quizService quizService) QuizServer {
	return QuizServer{
		quizService: quizService,
	}
}

func (s QuizServer) postV1QuizSessions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	session, err := s.quizService.Start(ctx, userID)
	if err != nil {
		return fmt.Errorf("quizService.Start: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTQuizSession(session))

	return nil
}

func (s QuizServer) getV1QuizSession(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, id, err := quizSessionRequest(r)
	if err != nil {
		return err
	}

	session, err := s.quizService.Get(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("quizService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuizSession(session))

	return nil
}

func (s QuizServer) putV1QuizSessionAnswer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, id, err := quizSessionRequest(r)
	if err != nil {
		return err
	}

	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.Atoi: %w", err),
			failure.WithCode(errcodes.InvalidPosition),
			failure.WithDescription("position must be a statement number"),
		)
	}

	var request rest.AnswerRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	answer, err := value.ParseLikert(request.Answer)
	if err != nil {
		return fmt.Errorf("value.ParseLikert: %w", err)
	}

	session, err := s.quizService.Answer(ctx, userID, id, position, answer)
	if err != nil {
		return fmt.Errorf("quizService.Answer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuizSession(session))

	return nil
}

func (s QuizServer) putV1QuizSessionCursor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, id, err := quizSessionRequest(r)
	if err != nil {
		return err
	}

	var request rest.CursorRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.quizService.Seek(ctx, userID, id, *request.Cursor)
	if err != nil {
		return fmt.Errorf("quizService.Seek: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuizSession(session))

	return nil
}

func (s QuizServer) postV1QuizSessionFinish(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, id, err := quizSessionRequest(r)
	if err != nil {
		return err
	}

	assessment, err := s.quizService.Finish(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("quizService.Finish: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTAssessment(*assessment))

	return nil
}

func quizSessionRequest(r *http.Request) (value.UserID, value.QuizSessionID, error) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		return "", "", err
	}

	id, err := value.ParseQuizSessionID(r.PathValue("id"))
	if err != nil {
		return "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseQuizSessionID: %w", err),
			failure.WithCode(errcodes.InvalidQuizSessionID),
		)
	}

	return userID, id, nil
}
