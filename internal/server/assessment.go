package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/pkg/contextx"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx/reply"
	"neetup/pkg/httpx/req"
	"neetup/pkg/rest"
)

//go:generate moq -rm -out mocks.gen.go . assessmentService:AssessmentServiceMock quizService:QuizServiceMock
type assessmentService interface {
	Submit(context.Context, value.UserID, value.AnswerSet) (*entity.Assessment, error)
	Get(context.Context, value.UserID, value.AssessmentID) (*entity.Assessment, error)
	ListByUser(ctx context.Context, userID value.UserID, limit, offset int) ([]entity.Assessment, error)
}

type AssessmentServer struct {
	assessmentService assessmentService
}

func NewAssessmentServer(assessmentService assessmentService) AssessmentServer {
	return AssessmentServer{
		assessmentService: assessmentService,
	}
}

func (s AssessmentServer) postV1Assessments(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	var request rest.AnswersRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	answers, err := value.NewAnswerSet(request.Answers)
	if err != nil {
		return fmt.Errorf("value.NewAnswerSet: %w", err)
	}

	assessment, err := s.assessmentService.Submit(ctx, userID, answers)
	if err != nil {
		return fmt.Errorf("assessmentService.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTAssessment(*assessment))

	return nil
}

func (s AssessmentServer) getV1Assessment(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	id, err := value.ParseAssessmentID(r.PathValue("id"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseAssessmentID: %w", err),
			failure.WithCode(errcodes.InvalidAssessmentID),
		)
	}

	assessment, err := s.assessmentService.Get(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("assessmentService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAssessment(*assessment))

	return nil
}

func (s AssessmentServer) getV1Assessments(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return err
	}

	offset, err := queryInt(r, "offset")
	if err != nil {
		return err
	}

	assessments, err := s.assessmentService.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return fmt.Errorf("assessmentService.ListByUser: %w", err)
	}

	items := make([]rest.Assessment, 0, len(assessments))
	for _, assessment := range assessments {
		items = append(items, newRESTAssessment(assessment))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AssessmentList{
		Items:  items,
		Limit:  limit,
		Offset: offset,
	})

	return nil
}

func userIDFromContext(ctx context.Context) (value.UserID, error) {
	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	return value.UserID(userID), nil
}

// queryInt reads an optional integer query parameter, zero when absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.Atoi: %w", err),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(name+" must be an integer"),
		)
	}

	return v, nil
}
