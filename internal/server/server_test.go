package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/internal/server"
	"neetup/pkg/errcodes"
	"neetup/pkg/rest"
	"neetup/pkg/tests"
)

const testAssessmentID = "csm1u2jvb1ig00c4o2a0"

var userHeaders = http.Header{"X-User-Id": {"user-1"}} //nolint:gochecknoglobals

func newTestClient(
	t *testing.T,
	assessmentService *server.AssessmentServiceMock,
	quizService *server.QuizServiceMock,
) tests.APIClient {
	t.Helper()

	srv := server.NewServer(
		server.NewCalculatorServer(),
		server.NewAssessmentServer(assessmentService),
		server.NewQuizServer(quizService),
	)

	httpServer := httptest.NewServer(srv.Router(4096))
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, httpServer.Client())
}

func testAssessment(userID value.UserID, answers value.AnswerSet) *entity.Assessment {
	return &entity.Assessment{
		ID:      testAssessmentID,
		UserID:  userID,
		Answers: answers,
		Result: entity.RankedResult{Areas: []entity.CareerAreaScore{
			{Area: entity.CareerAreaUIUXDesigner, Score: 25},
		}},
		Source:    entity.ScoreSourceRemote,
		CreatedAt: time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetV1QuizStatements(t *testing.T) {
	rq := require.New(t)

	client := newTestClient(t, &server.AssessmentServiceMock{}, &server.QuizServiceMock{})

	var catalog rest.StatementCatalog

	resp, err := client.Get(context.Background(), "/v1/quiz/statements", nil, &catalog, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(catalog.Statements, value.StatementCount)
	rq.Equal(1, catalog.Statements[0].Number)
	rq.Equal([]string{"Data Science"}, catalog.Statements[0].Areas)
	rq.Equal([]string{"UI/UX Designer", "Data Science"}, catalog.Statements[5].Areas)
	rq.Equal([]string{"Backend Developer", "Data Science"}, catalog.Statements[13].Areas)

	rq.Equal([]rest.LikertOption{
		{Value: 1, Label: "Strongly Disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly Agree"},
	}, catalog.Scale)
}

func TestPostV1CareerScores(t *testing.T) {
	rq := require.New(t)

	client := newTestClient(t, &server.AssessmentServiceMock{}, &server.QuizServiceMock{})

	testCases := []struct {
		name       string
		endpoint   string
		body       string
		statusCode int
		results    []rest.CareerAreaScore
		errCode    string
		errMessage string
	}{
		{
			name:       "All strongly agree",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[5,5,5,5,5,5,5,5,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusOK,
			results:    []rest.CareerAreaScore{{Area: "UI/UX Designer", Score: 25}},
		},
		{
			name:       "All strongly disagree keeps declaration order",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]}`,
			statusCode: http.StatusOK,
			results: []rest.CareerAreaScore{
				{Area: "UI/UX Designer", Score: 5},
				{Area: "Backend Developer", Score: 4},
			},
		},
		{
			name:       "Fourteen answers",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[5,5,5,5,5,5,5,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.IncompleteAnswers.String(),
			errMessage: "Please answer all questions",
		},
		{
			name:       "Explicit zero",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[5,5,5,5,5,5,5,0,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.IncompleteAnswers.String(),
			errMessage: "Please answer all questions",
		},
		{
			name:       "Out of scale",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[6,5,5,5,5,5,5,5,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
		{
			name:       "Too many answers",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":[5,5,5,5,5,5,5,5,5,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
		{
			name:       "Invalid JSON",
			endpoint:   "/v1/career-scores",
			body:       `{"answers":`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
		{
			name:       "Invalid breakdown flag",
			endpoint:   "/v1/career-scores?breakdown=maybe",
			body:       `{"answers":[5,5,5,5,5,5,5,5,5,5,5,5,5,5,5]}`,
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				scores  rest.CareerScores
				errResp rest.Error
			)

			resp, err := client.PostJSON(context.Background(), tc.endpoint, nil, tc.body, &scores, &errResp)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)

			if tc.errCode != "" {
				rq.Equal(rest.ErrorCode(tc.errCode), errResp.Code)
				rq.NotEmpty(errResp.SupportID)
				if tc.errMessage != "" {
					rq.Equal(tc.errMessage, errResp.Message)
				}
				return
			}

			rq.Equal(tc.results, scores.Results)
		})
	}
}

func TestPostV1CareerScoresBreakdown(t *testing.T) {
	rq := require.New(t)

	client := newTestClient(t, &server.AssessmentServiceMock{}, &server.QuizServiceMock{})

	var scores rest.CareerScoreBreakdown

	resp, err := client.PostJSON(
		context.Background(),
		"/v1/career-scores?breakdown=true",
		nil,
		`{"answers":[1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]}`,
		&scores,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(scores.Results, 2)
	rq.Equal([]rest.CareerAreaScore{
		{Area: "UI/UX Designer", Score: 5},
		{Area: "Backend Developer", Score: 4},
		{Area: "Data Science", Score: 4},
		{Area: "Project Management", Score: 4},
	}, scores.Breakdown)
}

func TestPostV1Assessments(t *testing.T) {
	rq := require.New(t)

	assessmentService := &server.AssessmentServiceMock{
		SubmitFunc: func(_ context.Context, userID value.UserID, answers value.AnswerSet) (*entity.Assessment, error) {
			if !answers.IsComplete() {
				return nil, domain.ErrIncompleteAnswers
			}
			return testAssessment(userID, answers), nil
		},
	}

	client := newTestClient(t, assessmentService, &server.QuizServiceMock{})

	var assessment rest.Assessment

	resp, err := client.Post(
		context.Background(),
		"/v1/assessments",
		userHeaders,
		rest.AnswersRequest{Answers: []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}},
		&assessment,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)

	rq.Equal(testAssessmentID, assessment.ID)
	rq.Equal("remote", assessment.Source)
	rq.Equal([]rest.CareerAreaScore{{Area: "UI/UX Designer", Score: 25}}, assessment.Results)
	rq.Len(assessment.Answers, value.StatementCount)

	rq.Len(assessmentService.SubmitCalls(), 1)
	rq.Equal(value.UserID("user-1"), assessmentService.SubmitCalls()[0].UserID)

	var errResp rest.Error

	resp, err = client.Post(
		context.Background(),
		"/v1/assessments",
		userHeaders,
		rest.AnswersRequest{Answers: []int{5, 5, 5}},
		nil,
		&errResp,
	)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.IncompleteAnswers), errResp.Code)
	rq.Equal("Please answer all questions", errResp.Message)
}

func TestUserIDRequired(t *testing.T) {
	rq := require.New(t)

	assessmentService := &server.AssessmentServiceMock{}
	client := newTestClient(t, assessmentService, &server.QuizServiceMock{})

	var errResp rest.Error

	resp, err := client.Post(
		context.Background(),
		"/v1/assessments",
		nil,
		rest.AnswersRequest{Answers: []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}},
		nil,
		&errResp,
	)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidUserID), errResp.Code)
	rq.Empty(assessmentService.SubmitCalls())
}

func TestGetV1Assessment(t *testing.T) {
	rq := require.New(t)

	assessmentService := &server.AssessmentServiceMock{
		GetFunc: func(_ context.Context, userID value.UserID, id value.AssessmentID) (*entity.Assessment, error) {
			switch id {
			case testAssessmentID:
				return testAssessment(userID, value.MustAnswerSet(5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5)), nil
			case "csm1u2jvb1ig00c4o2ag":
				return nil, errors.New("connection reset by peer")
			default:
				return nil, domain.NewError(errcodes.AssessmentNotFound, "assessment not found")
			}
		},
	}

	client := newTestClient(t, assessmentService, &server.QuizServiceMock{})

	testCases := []struct {
		name       string
		id         string
		statusCode int
		errCode    string
	}{
		{name: "Found", id: testAssessmentID, statusCode: http.StatusOK},
		{name: "Not found", id: "csm1u2jvb1ig00c4o2b0", statusCode: http.StatusNotFound, errCode: errcodes.AssessmentNotFound.String()},
		{name: "Invalid id", id: "not-an-id", statusCode: http.StatusBadRequest, errCode: errcodes.InvalidAssessmentID.String()},
		{name: "Storage failure", id: "csm1u2jvb1ig00c4o2ag", statusCode: http.StatusInternalServerError, errCode: errcodes.InternalServerError.String()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				assessment rest.Assessment
				errResp    rest.Error
			)

			resp, err := client.Get(context.Background(), "/v1/assessments/"+tc.id, userHeaders, &assessment, &errResp)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)

			if tc.errCode != "" {
				rq.Equal(rest.ErrorCode(tc.errCode), errResp.Code)
				rq.Equal(resp.Header.Get("X-Trace-Id"), errResp.SupportID)
				return
			}

			rq.Equal(tc.id, assessment.ID)
		})
	}
}

func TestGetV1Assessments(t *testing.T) {
	rq := require.New(t)

	assessmentService := &server.AssessmentServiceMock{
		ListByUserFunc: func(_ context.Context, userID value.UserID, limit, _ int) ([]entity.Assessment, error) {
			if limit > 100 {
				return nil, domain.NewError(errcodes.InvalidPaging, "limit must be between 1 and 100")
			}
			return []entity.Assessment{*testAssessment(userID, value.AnswerSet{})}, nil
		},
	}

	client := newTestClient(t, assessmentService, &server.QuizServiceMock{})

	var list rest.AssessmentList

	resp, err := client.Get(context.Background(), "/v1/assessments?limit=5&offset=10", userHeaders, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(list.Items, 1)
	rq.Equal(5, list.Limit)
	rq.Equal(10, list.Offset)

	call := assessmentService.ListByUserCalls()[0]
	rq.Equal(value.UserID("user-1"), call.UserID)
	rq.Equal(5, call.Limit)
	rq.Equal(10, call.Offset)

	for _, endpoint := range []string{"/v1/assessments?limit=abc", "/v1/assessments?limit=500"} {
		var errResp rest.Error

		resp, err = client.Get(context.Background(), endpoint, userHeaders, nil, &errResp)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode, endpoint)
		rq.Equal(rest.ErrorCode(errcodes.InvalidPaging), errResp.Code, endpoint)
	}
}
