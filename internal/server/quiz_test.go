package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/internal/server"
	"neetup/pkg/errcodes"
	"neetup/pkg/rest"
)

const testQuizSessionID = "csm1u2jvb1ig00c4o2c0"

func testQuizSession(userID value.UserID) entity.QuizSession {
	now := time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)

	return entity.QuizSession{
		ID:        testQuizSessionID,
		UserID:    userID,
		Answers:   value.MustAnswerSet(4, 4, 4),
		Cursor:    3,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newQuizService() *server.QuizServiceMock {
	notFound := domain.NewError(errcodes.QuizSessionNotFound, "quiz session not found")

	return &server.QuizServiceMock{
		StartFunc: func(_ context.Context, userID value.UserID) (entity.QuizSession, error) {
			return testQuizSession(userID), nil
		},
		GetFunc: func(_ context.Context, userID value.UserID, id value.QuizSessionID) (entity.QuizSession, error) {
			if id != testQuizSessionID {
				return entity.QuizSession{}, notFound
			}
			return testQuizSession(userID), nil
		},
		AnswerFunc: func(
			_ context.Context,
			userID value.UserID,
			_ value.QuizSessionID,
			number int,
			answer value.Likert,
		) (entity.QuizSession, error) {
			session := testQuizSession(userID)
			if err := session.Answer(number, answer, session.UpdatedAt); err != nil {
				return entity.QuizSession{}, err
			}
			return session, nil
		},
		SeekFunc: func(_ context.Context, userID value.UserID, _ value.QuizSessionID, cursor int) (entity.QuizSession, error) {
			session := testQuizSession(userID)
			session.Cursor = cursor
			return session, nil
		},
		FinishFunc: func(context.Context, value.UserID, value.QuizSessionID) (*entity.Assessment, error) {
			return nil, domain.ErrIncompleteAnswers
		},
	}
}

func TestQuizSessionLifecycle(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	quizService := newQuizService()
	client := newTestClient(t, &server.AssessmentServiceMock{}, quizService)

	var session rest.QuizSession

	resp, err := client.Post(ctx, "/v1/quiz/sessions", userHeaders, struct{}{}, &session, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(testQuizSessionID, session.ID)
	rq.Equal(20, session.Progress)
	rq.False(session.Complete)
	rq.Equal([]int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, session.Unanswered)

	resp, err = client.Get(ctx, "/v1/quiz/sessions/"+testQuizSessionID, userHeaders, &session, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(3, session.Cursor)

	resp, err = client.Put(
		ctx,
		"/v1/quiz/sessions/"+testQuizSessionID+"/answers/4",
		userHeaders,
		rest.AnswerRequest{Answer: 2},
		&session,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(4, session.Cursor)
	rq.Equal(2, session.Answers[3])

	call := quizService.AnswerCalls()[0]
	rq.Equal(4, call.Number)
	rq.Equal(value.Disagree, call.Answer)
	rq.Equal(value.UserID("user-1"), call.UserID)

	cursor := 1

	resp, err = client.Put(
		ctx,
		"/v1/quiz/sessions/"+testQuizSessionID+"/cursor",
		userHeaders,
		rest.CursorRequest{Cursor: &cursor},
		&session,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(1, session.Cursor)

	var errResp rest.Error

	resp, err = client.Post(ctx, "/v1/quiz/sessions/"+testQuizSessionID+"/finish", userHeaders, struct{}{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.IncompleteAnswers), errResp.Code)
	rq.Equal("Please answer all questions", errResp.Message)
}

func TestQuizSessionErrors(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestClient(t, &server.AssessmentServiceMock{}, newQuizService())

	testCases := []struct {
		name       string
		method     string
		endpoint   string
		body       any
		statusCode int
		errCode    string
	}{
		{
			name:       "Unknown session",
			method:     http.MethodGet,
			endpoint:   "/v1/quiz/sessions/csm1u2jvb1ig00c4o2d0",
			statusCode: http.StatusNotFound,
			errCode:    errcodes.QuizSessionNotFound.String(),
		},
		{
			name:       "Malformed session id",
			method:     http.MethodGet,
			endpoint:   "/v1/quiz/sessions/42",
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.InvalidQuizSessionID.String(),
		},
		{
			name:       "Position is not a number",
			method:     http.MethodPut,
			endpoint:   "/v1/quiz/sessions/" + testQuizSessionID + "/answers/first",
			body:       rest.AnswerRequest{Answer: 3},
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.InvalidPosition.String(),
		},
		{
			name:       "Position out of range",
			method:     http.MethodPut,
			endpoint:   "/v1/quiz/sessions/" + testQuizSessionID + "/answers/16",
			body:       rest.AnswerRequest{Answer: 3},
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.InvalidPosition.String(),
		},
		{
			name:       "Answer out of scale",
			method:     http.MethodPut,
			endpoint:   "/v1/quiz/sessions/" + testQuizSessionID + "/answers/2",
			body:       rest.AnswerRequest{Answer: 9},
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
		{
			name:       "Cursor missing",
			method:     http.MethodPut,
			endpoint:   "/v1/quiz/sessions/" + testQuizSessionID + "/cursor",
			body:       struct{}{},
			statusCode: http.StatusBadRequest,
			errCode:    errcodes.ValidationError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				errResp rest.Error
				resp    *http.Response
				err     error
			)

			switch tc.method {
			case http.MethodGet:
				resp, err = client.Get(ctx, tc.endpoint, userHeaders, nil, &errResp)
			case http.MethodPut:
				resp, err = client.Put(ctx, tc.endpoint, userHeaders, tc.body, nil, &errResp)
			}

			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Equal(rest.ErrorCode(tc.errCode), errResp.Code)
		})
	}
}

func TestQuizSessionConflict(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	quizService := newQuizService()
	quizService.AnswerFunc = func(
		context.Context,
		value.UserID,
		value.QuizSessionID,
		int,
		value.Likert,
	) (entity.QuizSession, error) {
		return entity.QuizSession{}, domain.NewError(
			errcodes.QuizSessionConflict,
			"quiz session is being changed concurrently, try again",
		)
	}

	client := newTestClient(t, &server.AssessmentServiceMock{}, quizService)

	var errResp rest.Error

	resp, err := client.Put(
		ctx,
		"/v1/quiz/sessions/"+testQuizSessionID+"/answers/2",
		userHeaders,
		rest.AnswerRequest{Answer: 3},
		nil,
		&errResp,
	)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.QuizSessionConflict), errResp.Code)
	rq.Equal("quiz session is being changed concurrently, try again", errResp.Message)
}
