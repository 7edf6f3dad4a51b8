package quiz_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/service/quiz"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
)

func memoryStore() *quiz.StoreMock {
	var mu sync.Mutex
	sessions := make(map[value.QuizSessionID]entity.QuizSession)

	notFound := func() error {
		return domain.NewError(errcodes.QuizSessionNotFound, "quiz session not found")
	}

	return &quiz.StoreMock{
		SaveFunc: func(_ context.Context, session entity.QuizSession) error {
			mu.Lock()
			defer mu.Unlock()

			sessions[session.ID] = session
			return nil
		},
		GetFunc: func(_ context.Context, id value.QuizSessionID) (entity.QuizSession, error) {
			mu.Lock()
			defer mu.Unlock()

			session, ok := sessions[id]
			if !ok {
				return entity.QuizSession{}, notFound()
			}
			return session, nil
		},
		UpdateFunc: func(
			_ context.Context,
			id value.QuizSessionID,
			fn func(session *entity.QuizSession) error,
		) (entity.QuizSession, error) {
			mu.Lock()
			defer mu.Unlock()

			session, ok := sessions[id]
			if !ok {
				return entity.QuizSession{}, notFound()
			}
			if err := fn(&session); err != nil {
				return entity.QuizSession{}, err
			}
			sessions[id] = session
			return session, nil
		},
		TakeFunc: func(_ context.Context, id value.QuizSessionID) (entity.QuizSession, error) {
			mu.Lock()
			defer mu.Unlock()

			session, ok := sessions[id]
			if !ok {
				return entity.QuizSession{}, notFound()
			}
			delete(sessions, id)
			return session, nil
		},
	}
}

func acceptingSubmitter() *quiz.SubmitterMock {
	return &quiz.SubmitterMock{
		SubmitFunc: func(_ context.Context, userID value.UserID, answers value.AnswerSet) (*entity.Assessment, error) {
			return &entity.Assessment{
				ID:      "csm1u2jvb1ig00c4o2a0",
				UserID:  userID,
				Answers: answers,
				Source:  entity.ScoreSourceLocal,
			}, nil
		},
	}
}

func TestQuizFullWalkthrough(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC)
	store := memoryStore()
	submitter := acceptingSubmitter()
	svc := quiz.NewService(store, submitter).WithClock(func() time.Time { return now })

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)
	rq.Equal(0, session.Cursor)
	rq.Equal(now, session.CreatedAt)

	for number := 1; number <= value.StatementCount; number++ {
		session, err = svc.Answer(ctx, "user-1", session.ID, number, value.Agree)
		rq.NoError(err)
		rq.Equal(min(number, value.StatementCount-1), session.Cursor)
	}

	rq.True(session.Complete())
	rq.Equal(100, session.Progress())

	assessment, err := svc.Finish(ctx, "user-1", session.ID)
	rq.NoError(err)
	rq.Equal(value.UserID("user-1"), assessment.UserID)

	rq.Len(submitter.SubmitCalls(), 1)
	rq.Equal(session.Answers, submitter.SubmitCalls()[0].Answers)

	_, err = svc.Get(ctx, "user-1", session.ID)
	rq.True(domain.HasCode(err, errcodes.QuizSessionNotFound), "finished session is forgotten")
}

func TestQuizFinishIncomplete(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	submitter := acceptingSubmitter()
	svc := quiz.NewService(memoryStore(), submitter)

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	for number := 1; number < value.StatementCount; number++ {
		session, err = svc.Answer(ctx, "user-1", session.ID, number, value.Neutral)
		rq.NoError(err)
	}

	_, err = svc.Finish(ctx, "user-1", session.ID)
	rq.ErrorIs(err, domain.ErrIncompleteAnswers)
	rq.Empty(submitter.SubmitCalls())

	stored, err := svc.Get(ctx, "user-1", session.ID)
	rq.NoError(err)
	rq.Equal([]int{15}, stored.Answers.Unanswered())
}

func TestQuizOwnership(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := quiz.NewService(memoryStore(), acceptingSubmitter())

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	_, err = svc.Get(ctx, "user-2", session.ID)
	rq.True(domain.HasCode(err, errcodes.QuizSessionNotFound))

	_, err = svc.Answer(ctx, "user-2", session.ID, 1, value.Agree)
	rq.True(domain.HasCode(err, errcodes.QuizSessionNotFound))

	_, err = svc.Finish(ctx, "user-2", session.ID)
	rq.True(domain.HasCode(err, errcodes.QuizSessionNotFound))
}

func TestQuizInvalidInput(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := memoryStore()
	svc := quiz.NewService(store, acceptingSubmitter())

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	testCases := []struct {
		name    string
		call    func() error
		errCode string
	}{
		{
			name: "Statement number too small",
			call: func() error {
				_, err := svc.Answer(ctx, "user-1", session.ID, 0, value.Agree)
				return err
			},
			errCode: errcodes.InvalidPosition.String(),
		},
		{
			name: "Statement number too large",
			call: func() error {
				_, err := svc.Answer(ctx, "user-1", session.ID, 16, value.Agree)
				return err
			},
			errCode: errcodes.InvalidPosition.String(),
		},
		{
			name: "Unanswered value",
			call: func() error {
				_, err := svc.Answer(ctx, "user-1", session.ID, 3, value.Unanswered)
				return err
			},
			errCode: errcodes.InvalidAnswer.String(),
		},
		{
			name: "Cursor out of range",
			call: func() error {
				_, err := svc.Seek(ctx, "user-1", session.ID, value.StatementCount)
				return err
			},
			errCode: errcodes.InvalidPosition.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			err := tc.call()

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.errCode, code.String())

			stored, err := svc.Get(ctx, "user-1", session.ID)
			rq.NoError(err)
			rq.Equal(session, stored, "invalid input is not saved")
		})
	}
}

func TestQuizSeek(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := quiz.NewService(memoryStore(), acceptingSubmitter())

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	session, err = svc.Answer(ctx, "user-1", session.ID, 1, value.StronglyAgree)
	rq.NoError(err)
	rq.Equal(1, session.Cursor)

	session, err = svc.Seek(ctx, "user-1", session.ID, 0)
	rq.NoError(err)
	rq.Equal(0, session.Cursor)
	rq.Equal(value.StronglyAgree, session.Answers.Statement(1), "seeking keeps answers")
}

func TestQuizFinishSubmitFailure(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := memoryStore()
	submitter := &quiz.SubmitterMock{
		SubmitFunc: func(context.Context, value.UserID, value.AnswerSet) (*entity.Assessment, error) {
			return nil, domain.WrapError(errors.New("conn refused"), errcodes.InternalServerError, "failed to create assessment")
		},
	}
	svc := quiz.NewService(store, submitter)

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	for number := 1; number <= value.StatementCount; number++ {
		session, err = svc.Answer(ctx, "user-1", session.ID, number, value.Disagree)
		rq.NoError(err)
	}

	_, err = svc.Finish(ctx, "user-1", session.ID)
	rq.True(domain.HasCode(err, errcodes.InternalServerError))

	stored, err := svc.Get(ctx, "user-1", session.ID)
	rq.NoError(err, "session is kept for a retry")
	rq.Equal(session.Answers, stored.Answers)
}

func TestQuizFinishAlreadyTaken(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := memoryStore()
	submitter := acceptingSubmitter()
	svc := quiz.NewService(store, submitter)

	session, err := svc.Start(ctx, "user-1")
	rq.NoError(err)

	for number := 1; number <= value.StatementCount; number++ {
		session, err = svc.Answer(ctx, "user-1", session.ID, number, value.StronglyAgree)
		rq.NoError(err)
	}

	// Another Finish takes the session between our read and our take.
	store.TakeFunc = func(context.Context, value.QuizSessionID) (entity.QuizSession, error) {
		return entity.QuizSession{}, domain.NewError(errcodes.QuizSessionNotFound, "quiz session not found")
	}

	_, err = svc.Finish(ctx, "user-1", session.ID)
	rq.True(domain.HasCode(err, errcodes.QuizSessionNotFound))
	rq.Empty(submitter.SubmitCalls())
}
