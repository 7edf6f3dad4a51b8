// Package quizstore keeps in-progress questionnaires in Redis. Sessions
// expire after a period of inactivity; every write extends the TTL.
package quizstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	keyPrefix = "quiz:session:"

	// maxUpdateAttempts bounds optimistic lock retries of one Update.
	maxUpdateAttempts = 64
	updateBackoff     = time.Millisecond
)

type sessionSchema struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Cursor    int       `json:"cursor"`
	Answers   []int     `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Save(ctx context.Context, session entity.QuizSession) error {
	b, err := encode(session)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key(session.ID), b, s.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save quiz session")
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id value.QuizSessionID) (entity.QuizSession, error) {
	b, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		return entity.QuizSession{}, readError(err, "failed to get quiz session")
	}

	return decode(b)
}

// Update applies fn to the stored session and writes the result back under
// WATCH, so concurrent updates of one session never overwrite each other.
// Errors returned by fn abort the update and are returned unchanged.
func (s *RedisStore) Update(
	ctx context.Context,
	id value.QuizSessionID,
	fn func(session *entity.QuizSession) error,
) (entity.QuizSession, error) {
	k := key(id)

	var updated entity.QuizSession

	txf := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			return readError(err, "failed to get quiz session")
		}

		session, err := decode(b)
		if err != nil {
			return err
		}

		if err := fn(&session); err != nil {
			return err
		}

		encoded, err := encode(session)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err //nolint:wrapcheck // redis.TxFailedErr is matched by the caller
		}

		updated = session

		return nil
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, k)
		if err == nil {
			return updated, nil
		}

		if !errors.Is(err, redis.TxFailedErr) {
			if domain.IsAppError(err) {
				return entity.QuizSession{}, err
			}
			return entity.QuizSession{}, domain.WrapError(err, errcodes.InternalServerError, "failed to update quiz session")
		}

		select {
		case <-ctx.Done():
			return entity.QuizSession{}, domain.WrapError(ctx.Err(), errcodes.InternalServerError, "failed to update quiz session")
		case <-time.After(updateBackoff * time.Duration(attempt)):
		}
	}

	return entity.QuizSession{}, domain.NewError(
		errcodes.QuizSessionConflict,
		"quiz session is being changed concurrently, try again",
	)
}

// Take removes the session and returns it in one step. Only one of several
// concurrent callers gets the session, the others see QuizSessionNotFound.
func (s *RedisStore) Take(ctx context.Context, id value.QuizSessionID) (entity.QuizSession, error) {
	b, err := s.client.GetDel(ctx, key(id)).Bytes()
	if err != nil {
		return entity.QuizSession{}, readError(err, "failed to take quiz session")
	}

	return decode(b)
}

func encode(session entity.QuizSession) ([]byte, error) {
	b, err := json.Marshal(sessionSchema{
		ID:        session.ID.String(),
		UserID:    session.UserID.String(),
		Cursor:    session.Cursor,
		Answers:   session.Answers.Ints(),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to encode quiz session")
	}

	return b, nil
}

func decode(b []byte) (entity.QuizSession, error) {
	var schema sessionSchema
	if err := json.Unmarshal(b, &schema); err != nil {
		return entity.QuizSession{}, domain.WrapError(err, errcodes.InternalServerError, "failed to decode quiz session")
	}

	answers, err := value.NewAnswerSet(schema.Answers)
	if err != nil {
		return entity.QuizSession{}, domain.WrapError(
			fmt.Errorf("value.NewAnswerSet: %w", err),
			errcodes.InternalServerError,
			"failed to decode quiz session",
		)
	}

	return entity.QuizSession{
		ID:        value.QuizSessionID(schema.ID),
		UserID:    value.UserID(schema.UserID),
		Cursor:    schema.Cursor,
		Answers:   answers,
		CreatedAt: schema.CreatedAt,
		UpdatedAt: schema.UpdatedAt,
	}, nil
}

func readError(err error, message string) error {
	if errors.Is(err, redis.Nil) {
		return domain.NewError(errcodes.QuizSessionNotFound, "quiz session not found")
	}

	return domain.WrapError(err, errcodes.InternalServerError, message)
}

func key(id value.QuizSessionID) string {
	return keyPrefix + id.String()
}
