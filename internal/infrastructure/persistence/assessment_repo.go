package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
	"neetup/pkg/lox"
)

const assessmentColumns = `id, user_id, answers, result, source, created_at`

type AssessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// Create stores a completed assessment. Assessments are immutable, a second
// insert with the same id is a no-op.
func (r *AssessmentRepository) Create(ctx context.Context, assessment *entity.Assessment) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		schema, err := fromAssessment(assessment)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to encode assessment")
		}

		if schema.CreatedAt.IsZero() {
			schema.CreatedAt = time.Now()
		}

		query := `
			INSERT INTO assessments (` + assessmentColumns + `)
			VALUES (:id, :user_id, :answers, :result, :source, :created_at)
			ON CONFLICT (id) DO NOTHING`

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create assessment")
		}
		return nil
	})
}

func (r *AssessmentRepository) GetByID(ctx context.Context, id value.AssessmentID) (*entity.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`

	var schema assessmentSchema
	if err := r.db.GetContext(ctx, &schema, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.AssessmentNotFound, "assessment not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get assessment")
	}

	assessment, err := schema.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode assessment")
	}

	return assessment, nil
}

// ListByUser returns the newest assessments of a user first.
func (r *AssessmentRepository) ListByUser(
	ctx context.Context,
	userID value.UserID,
	limit, offset int,
) ([]entity.Assessment, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	var schemas []assessmentSchema
	if err := r.db.SelectContext(ctx, &schemas, query, userID.String(), limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list assessments")
	}

	result, err := lox.MapErr(schemas, func(s assessmentSchema) (entity.Assessment, error) {
		assessment, err := s.toDomain()
		if err != nil {
			return entity.Assessment{}, err
		}
		return *assessment, nil
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode assessment")
	}
	return result, nil
}
