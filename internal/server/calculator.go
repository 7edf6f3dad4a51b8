package server

import (
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
	"neetup/pkg/httpx/reply"
	"neetup/pkg/httpx/req"
	"neetup/pkg/rest"
)

// CalculatorServer serves the questionnaire and stateless scoring.
type CalculatorServer struct {
	catalog rest.StatementCatalog
}

func NewCalculatorServer() CalculatorServer {
	return CalculatorServer{
		catalog: newRESTStatementCatalog(),
	}
}

func (s CalculatorServer) getV1QuizStatements(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, s.catalog)

	return nil
}

// postV1CareerScores scores answers without storing them. With
// ?breakdown=true the per-area scores are returned as well.
func (s CalculatorServer) postV1CareerScores(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.AnswersRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	withBreakdown := false
	if raw := r.URL.Query().Get("breakdown"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("strconv.ParseBool: %w", err),
				failure.WithCode(errcodes.ValidationError),
				failure.WithDescription("breakdown must be a boolean"),
			)
		}
		withBreakdown = parsed
	}

	answers, err := value.NewAnswerSet(request.Answers)
	if err != nil {
		return fmt.Errorf("value.NewAnswerSet: %w", err)
	}

	result, err := careerscore.Score(answers)
	if err != nil {
		return fmt.Errorf("careerscore.Score: %w", err)
	}

	if withBreakdown {
		reply.JSON(ctx, w, http.StatusOK, rest.CareerScoreBreakdown{
			Results:   newRESTCareerAreaScores(result.Areas),
			Breakdown: newRESTCareerAreaScores(careerscore.Breakdown(answers)),
		})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CareerScores{
		Results: newRESTCareerAreaScores(result.Areas),
	})

	return nil
}
