package server

import (
	"github.com/samber/lo"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/service/careerscore"
	"neetup/internal/domain/value"
	"neetup/pkg/rest"
)

func newRESTCareerAreaScores(scores []entity.CareerAreaScore) []rest.CareerAreaScore {
	return lo.Map(scores, func(s entity.CareerAreaScore, _ int) rest.CareerAreaScore {
		return rest.CareerAreaScore{
			Area:  s.Area.String(),
			Score: s.Score,
		}
	})
}

func newRESTAssessment(assessment entity.Assessment) rest.Assessment {
	return rest.Assessment{
		ID:        assessment.ID.String(),
		Answers:   assessment.Answers.Ints(),
		Results:   newRESTCareerAreaScores(assessment.Result.Areas),
		Source:    string(assessment.Source),
		CreatedAt: assessment.CreatedAt,
	}
}

func newRESTQuizSession(session entity.QuizSession) rest.QuizSession {
	unanswered := session.Answers.Unanswered()
	if unanswered == nil {
		unanswered = []int{}
	}

	return rest.QuizSession{
		ID:         session.ID.String(),
		Cursor:     session.Cursor,
		Answers:    session.Answers.Ints(),
		Unanswered: unanswered,
		Progress:   session.Progress(),
		Complete:   session.Complete(),
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}

func newRESTStatementCatalog() rest.StatementCatalog {
	areasByStatement := make(map[int][]string, value.StatementCount)

	for _, area := range entity.CareerAreas() {
		for _, number := range careerscore.Statements(area) {
			areasByStatement[number] = append(areasByStatement[number], area.String())
		}
	}

	return rest.StatementCatalog{
		Statements: lo.Map(value.Statements(), func(s value.Statement, _ int) rest.Statement {
			return rest.Statement{
				Number: s.Number,
				Text:   s.Text,
				Areas:  areasByStatement[s.Number],
			}
		}),
		Scale: lo.Map(value.LikertScale(), func(l value.Likert, _ int) rest.LikertOption {
			return rest.LikertOption{
				Value: int(l),
				Label: l.Label(),
			}
		}),
	}
}
