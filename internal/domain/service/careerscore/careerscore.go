// Package careerscore maps a completed personality questionnaire to one or
// two recommended career areas.
//
// Each area score is the plain sum of the answers to a fixed set of
// statements. The sets overlap: statement 6 counts for both UI/UX Designer
// and Data Science, statement 14 for both Backend Developer and Data
// Science. Changing the sets changes recommendations for existing users.
package careerscore

import (
	"cmp"
	"slices"

	"neetup/internal/domain"
	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
)

// MaxRunnerUpGap is the largest distance from the top score at which the
// second area is still recommended.
const MaxRunnerUpGap = 2

// Statement numbers are 1-based, as shown to the user.
//
//nolint:gochecknoglobals
var areaStatements = map[entity.CareerArea][]int{
	entity.CareerAreaUIUXDesigner:      {3, 6, 7, 11, 15},
	entity.CareerAreaBackendDeveloper:  {5, 10, 13, 14},
	entity.CareerAreaDataScience:       {1, 6, 8, 14},
	entity.CareerAreaProjectManagement: {2, 4, 9, 12},
}

// Statements returns the 1-based statement numbers feeding an area.
func Statements(area entity.CareerArea) []int {
	return slices.Clone(areaStatements[area])
}

// Score ranks the career areas for a completed answer set. It returns
// domain.ErrIncompleteAnswers, unwrapped, if any statement is unanswered.
func Score(answers value.AnswerSet) (entity.RankedResult, error) {
	if !answers.IsComplete() {
		return entity.RankedResult{}, domain.ErrIncompleteAnswers
	}

	return Rank(Breakdown(answers)), nil
}

// Breakdown computes every area score in declaration order. It does not
// check completeness; unanswered statements count as zero.
func Breakdown(answers value.AnswerSet) []entity.CareerAreaScore {
	areas := entity.CareerAreas()
	scores := make([]entity.CareerAreaScore, 0, len(areas))

	for _, area := range areas {
		sum := 0
		for _, number := range areaStatements[area] {
			sum += int(answers.Statement(number))
		}

		scores = append(scores, entity.CareerAreaScore{Area: area, Score: sum})
	}

	return scores
}

// Rank orders scores descending, keeping the input order between equal
// scores, and keeps the runner-up only within MaxRunnerUpGap of the top.
func Rank(scores []entity.CareerAreaScore) entity.RankedResult {
	if len(scores) == 0 {
		return entity.RankedResult{}
	}

	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, func(a, b entity.CareerAreaScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	top := sorted[0]
	if len(sorted) > 1 && top.Score-sorted[1].Score <= MaxRunnerUpGap {
		return entity.RankedResult{Areas: []entity.CareerAreaScore{top, sorted[1]}}
	}

	return entity.RankedResult{Areas: []entity.CareerAreaScore{top}}
}
