package value

import (
	"fmt"
	"strconv"
	"strings"

	"neetup/internal/domain"
	"neetup/pkg/errcodes"
)

// StatementCount is the fixed length of the personality questionnaire.
const StatementCount = 15

// AnswerSet holds one Likert answer per statement. Index 0 is statement 1.
// It is a value type: every modification returns a new set.
type AnswerSet [StatementCount]Likert

// NewAnswerSet builds a set from raw values. Missing trailing values and
// zeros stay unanswered; anything outside 0..5 is rejected.
func NewAnswerSet(values []int) (AnswerSet, error) {
	var set AnswerSet

	if len(values) > StatementCount {
		return set, domain.NewError(
			errcodes.InvalidAnswer,
			fmt.Sprintf("expected at most %d answers, got %d", StatementCount, len(values)),
		)
	}

	for i, v := range values {
		if v == int(Unanswered) {
			continue
		}

		l, err := ParseLikert(v)
		if err != nil {
			return AnswerSet{}, domain.WrapError(err, errcodes.InvalidAnswer, fmt.Sprintf("statement %d", i+1))
		}

		set[i] = l
	}

	return set, nil
}

// MustAnswerSet is NewAnswerSet for literals in tests and tools.
func MustAnswerSet(values ...int) AnswerSet {
	set, err := NewAnswerSet(values)
	if err != nil {
		panic(err)
	}

	return set
}

// Answered counts statements with a valid answer.
func (a AnswerSet) Answered() int {
	n := 0
	for _, l := range a {
		if l.Valid() {
			n++
		}
	}
	return n
}

func (a AnswerSet) IsComplete() bool {
	return a.Answered() == StatementCount
}

// Unanswered returns the 1-based numbers of the statements still open.
func (a AnswerSet) Unanswered() []int {
	var numbers []int
	for i, l := range a {
		if !l.Valid() {
			numbers = append(numbers, i+1)
		}
	}
	return numbers
}

// Statement returns the answer to the 1-based statement number.
func (a AnswerSet) Statement(number int) Likert {
	if number < 1 || number > StatementCount {
		return Unanswered
	}
	return a[number-1]
}

// With returns a copy of the set with the 1-based statement answered.
func (a AnswerSet) With(number int, answer Likert) (AnswerSet, error) {
	if err := ValidateStatementNumber(number); err != nil {
		return a, err
	}

	if !answer.Valid() {
		return a, domain.NewError(errcodes.InvalidAnswer, fmt.Sprintf("invalid answer %d", answer))
	}

	a[number-1] = answer

	return a, nil
}

func (a AnswerSet) Ints() []int {
	values := make([]int, StatementCount)
	for i, l := range a {
		values[i] = int(l)
	}
	return values
}

// Key is a compact stable representation, e.g. "5,4,3,...".
func (a AnswerSet) Key() string {
	var b strings.Builder
	for i, l := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}
	return b.String()
}

func ValidateStatementNumber(number int) error {
	if number < 1 || number > StatementCount {
		return domain.NewError(
			errcodes.InvalidPosition,
			fmt.Sprintf("statement number must be between 1 and %d, got %d", StatementCount, number),
		)
	}
	return nil
}
