package value

import (
	"fmt"

	"neetup/internal/domain"
	"neetup/pkg/errcodes"
)

// Likert is an agreement level on the 1..5 scale. Zero means the statement
// has not been answered yet.
type Likert int

const (
	Unanswered Likert = iota
	StronglyDisagree
	Disagree
	Neutral
	Agree
	StronglyAgree
)

//nolint:gochecknoglobals
var likertLabels = map[Likert]string{
	StronglyDisagree: "Strongly Disagree",
	Disagree:         "Disagree",
	Neutral:          "Neutral",
	Agree:            "Agree",
	StronglyAgree:    "Strongly Agree",
}

// ParseLikert accepts only answered levels.
func ParseLikert(v int) (Likert, error) {
	l := Likert(v)
	if !l.Valid() {
		return Unanswered, domain.NewError(
			errcodes.InvalidAnswer,
			fmt.Sprintf("answer must be between %d and %d, got %d", StronglyDisagree, StronglyAgree, v),
		)
	}

	return l, nil
}

func (l Likert) Valid() bool {
	return l >= StronglyDisagree && l <= StronglyAgree
}

func (l Likert) Label() string {
	if label, ok := likertLabels[l]; ok {
		return label
	}
	return "Unanswered"
}

// LikertScale lists the answer options in ascending order.
func LikertScale() []Likert {
	return []Likert{StronglyDisagree, Disagree, Neutral, Agree, StronglyAgree}
}
