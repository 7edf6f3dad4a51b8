package handler

import (
	"fmt"
	"strconv"
	"strings"

	"neetup/internal/domain"
	"neetup/internal/domain/value"
	"neetup/pkg/errcodes"
)

// commandArgs drops the command itself, "/score@bot 1 2" gives ["1", "2"].
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return nil
	}

	return fields[1:]
}

// parseAnswers accepts answers separated by spaces or commas.
func parseAnswers(args []string) (value.AnswerSet, error) {
	raw := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ' ' || r == ','
	})

	values := make([]int, 0, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return value.AnswerSet{}, domain.WrapError(
				err,
				errcodes.InvalidAnswer,
				fmt.Sprintf("statement %d: %q is not a number", i+1, s),
			)
		}
		values = append(values, v)
	}

	answers, err := value.NewAnswerSet(values)
	if err != nil {
		return value.AnswerSet{}, fmt.Errorf("value.NewAnswerSet: %w", err)
	}

	return answers, nil
}
