// Package view renders the advisor bot replies as Telegram HTML.
package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"neetup/internal/domain/entity"
	"neetup/internal/domain/value"
)

const StartMessage = `👋 <b>NeetUp advisor bot</b>

/statements - questionnaire statements
/score <code>a1 … a15</code> - rank 15 answers (1..5)
/assessment <code>id</code> - show a stored assessment
/history <code>user-id</code> - latest assessments of a user`

const (
	ScoreUsage         = "❌ Usage: /score <code>a1 … a15</code>, each answer from 1 to 5"
	AssessmentUsage    = "❌ Usage: /assessment <code>id</code>"
	HistoryUsage       = "❌ Usage: /history <code>user-id</code>"
	AssessmentNotFound = "⚠️ Assessment not found"
	InternalError      = "⚠️ Something went wrong, try again later"
)

// Invalid echoes a validation message back to the advisor.
func Invalid(message string) string {
	return "❌ " + html.EscapeString(message)
}

func Statements(statements []value.Statement) string {
	var sb strings.Builder

	sb.WriteString("📝 <b>Statements</b>\n")

	for _, s := range statements {
		fmt.Fprintf(&sb, "\n%d. %s", s.Number, html.EscapeString(s.Text))
	}

	sb.WriteString("\n\n")

	labels := make([]string, 0, len(value.LikertScale()))
	for _, l := range value.LikertScale() {
		labels = append(labels, fmt.Sprintf("%d %s", l, l.Label()))
	}

	fmt.Fprintf(&sb, "<i>%s</i>", html.EscapeString(strings.Join(labels, " · ")))

	return sb.String()
}

// Score renders a ranked result followed by every area score.
func Score(result entity.RankedResult, breakdown []entity.CareerAreaScore) string {
	var sb strings.Builder

	writeRecommendation(&sb, result)

	sb.WriteString("\n<b>All areas:</b>\n")

	for _, s := range breakdown {
		fmt.Fprintf(&sb, "• %s: %d\n", html.EscapeString(s.Area.String()), s.Score)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func Assessment(assessment *entity.Assessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🆔 <code>%s</code>\n", html.EscapeString(assessment.ID.String()))
	fmt.Fprintf(&sb, "👤 <code>%s</code>\n", html.EscapeString(assessment.UserID.String()))
	fmt.Fprintf(&sb, "🗓 %s\n\n", assessment.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))

	writeRecommendation(&sb, assessment.Result)

	fmt.Fprintf(&sb, "\n<b>Answers:</b> <code>%s</code>\n", joinInts(assessment.Answers.Ints()))
	fmt.Fprintf(&sb, "<b>Scored:</b> %s", assessment.Source)

	return sb.String()
}

// History lists assessments newest first, one line each.
func History(userID value.UserID, assessments []entity.Assessment) string {
	if len(assessments) == 0 {
		return fmt.Sprintf("📭 No assessments for <code>%s</code>", html.EscapeString(userID.String()))
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "📚 <b>Assessments of</b> <code>%s</code>\n", html.EscapeString(userID.String()))

	for _, a := range assessments {
		top := a.Result.Top()
		fmt.Fprintf(&sb, "\n%s · %s (%d) · <code>%s</code>",
			a.CreatedAt.UTC().Format("2006-01-02"),
			html.EscapeString(top.Area.String()),
			top.Score,
			html.EscapeString(a.ID.String()),
		)
	}

	return sb.String()
}

func writeRecommendation(sb *strings.Builder, result entity.RankedResult) {
	top := result.Top()
	fmt.Fprintf(sb, "🏆 <b>Recommended:</b> %s (%d)\n", html.EscapeString(top.Area.String()), top.Score)

	if runnerUp, ok := result.RunnerUp(); ok {
		fmt.Fprintf(sb, "🥈 <b>Also close:</b> %s (%d)\n", html.EscapeString(runnerUp.Area.String()), runnerUp.Score)
	}
}

func joinInts(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string { return strconv.Itoa(v) }), " ")
}
