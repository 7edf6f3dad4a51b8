// Package rest holds the wire models of the public HTTP API.
package rest

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	// Code is a stable machine readable error code.
	Code ErrorCode `json:"code"`

	// Message can be shown to the user.
	Message string `json:"message"`

	// SupportID is the trace id of the failed request.
	SupportID string `json:"supportId"`
}

type ErrorCode string

type Statement struct {
	Number int      `json:"number"`
	Text   string   `json:"text"`
	Areas  []string `json:"areas"`
}

type LikertOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type StatementCatalog struct {
	Statements []Statement    `json:"statements"`
	Scale      []LikertOption `json:"scale"`
}

// AnswersRequest carries the answers in statement order. Zero marks an
// unanswered statement; missing trailing values are unanswered too.
type AnswersRequest struct {
	Answers []int `json:"answers" validate:"required,max=15,dive,min=0,max=5"`
}

type CareerAreaScore struct {
	Area  string `json:"area"`
	Score int    `json:"score"`
}

type CareerScores struct {
	Results []CareerAreaScore `json:"results"`
}

// CareerScoreBreakdown also exposes every area score before ranking.
type CareerScoreBreakdown struct {
	Results   []CareerAreaScore `json:"results"`
	Breakdown []CareerAreaScore `json:"breakdown"`
}

type Assessment struct {
	ID        string            `json:"id"`
	Answers   []int             `json:"answers"`
	Results   []CareerAreaScore `json:"results"`
	Source    string            `json:"source"`
	CreatedAt time.Time         `json:"createdAt"`
}

type AssessmentList struct {
	Items  []Assessment `json:"items"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type QuizSession struct {
	ID         string    `json:"id"`
	Cursor     int       `json:"cursor"`
	Answers    []int     `json:"answers"`
	Unanswered []int     `json:"unanswered"`
	Progress   int       `json:"progress"`
	Complete   bool      `json:"complete"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AnswerRequest struct {
	Answer int `json:"answer" validate:"min=1,max=5"`
}

type CursorRequest struct {
	Cursor *int `json:"cursor" validate:"required,min=0,max=14"`
}
