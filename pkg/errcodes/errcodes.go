package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidUserID       failure.ErrorCode = "InvalidUserID"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Personality test.
	IncompleteAnswers    failure.ErrorCode = "IncompleteAnswers"
	InvalidAnswer        failure.ErrorCode = "InvalidAnswer"
	InvalidPosition      failure.ErrorCode = "InvalidPosition"
	InvalidAssessmentID  failure.ErrorCode = "InvalidAssessmentID"
	AssessmentNotFound   failure.ErrorCode = "AssessmentNotFound"
	InvalidQuizSessionID failure.ErrorCode = "InvalidQuizSessionID"
	QuizSessionNotFound  failure.ErrorCode = "QuizSessionNotFound"
	QuizSessionConflict  failure.ErrorCode = "QuizSessionConflict"

	// Remote scoring API.
	ScoringUnavailable failure.ErrorCode = "ScoringUnavailable"
	ScoringMalformed   failure.ErrorCode = "ScoringMalformed"
)
