package server

// Server groups the HTTP handlers of every resource.
type Server struct {
	CalculatorServer
	AssessmentServer
	QuizServer
}

func NewServer(
	calculatorServer CalculatorServer,
	assessmentServer AssessmentServer,
	quizServer QuizServer,
) Server {
	return Server{
		CalculatorServer: calculatorServer,
		AssessmentServer: assessmentServer,
		QuizServer:       quizServer,
	}
}
