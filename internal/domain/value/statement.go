package value

// Statement is one item of the personality questionnaire.
type Statement struct {
	Number int
	Text   string
}

//nolint:gochecknoglobals
var statements = [StatementCount]string{
	"I enjoy finding patterns and trends in numbers and data.",
	"I like organizing tasks and making plans for a team.",
	"I pay attention to how things look and feel when I use an app or website.",
	"I am comfortable taking responsibility for deadlines and deliverables.",
	"I enjoy figuring out how systems work behind the scenes.",
	"I like turning complex information into something clear and easy to understand.",
	"I enjoy sketching, drawing or designing layouts.",
	"I like using statistics or experiments to answer questions.",
	"I enjoy coordinating people and helping a group agree on decisions.",
	"I like writing logic that processes and stores information reliably.",
	"I think about how other people will experience a product.",
	"I prefer seeing the big picture over polishing small details.",
	"I enjoy debugging a problem until I find its root cause.",
	"I like working with databases and large amounts of information.",
	"I enjoy experimenting with colors, fonts and visual styles.",
}

// Statements returns the questionnaire in presentation order.
func Statements() []Statement {
	result := make([]Statement, 0, StatementCount)
	for i, text := range statements {
		result = append(result, Statement{Number: i + 1, Text: text})
	}
	return result
}
