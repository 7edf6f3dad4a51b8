package entity

// CareerAreaScore is the unweighted sum of the answers assigned to an area.
type CareerAreaScore struct {
	Area  CareerArea `json:"area"`
	Score int        `json:"score"`
}

// RankedResult holds the best scoring area and, when it is close enough,
// the runner-up. It never has fewer than one or more than two entries.
type RankedResult struct {
	Areas []CareerAreaScore `json:"areas"`
}

func (r RankedResult) Top() CareerAreaScore {
	if len(r.Areas) == 0 {
		return CareerAreaScore{}
	}
	return r.Areas[0]
}

// RunnerUp reports the second recommendation if there is one.
func (r RankedResult) RunnerUp() (CareerAreaScore, bool) {
	if len(r.Areas) < 2 {
		return CareerAreaScore{}, false
	}
	return r.Areas[1], true
}
