package entity

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeLine
	OutcomeTie
)

// Outcome is the result of evaluating a board after a move.
type Outcome struct {
	Kind OutcomeKind
	Mark Mark
}

func NoOutcome() Outcome {
	return Outcome{Kind: OutcomeNone}
}

func LineOutcome(mark Mark) Outcome {
	return Outcome{Kind: OutcomeLine, Mark: mark}
}

func TieOutcome() Outcome {
	return Outcome{Kind: OutcomeTie}
}

// IsFinal reports whether the round is over.
func (that Outcome) IsFinal() bool {
	return that.Kind != OutcomeNone
}

func (that Outcome) String() string {
	switch that.Kind {
	case OutcomeLine:
		return "line:" + that.Mark.String()
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}
