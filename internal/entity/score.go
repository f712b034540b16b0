package entity

// Score only grows within a session.
type Score struct {
	A int
	B int
}

func (that *Score) Add(mark Mark) {
	switch mark {
	case MarkA:
		that.A++
	case MarkB:
		that.B++
	}
}

// Leader returns the mark with more points, Empty on a tie.
func (that Score) Leader() Mark {
	switch {
	case that.A > that.B:
		return MarkA
	case that.B > that.A:
		return MarkB
	default:
		return Empty
	}
}
