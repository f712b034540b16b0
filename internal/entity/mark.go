package entity

// Mark is the content of a single board cell.
type Mark int

const (
	Empty Mark = iota
	MarkA
	MarkB
)

const (
	SymbolA     = "O"
	SymbolB     = "X"
	SymbolEmpty = ""
)

// Symbol returns the persisted representation of the mark.
func (that Mark) Symbol() string {
	switch that {
	case MarkA:
		return SymbolA
	case MarkB:
		return SymbolB
	default:
		return SymbolEmpty
	}
}

func (that Mark) String() string {
	switch that {
	case MarkA:
		return "A"
	case MarkB:
		return "B"
	default:
		return "empty"
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

// ParseMark is the inverse of Symbol. Unknown symbols read as Empty.
func ParseMark(symbol string) Mark {
	switch symbol {
	case SymbolA:
		return MarkA
	case SymbolB:
		return MarkB
	default:
		return Empty
	}
}
