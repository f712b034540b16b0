package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Position addresses a cell; X selects the row and Y the column.
type Position struct {
	X int
	Y int
}

func (that Position) IsValid() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

// WinLines is the scan order used by Evaluate: row i, column i for every i, then both diagonals.
var WinLines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board is a 3x3 grid of marks. The zero value is an empty board.
type Board struct {
	cells [BoardSize][BoardSize]Mark
}

func (that *Board) Place(x, y int, mark Mark) error {
	pos := Position{X: x, Y: y}
	if !pos.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos)
	}

	if mark != MarkA && mark != MarkB {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that.cells[x][y] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	that.cells[x][y] = mark

	return nil
}

func (that *Board) CellAt(x, y int) Mark {
	if !(Position{X: x, Y: y}).IsValid() {
		return Empty
	}

	return that.cells[x][y]
}

func (that *Board) Clear() {
	that.cells = [BoardSize][BoardSize]Mark{}
}

// Evaluate reports a completed line, a tie once turnCount reaches nine, or no outcome.
func (that *Board) Evaluate(turnCount int) Outcome {
	for _, line := range WinLines {
		a, b, c := that.at(line[0]), that.at(line[1]), that.at(line[2])
		if a != Empty && a == b && b == c {
			return LineOutcome(a)
		}
	}

	if turnCount == CellCount {
		return TieOutcome()
	}

	return NoOutcome()
}

func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, CellCount)
	for x := range BoardSize {
		for y := range BoardSize {
			if that.cells[x][y] == Empty {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}

	return cells
}

func (that *Board) Occupied() int {
	return CellCount - len(that.EmptyCells())
}

func (that *Board) at(pos Position) Mark {
	return that.cells[pos.X][pos.Y]
}
