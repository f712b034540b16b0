package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

var errWrite = errors.New("failed to write output")

func (that *Server) render(session entity.Session) error {
	var sb strings.Builder

	for x := range entity.BoardSize {
		if x > 0 {
			sb.WriteString("---+---+---\n")
		}

		cells := make([]string, 0, entity.BoardSize)
		for y := range entity.BoardSize {
			symbol := session.Board.CellAt(x, y).Symbol()
			if symbol == entity.SymbolEmpty {
				symbol = " "
			}
			cells = append(cells, " "+symbol+" ")
		}
		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	fmt.Fprintf(&sb, "%s: %d   %s: %d\n", session.PlayerA.Name, session.Score.A, session.PlayerB.Name, session.Score.B)
	sb.WriteString(session.Message + "\n")

	if _, err := fmt.Fprint(that.out, sb.String()); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}

func (that *Server) notice(text string) error {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}
