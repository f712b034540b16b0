package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseMove(board entity.Board) (entity.Position, error)
}

type randomSource interface {
	Intn(n int) int
}

type botService struct {
	rnd randomSource
}

// NewBotService returns the random computer opponent. A nil source uses a time-seeded generator.
func NewBotService(rnd randomSource) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{
		rnd: rnd,
	}
}

// ChooseMove draws random cells until it hits an empty one.
func (that *botService) ChooseMove(board entity.Board) (entity.Position, error) {
	if board.Occupied() == entity.CellCount {
		return entity.Position{}, ErrNoAvailableMoves
	}

	for {
		pos := entity.Position{
			X: that.rnd.Intn(entity.BoardSize),
			Y: that.rnd.Intn(entity.BoardSize),
		}

		if board.CellAt(pos.X, pos.Y) == entity.Empty {
			return pos, nil
		}
	}
}
