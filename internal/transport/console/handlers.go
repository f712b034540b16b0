package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/usecase"
)

var errBadInput = errors.New("expected a move as \"row column\", \"new\" or \"quit\"")

func (that *Server) handleMove(ctx context.Context, args []string) error {
	pos, err := parsePosition(args)
	if err != nil {
		return err
	}

	session, err := that.game.Dispatch(ctx, usecase.PlaceMove{Position: pos})
	if err != nil {
		return fmt.Errorf("failed to place move: %w", err)
	}

	return that.render(session)
}

func (that *Server) handleNewGame(ctx context.Context, _ []string) error {
	session, err := that.game.Dispatch(ctx, usecase.RequestNewSession{Settings: that.settings})
	if err != nil {
		that.logger.Error("failed to store new session", "error", err)
	}

	return that.render(session)
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

func parsePosition(args []string) (entity.Position, error) {
	if len(args) != 2 {
		return entity.Position{}, errBadInput
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return entity.Position{}, errBadInput
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return entity.Position{}, errBadInput
	}

	return entity.Position{X: x, Y: y}, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is taken, pick another one"
	case errors.Is(err, apperror.ErrGameEnded):
		return "the game is over, type \"new\" to play again"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "row and column must be between 0 and 2"
	case errors.Is(err, errBadInput):
		return errBadInput.Error()
	default:
		return "something went wrong, try again"
	}
}
