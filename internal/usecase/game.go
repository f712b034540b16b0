package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/tictactoe"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is either PlaceMove or RequestNewSession.
type Command interface {
	command()
}

type PlaceMove struct {
	Position entity.Position
}

type RequestNewSession struct {
	Settings entity.Settings
}

func (PlaceMove) command()         {}
func (RequestNewSession) command() {}

type GameUseCase interface {
	Resume(ctx context.Context) entity.Session
	Suspend(ctx context.Context) error

	Dispatch(ctx context.Context, cmd Command) (entity.Session, error)
	Session() entity.Session
}

type sessionRepoDep interface {
	Save(ctx context.Context, session *entity.Session) error
	Restore(ctx context.Context, id string) (*entity.Session, error)
}

type moveSourceDep interface {
	ChooseMove(board entity.Board) (entity.Position, error)
}

type gameUseCase struct {
	logger *slog.Logger

	sessionRepo sessionRepoDep
	moveSource  moveSourceDep

	sessionID  string
	settings   entity.Settings
	controller *tictactoe.RoundController
}

// NewGameUseCase starts from the configured settings until Resume finds a session in progress.
func NewGameUseCase(
	logger *slog.Logger,
	sessionRepo sessionRepoDep,
	moveSource moveSourceDep,
	sessionID string,
	settings entity.Settings,
) GameUseCase {
	return &gameUseCase{
		logger:      logger.With("component", "game"),
		sessionRepo: sessionRepo,
		moveSource:  moveSource,
		sessionID:   sessionID,
		settings:    settings,
		controller:  tictactoe.NewRoundController(*entity.NewSession(sessionID, settings)),
	}
}

// Resume continues the stored session. Without one a session is started from the configured
// settings and stored. Read failures are logged, never returned.
func (that *gameUseCase) Resume(ctx context.Context) entity.Session {
	log := that.logger.With("method", "Resume", "sessionID", that.sessionID)

	session, err := that.sessionRepo.Restore(ctx, that.sessionID)
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		log.Info("no session in progress, starting from settings")
		return that.startSession(ctx, log)
	case err != nil || session == nil:
		log.Warn("failed to restore session, starting from settings", "error", err)
		that.controller = tictactoe.NewRoundController(*entity.NewSession(that.sessionID, that.settings))
		return that.controller.Session()
	}

	that.controller = tictactoe.NewRoundController(*session)
	log.Debug("session resumed", "round", session.Round, "turns", session.TurnCount, "gameOver", session.GameOver)

	return that.controller.Session()
}

func (that *gameUseCase) startSession(ctx context.Context, log *slog.Logger) entity.Session {
	session, err := that.newSession(ctx, that.settings)
	if err != nil {
		log.Error("failed to store started session", "error", err)
	}

	return session
}

func (that *gameUseCase) Suspend(ctx context.Context) error {
	session := that.controller.Session()

	if err := that.sessionRepo.Save(ctx, &session); err != nil {
		return fmt.Errorf("failed to suspend session: %w", err)
	}

	that.logger.Debug("session suspended", "sessionID", session.ID)

	return nil
}

func (that *gameUseCase) Session() entity.Session {
	return that.controller.Session()
}

func (that *gameUseCase) Dispatch(ctx context.Context, cmd Command) (entity.Session, error) {
	switch cmd := cmd.(type) {
	case PlaceMove:
		return that.placeMove(cmd.Position)
	case RequestNewSession:
		return that.newSession(ctx, cmd.Settings)
	default:
		return that.controller.Session(), fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (that *gameUseCase) placeMove(pos entity.Position) (entity.Session, error) {
	log := that.logger.With("method", "placeMove")

	if _, err := that.submit(log, pos); err != nil {
		return that.controller.Session(), fmt.Errorf("failed to make move: %w", err)
	}

	session := that.controller.Session()
	if that.controller.Phase() == tictactoe.PhaseInRound && session.IsComputerTurn() {
		if err := that.computerMove(log, session.Board); err != nil {
			return that.controller.Session(), fmt.Errorf("computer failed to make move: %w", err)
		}
	}

	return that.controller.Session(), nil
}

func (that *gameUseCase) computerMove(log *slog.Logger, board entity.Board) error {
	pos, err := that.moveSource.ChooseMove(board)
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	if _, err = that.submit(log.With("computer", true), pos); err != nil {
		return err
	}

	return nil
}

func (that *gameUseCase) submit(log *slog.Logger, pos entity.Position) (tictactoe.MoveResult, error) {
	result, err := that.controller.SubmitMove(pos)
	if err != nil {
		log.Debug("move rejected", "position", pos.String(), "error", err)
		return result, err
	}

	log.Debug("move accepted",
		"position", pos.String(),
		"mark", result.Mark.String(),
		"outcome", result.Outcome.String(),
		"phase", result.Phase.String(),
	)

	session := that.controller.Session()
	switch {
	case result.GameOver:
		log.Info("game over", "message", session.Message, "scoreA", session.Score.A, "scoreB", session.Score.B)
	case result.Reset:
		log.Info("round finished", "outcome", result.Outcome.String(), "next", session.Round)
	}

	return result, nil
}

// newSession replaces the running session and stores it right away.
func (that *gameUseCase) newSession(ctx context.Context, settings entity.Settings) (entity.Session, error) {
	session := entity.NewSession(that.sessionID, settings)
	that.controller = tictactoe.NewRoundController(*session)

	that.logger.Info("new session started", "policy", session.Policy.String(), "computer", session.PlayerB.IsComputer())

	if err := that.sessionRepo.Save(ctx, session); err != nil {
		return that.controller.Session(), fmt.Errorf("failed to store new session: %w", err)
	}

	return that.controller.Session(), nil
}
