package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/usecase"
)

var errQuit = errors.New("quit requested")

type gameUseCase interface {
	Dispatch(ctx context.Context, cmd usecase.Command) (entity.Session, error)
	Session() entity.Session
}

type handler func(ctx context.Context, args []string) error

// Server is the terminal render surface: it reads one command per line and redraws after each.
type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	settings entity.Settings

	in  io.Reader
	out io.Writer

	handlers map[string]handler
}

func New(logger *slog.Logger, game gameUseCase, settings entity.Settings, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		game:     game,
		settings: settings,
		in:       in,
		out:      out,
		handlers: make(map[string]handler),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start renders the current session and processes input until EOF, quit or ctx cancellation.
func (that *Server) Start(ctx context.Context) error {
	// releases the reader goroutine blocked on lines once Start returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := that.render(that.game.Session()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return that.readError(readErr)
			}

			err := that.handleLine(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func (that *Server) readError(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}

// handleLine returns an error only when writing to the output fails or quit was requested.
func (that *Server) handleLine(ctx context.Context, line string) error {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	handle, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		handle = that.handleMove
	}

	err := handle(ctx, fields)
	if err == nil || errors.Is(err, errQuit) || errors.Is(err, errWrite) {
		return err
	}

	log.Debug("command rejected", "line", line, "error", err)

	return that.notice(describe(err))
}
