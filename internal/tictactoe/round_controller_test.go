package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// A completes row 0.
	rowForA = []entity.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	// B completes row 1.
	rowForB = []entity.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	// Fills the board without a line.
	fullTie = []entity.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 2}}
)

func newController(policy entity.TerminationPolicy) *RoundController {
	return NewRoundController(*entity.NewSession("test", entity.Settings{
		PlayerAName: "Alice",
		PlayerBName: "Bob",
		Policy:      policy,
	}))
}

// play submits the moves and returns the result of the last one.
func play(t *testing.T, controller *RoundController, moves []entity.Position) MoveResult {
	t.Helper()

	var result MoveResult
	for _, pos := range moves {
		var err error
		result, err = controller.SubmitMove(pos)
		require.NoError(t, err, pos.String())
	}

	return result
}

func TestNewRoundController(t *testing.T) {
	// Given: a controller for a fresh session
	controller := newController(entity.Infinite())

	// Then: it starts in round one, empty board, A to move
	session := controller.Session()
	assert.Equal(t, PhaseInRound, controller.Phase())
	assert.Equal(t, 1, session.Round)
	assert.Equal(t, 0, session.TurnCount)
	assert.Equal(t, entity.MarkA, session.Turn)
	assert.Equal(t, "Round 1", session.Message)
	assert.Equal(t, 0, session.Board.Occupied())
}

func TestNewRoundController_NormalizesBrokenState(t *testing.T) {
	controller := NewRoundController(entity.Session{})

	session := controller.Session()
	assert.Equal(t, entity.MarkA, session.Turn)
	assert.Equal(t, 1, session.Round)
}

func TestRoundController_SubmitMove(t *testing.T) {
	t.Run("Accepted move flips the turn", func(t *testing.T) {
		// Given: a fresh controller
		controller := newController(entity.Infinite())

		// When: A plays the center
		result, err := controller.SubmitMove(entity.Position{X: 1, Y: 1})

		// Then: the mark is placed and B is next
		require.NoError(t, err)
		session := controller.Session()
		assert.Equal(t, entity.MarkA, result.Mark)
		assert.Equal(t, entity.NoOutcome(), result.Outcome)
		assert.False(t, result.Reset)
		assert.Equal(t, PhaseInRound, result.Phase)
		assert.Equal(t, entity.MarkA, session.Board.CellAt(1, 1))
		assert.Equal(t, entity.MarkB, session.Turn)
		assert.Equal(t, 1, session.TurnCount)
	})

	t.Run("Error on cell already occupied leaves state unchanged", func(t *testing.T) {
		// Given: A has played the center
		controller := newController(entity.Infinite())
		play(t, controller, []entity.Position{{X: 1, Y: 1}})
		before := controller.Session()

		// When: B tries the same cell
		_, err := controller.SubmitMove(entity.Position{X: 1, Y: 1})

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, controller.Session())

		// And: B can retry on another cell
		result, err := controller.SubmitMove(entity.Position{X: 0, Y: 0})
		require.NoError(t, err)
		assert.Equal(t, entity.MarkB, result.Mark)
	})

	t.Run("Error on invalid position leaves state unchanged", func(t *testing.T) {
		controller := newController(entity.Infinite())
		before := controller.Session()

		_, err := controller.SubmitMove(entity.Position{X: 3, Y: -1})

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, before, controller.Session())
	})
}

func TestRoundController_InfinitePolicy(t *testing.T) {
	t.Run("Line for A scores A and resets to round 2", func(t *testing.T) {
		// Given: an infinite session
		controller := newController(entity.Infinite())

		// When: A completes row 0
		result := play(t, controller, rowForA)

		// Then: A scores and the board is reset for round 2
		session := controller.Session()
		assert.Equal(t, entity.LineOutcome(entity.MarkA), result.Outcome)
		assert.Equal(t, entity.MarkA, result.Scorer)
		assert.True(t, result.Reset)
		assert.False(t, result.GameOver)

		assert.Equal(t, entity.Score{A: 1}, session.Score)
		assert.Equal(t, 2, session.Round)
		assert.Equal(t, "Round 2", session.Message)
		assert.Equal(t, 0, session.TurnCount)
		assert.Equal(t, entity.MarkA, session.Turn)
		assert.Equal(t, entity.Board{}, session.Board)
		assert.Equal(t, PhaseInRound, controller.Phase())
	})

	t.Run("Tie changes no score and resets", func(t *testing.T) {
		// Given: an infinite session
		controller := newController(entity.Infinite())

		// When: nine moves fill the board without a line
		result := play(t, controller, fullTie)

		// Then: it is a tie, nobody scores, the board is reset
		session := controller.Session()
		assert.Equal(t, entity.TieOutcome(), result.Outcome)
		assert.Equal(t, entity.Empty, result.Scorer)
		assert.True(t, result.Reset)
		assert.Equal(t, entity.Score{}, session.Score)
		assert.Equal(t, 2, session.Round)
		assert.Equal(t, 0, session.TurnCount)
		assert.Equal(t, 0, session.Board.Occupied())
	})

	t.Run("Reset happens regardless of board content", func(t *testing.T) {
		controller := newController(entity.Infinite())

		for round := 2; round <= 5; round++ {
			play(t, controller, rowForB)

			session := controller.Session()
			assert.Equal(t, round, session.Round)
			assert.Equal(t, entity.RoundMessage(round), session.Message)
			assert.Len(t, session.Board.EmptyCells(), entity.CellCount)
			assert.Equal(t, 0, session.TurnCount)
		}
		assert.Equal(t, entity.Score{B: 4}, controller.Session().Score)
	})
}

// The turn pointer has already moved on when the outcome is evaluated: the scorer is the player who
// is NOT about to move next.
func TestRoundController_ScorerIsThePlayerNotAboutToMove(t *testing.T) {
	t.Run("B completes a line", func(t *testing.T) {
		// Given: a session where B is about to complete row 1
		controller := newController(entity.Infinite())
		play(t, controller, rowForB[:len(rowForB)-1])
		require.Equal(t, entity.MarkB, controller.Session().Turn)

		// When: B completes the line, the turn flips to A before evaluation
		result := play(t, controller, rowForB[len(rowForB)-1:])

		// Then: B, the player not about to move, scores
		assert.Equal(t, entity.MarkB, result.Mark)
		assert.Equal(t, entity.MarkB, result.Scorer)
		assert.Equal(t, entity.Score{B: 1}, controller.Session().Score)
	})

	t.Run("A completes a line", func(t *testing.T) {
		controller := newController(entity.Infinite())

		result := play(t, controller, rowForA)

		assert.Equal(t, entity.MarkA, result.Scorer)
		assert.Equal(t, entity.Score{A: 1}, controller.Session().Score)
	})
}

func TestRoundController_BestOfRounds(t *testing.T) {
	t.Run("Game ends after round 3 with the higher score winning", func(t *testing.T) {
		// Given: a best of 3 session
		controller := newController(entity.BestOfRounds(3))

		// When: A, B, A win the three rounds
		play(t, controller, rowForA)
		play(t, controller, rowForB)
		assert.Equal(t, PhaseInRound, controller.Phase())
		result := play(t, controller, rowForA)

		// Then: the game is over and Alice wins
		session := controller.Session()
		assert.True(t, result.GameOver)
		assert.False(t, result.Reset)
		assert.Equal(t, PhaseGameOver, result.Phase)
		assert.Equal(t, PhaseGameOver, controller.Phase())
		assert.True(t, session.GameOver)
		assert.Equal(t, entity.Score{A: 2, B: 1}, session.Score)
		assert.Equal(t, "Alice WINS!", session.Message)
		assert.Equal(t, 3, session.Round)
	})

	t.Run("Tie in the last round still ends the game", func(t *testing.T) {
		controller := newController(entity.BestOfRounds(3))

		play(t, controller, rowForA)
		play(t, controller, rowForB)
		result := play(t, controller, fullTie)

		session := controller.Session()
		assert.True(t, result.GameOver)
		assert.Equal(t, entity.Score{A: 1, B: 1}, session.Score)
		assert.Equal(t, entity.TieMessage, session.Message)
	})

	t.Run("Ties only count rounds", func(t *testing.T) {
		controller := newController(entity.BestOfRounds(3))

		play(t, controller, fullTie)
		play(t, controller, fullTie)
		assert.Equal(t, 3, controller.Session().Round)
		play(t, controller, rowForB)

		session := controller.Session()
		assert.True(t, session.GameOver)
		assert.Equal(t, "Bob WINS!", session.Message)
	})

	t.Run("Best of one ends after the first round", func(t *testing.T) {
		controller := newController(entity.BestOfRounds(0))

		result := play(t, controller, rowForB)

		assert.True(t, result.GameOver)
		assert.Equal(t, "Bob WINS!", controller.Session().Message)
	})
}

func TestRoundController_FirstToPoints(t *testing.T) {
	t.Run("Game ends as soon as a score reaches the threshold", func(t *testing.T) {
		// Given: a first to 2 session
		controller := newController(entity.FirstToPoints(2))

		// When: A wins the first two rounds
		play(t, controller, rowForA)
		result := play(t, controller, rowForA)

		// Then: the game ends in round 2
		session := controller.Session()
		assert.True(t, result.GameOver)
		assert.Equal(t, 2, session.Round)
		assert.Equal(t, entity.Score{A: 2}, session.Score)
		assert.Equal(t, "Alice WINS!", session.Message)
	})

	t.Run("Ties never end the game", func(t *testing.T) {
		controller := newController(entity.FirstToPoints(2))

		play(t, controller, rowForB)
		for range 4 {
			result := play(t, controller, fullTie)
			assert.False(t, result.GameOver)
		}
		play(t, controller, rowForB)

		session := controller.Session()
		assert.True(t, session.GameOver)
		assert.Equal(t, 6, session.Round)
		assert.Equal(t, "Bob WINS!", session.Message)
	})
}

func TestRoundController_GameOverIsTerminal(t *testing.T) {
	// Given: a finished game
	controller := newController(entity.FirstToPoints(1))
	play(t, controller, rowForA)
	before := controller.Session()
	require.True(t, before.GameOver)

	// When: another move is submitted
	_, err := controller.SubmitMove(entity.Position{X: 2, Y: 2})

	// Then: ErrGameEnded is returned and nothing changed
	require.ErrorIs(t, err, apperror.ErrGameEnded)
	assert.Equal(t, before, controller.Session())
	assert.Equal(t, PhaseGameOver, controller.Phase())
}

func TestRoundController_SessionIsACopy(t *testing.T) {
	controller := newController(entity.Infinite())

	session := controller.Session()
	require.NoError(t, session.Board.Place(0, 0, entity.MarkB))

	fresh := controller.Session()
	assert.Equal(t, entity.Empty, fresh.Board.CellAt(0, 0))
}
