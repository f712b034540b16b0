package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

// Phase is the controller state seen between moves. A finished round is closed inside SubmitMove,
// so callers only ever see a running round or the end of the game.
type Phase int

const (
	PhaseInRound Phase = iota
	PhaseGameOver
)

func (that Phase) String() string {
	if that == PhaseGameOver {
		return "game-over"
	}

	return "in-round"
}

// MoveResult describes what a single accepted move did.
type MoveResult struct {
	Position entity.Position
	Mark     entity.Mark
	Outcome  entity.Outcome
	Scorer   entity.Mark
	Reset    bool
	GameOver bool
	Phase    Phase
}

// RoundController drives one session: turns, scores, round resets and the end of the game.
type RoundController struct {
	session entity.Session
}

func NewRoundController(session entity.Session) *RoundController {
	if session.Turn != entity.MarkA && session.Turn != entity.MarkB {
		session.Turn = entity.MarkA
	}

	if session.Round < 1 {
		session.Round = 1
	}

	return &RoundController{session: session}
}

// Session returns a copy of the current state.
func (that *RoundController) Session() entity.Session {
	return that.session
}

func (that *RoundController) Phase() Phase {
	if that.session.GameOver {
		return PhaseGameOver
	}

	return PhaseInRound
}

func (that *RoundController) SubmitMove(pos entity.Position) (MoveResult, error) {
	if that.session.GameOver {
		return MoveResult{}, apperror.ErrGameEnded
	}

	mark := that.session.Turn
	if err := that.session.Board.Place(pos.X, pos.Y, mark); err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	that.session.TurnCount++
	that.session.Turn = mark.Opponent()

	result := MoveResult{
		Position: pos,
		Mark:     mark,
		Outcome:  that.session.Board.Evaluate(that.session.TurnCount),
	}

	if result.Outcome.IsFinal() {
		result.Scorer = that.updateScore(result.Outcome)
		result.GameOver = that.closeRound()
		result.Reset = !result.GameOver
	}

	result.Phase = that.Phase()

	return result, nil
}

// updateScore credits a line to the player who is not about to move. The turn has already been
// flipped at this point, so that is always the player who completed the line.
func (that *RoundController) updateScore(outcome entity.Outcome) entity.Mark {
	if outcome.Kind != entity.OutcomeLine {
		return entity.Empty
	}

	scorer := that.session.Turn.Opponent()
	that.session.Score.Add(scorer)

	return scorer
}

// closeRound applies the policy to a decided round and reports whether the game ended.
func (that *RoundController) closeRound() bool {
	if that.session.Policy.Reached(that.session.Round, that.session.Score) {
		that.endGame()
		return true
	}

	that.resetRound()

	return false
}

func (that *RoundController) endGame() {
	that.session.GameOver = true

	if player := that.session.PlayerByMark(that.session.Score.Leader()); player != nil {
		that.session.Message = entity.WinMessage(player.Name)
		return
	}

	that.session.Message = entity.TieMessage
}

func (that *RoundController) resetRound() {
	that.session.Round++
	that.session.Message = entity.RoundMessage(that.session.Round)
	that.session.Turn = entity.MarkA
	that.session.TurnCount = 0
	that.session.Board.Clear()
}
