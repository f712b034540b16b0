package entity

import (
	"fmt"
	"strings"
)

const (
	TieMessage = "TIE!"
	winSuffix  = " WINS!"
)

// Settings is the configuration a new session starts from.
type Settings struct {
	PlayerAName string
	PlayerBName string
	Computer    bool
	Policy      TerminationPolicy
}

// Session is the full game state persisted between process runs.
type Session struct {
	ID        string
	PlayerA   Player
	PlayerB   Player
	Policy    TerminationPolicy
	Board     Board
	Turn      Mark
	Round     int
	TurnCount int
	Message   string
	Score     Score
	GameOver  bool
}

// NewSession builds round one of a fresh session. Computer opponents are always named ComputerName.
func NewSession(id string, settings Settings) *Session {
	nameA := strings.TrimSpace(settings.PlayerAName)
	if nameA == "" {
		nameA = DefaultPlayerAName
	}

	nameB := strings.TrimSpace(settings.PlayerBName)
	if nameB == "" {
		nameB = DefaultPlayerBName
	}
	if settings.Computer {
		nameB = ComputerName
	}

	return &Session{
		ID:      id,
		PlayerA: Player{Name: nameA, Mark: MarkA},
		PlayerB: Player{Name: nameB, Mark: MarkB, Computer: settings.Computer},
		Policy:  NewTerminationPolicy(settings.Policy.Kind, settings.Policy.Threshold),
		Turn:    MarkA,
		Round:   1,
		Message: RoundMessage(1),
	}
}

// DefaultSession holds the per-field defaults a stored snapshot is decoded on top of.
func DefaultSession(id string) *Session {
	return NewSession(id, Settings{Policy: Infinite()})
}

func RoundMessage(round int) string {
	return fmt.Sprintf("Round %d", round)
}

func WinMessage(name string) string {
	return name + winSuffix
}

func (that *Session) PlayerByMark(mark Mark) *Player {
	switch mark {
	case MarkA:
		return &that.PlayerA
	case MarkB:
		return &that.PlayerB
	default:
		return nil
	}
}

// IsComputerTurn reports whether the computer holds the turn inside a round that is already open.
// A freshly reset round always starts with player A.
func (that *Session) IsComputerTurn() bool {
	return that.PlayerB.IsComputer() && that.Turn == MarkB && that.TurnCount != 0
}
