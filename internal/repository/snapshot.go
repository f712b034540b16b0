package repository

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

// Field names of the persisted snapshot. They match the keys the game has always written.
const (
	fieldNewGame     = "newGame"
	fieldPlayerATurn = "p1Turn"
	fieldPlayerAName = "p1Name"
	fieldPlayerAPts  = "p1Points"
	fieldPlayerBName = "p2Name"
	fieldPlayerBPts  = "p2Points"
	fieldMessage     = "message"
	fieldRounds      = "roundNumber"
	fieldTurns       = "turnNumber"
	fieldPlayType    = "playType"
	fieldPrinciple   = "principle"
	fieldComputer    = "isComputer"
	fieldGameOver    = "gameOver"
)

func cellField(x, y int) string {
	return fmt.Sprintf("button%d%d", x, y)
}

// encodeSnapshot flattens a session. roundNumber stores completed rounds, so it is Round-1.
func encodeSnapshot(session *entity.Session) map[string]any {
	fields := map[string]any{
		fieldNewGame:     strconv.FormatBool(true),
		fieldPlayerATurn: strconv.FormatBool(session.Turn != entity.MarkB),
		fieldPlayerAName: session.PlayerA.Name,
		fieldPlayerAPts:  strconv.Itoa(session.Score.A),
		fieldPlayerBName: session.PlayerB.Name,
		fieldPlayerBPts:  strconv.Itoa(session.Score.B),
		fieldMessage:     session.Message,
		fieldRounds:      strconv.Itoa(max(session.Round-1, 0)),
		fieldTurns:       strconv.Itoa(session.TurnCount),
		fieldPlayType:    strconv.Itoa(int(session.Policy.Kind)),
		fieldPrinciple:   strconv.Itoa(session.Policy.Threshold),
		fieldComputer:    strconv.FormatBool(session.PlayerB.IsComputer()),
		fieldGameOver:    strconv.FormatBool(session.GameOver),
	}

	for x := range entity.BoardSize {
		for y := range entity.BoardSize {
			fields[cellField(x, y)] = session.Board.CellAt(x, y).Symbol()
		}
	}

	return fields
}

// inProgress reports whether the snapshot holds a started session. A missing or broken newGame
// field means the player has not started one yet.
func inProgress(fields map[string]string) bool {
	started, _ := parseBool(fields, fieldNewGame)
	return started
}

// decodeSnapshot never fails: every missing or malformed field keeps its default.
func decodeSnapshot(id string, fields map[string]string) *entity.Session {
	session := entity.DefaultSession(id)

	if turnA, ok := parseBool(fields, fieldPlayerATurn); ok && !turnA {
		session.Turn = entity.MarkB
	}

	if name := fields[fieldPlayerAName]; name != "" {
		session.PlayerA.Name = name
	}
	if name := fields[fieldPlayerBName]; name != "" {
		session.PlayerB.Name = name
	}

	if points, ok := parseCount(fields, fieldPlayerAPts); ok {
		session.Score.A = points
	}
	if points, ok := parseCount(fields, fieldPlayerBPts); ok {
		session.Score.B = points
	}

	if rounds, ok := parseCount(fields, fieldRounds); ok {
		session.Round = rounds + 1
	}

	kind, _ := parseCount(fields, fieldPlayType)
	threshold, _ := parseCount(fields, fieldPrinciple)
	session.Policy = entity.NewTerminationPolicy(entity.PolicyKind(kind), threshold)

	computer, ok := parseBool(fields, fieldComputer)
	if !ok {
		computer = session.PlayerB.Name == entity.ComputerName
	}
	session.PlayerB.Computer = computer

	if over, ok := parseBool(fields, fieldGameOver); ok {
		session.GameOver = over
	}

	for x := range entity.BoardSize {
		for y := range entity.BoardSize {
			if mark := entity.ParseMark(fields[cellField(x, y)]); mark != entity.Empty {
				_ = session.Board.Place(x, y, mark)
			}
		}
	}

	// turnNumber is written for compatibility, the board decides how many turns were played
	session.TurnCount = session.Board.Occupied()

	if message, ok := fields[fieldMessage]; ok {
		session.Message = message
	} else {
		session.Message = entity.RoundMessage(session.Round)
	}

	return session
}

func parseBool(fields map[string]string, key string) (bool, bool) {
	raw, ok := fields[key]
	if !ok {
		return false, false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return value, true
}

func parseCount(fields map[string]string, key string) (int, bool) {
	raw, ok := fields[key]
	if !ok {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}

	return value, true
}
