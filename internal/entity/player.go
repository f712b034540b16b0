package entity

const (
	DefaultPlayerAName = "Player 1"
	DefaultPlayerBName = "Player 2"
	ComputerName       = "Computer"
)

type Player struct {
	Name     string
	Mark     Mark
	Computer bool
}

func (that *Player) IsComputer() bool {
	return that.Computer
}
