package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/entity"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	SessionID string `yaml:"session-id" env:"SESSION_ID" env-default:"TTT_Prefs"`
	Redis     Redis  `yaml:"redis"`
	Game      Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the settings a new session starts from.
type Game struct {
	PlayerOneName string `yaml:"player-one-name" env:"PLAYER_ONE_NAME" env-default:"Player 1"`
	PlayerTwoName string `yaml:"player-two-name" env:"PLAYER_TWO_NAME" env-default:"Player 2"`
	Computer      bool   `yaml:"computer" env:"COMPUTER" env-default:"false"`
	PlayType      string `yaml:"play-type" env:"PLAY_TYPE" env-default:"infinite"`
	Principle     int    `yaml:"principle" env:"PRINCIPLE" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Settings converts the game section. A principle below one is clamped to one.
func (that *Game) Settings() (entity.Settings, error) {
	kind, err := entity.ParsePolicyKind(that.PlayType)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid play type: %w", err)
	}

	return entity.Settings{
		PlayerAName: that.PlayerOneName,
		PlayerBName: that.PlayerTwoName,
		Computer:    that.Computer,
		Policy:      entity.NewTerminationPolicy(kind, that.Principle),
	}, nil
}
