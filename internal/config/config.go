package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-agent/internal/service"
)

const minBoardSize = 5

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	BoardSize int     `yaml:"board-size" env:"GOMOKU_BOARD_SIZE" env-default:"15"`
	Strategy  string  `yaml:"strategy" env:"GOMOKU_STRATEGY" env-default:"smart"`
	Seed      int64   `yaml:"seed" env:"GOMOKU_SEED" env-default:"1"`
	Journal   Journal `yaml:"journal"`
}

// Journal configures the optional Redis record of played games.
type Journal struct {
	Enabled bool          `yaml:"enabled" env:"GOMOKU_JOURNAL_ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"GOMOKU_JOURNAL_TTL" env-default:"24h"`
	Redis   Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"GOMOKU_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GOMOKU_REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads config.yml when present, environment variables override it.
// The agent runs with defaults when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if !service.IsKnownStrategy(that.Strategy) {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, that.Strategy)
	}

	if that.BoardSize < minBoardSize {
		return fmt.Errorf("%w: board size %d is below %d", ErrInvalidConfig, that.BoardSize, minBoardSize)
	}

	if that.Journal.TTL < 0 {
		return fmt.Errorf("%w: negative journal ttl", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
