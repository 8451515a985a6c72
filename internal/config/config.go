package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Console  Console `yaml:"console"`
}

type Console struct {
	ShowHelp        bool `yaml:"show-help" env:"TICTACTOE_SHOW_HELP"`
	ShowCoordinates bool `yaml:"show-coordinates" env:"TICTACTOE_SHOW_COORDINATES"`
}

// defaults for fields whose zero value is a valid setting; env-default cannot
// tell an explicit false from an unset field.
func defaults() *Config {
	return &Config{
		Console: Console{
			ShowHelp:        true,
			ShowCoordinates: true,
		},
	}
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := defaults()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
