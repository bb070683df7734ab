package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const kDefaultConfigFile = "moon.yaml"

type HistoryConfig struct {
	/// Journal database; empty disables the journal.
	Path          string        `yaml:"path"`
	Expire        time.Duration `yaml:"expire"`
	CleanInterval time.Duration `yaml:"clean_interval"`
}

type PlaygroundConfig struct {
	Addr    string        `yaml:"addr"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	RequiredVersion    string           `yaml:"required_version"`
	Color              string           `yaml:"color"`
	Prompt             string           `yaml:"prompt"`
	ContinuationPrompt string           `yaml:"continuation_prompt"`
	History            HistoryConfig    `yaml:"history"`
	Playground         PlaygroundConfig `yaml:"playground"`
}

func DefaultConfig() *Config {
	ret := Config{}
	ret.Color = "auto"
	ret.Prompt = ">>> "
	ret.ContinuationPrompt = "... "
	ret.History.Expire = 30 * 24 * time.Hour
	ret.History.CleanInterval = 5 * time.Minute
	ret.Playground.Addr = "localhost:8080"
	ret.Playground.Timeout = 5 * time.Second
	return &ret
}

// / ParseConfig overlays YAML data on the defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (this *Config) Validate() error {
	switch this.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, not %q", this.Color)
	}
	if this.History.Expire <= 0 {
		return errors.New("history.expire must be positive")
	}
	if this.History.CleanInterval <= 0 {
		return errors.New("history.clean_interval must be positive")
	}
	if this.Playground.Timeout <= 0 {
		return errors.New("playground.timeout must be positive")
	}
	if this.RequiredVersion != "" {
		return CheckMoonVersion(this.RequiredVersion)
	}
	return nil
}

// / LoadConfig reads path, or $MOON_CONFIG, or ./moon.yaml. Only an
// / explicitly named file has to exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("MOON_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = kDefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}
