package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/2yum7/forword/pkg/draft"
)

// ErrNoConfig is returned when a nil Config reaches a function that needs one.
var ErrNoConfig = errors.New("store: no config")

type Config interface {
	BasePath() string
	AutosaveInterval() time.Duration
	LogLevel() string
	LogFile() string
	// ConfigFile is the file the settings were read from, if any.
	ConfigFile() string
}

func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.forword.db")
	v.SetDefault("autosave_interval", draft.DefaultAutosaveInterval.String())
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetConfigName(".forword") // .yaml is implicit
	v.SetEnvPrefix("FORWORD")
	v.AutomaticEnv()

	if override := os.Getenv("FORWORD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(strings.TrimSpace(v.GetString("path")))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	interval := v.GetDuration("autosave_interval")
	if interval <= 0 {
		interval = draft.DefaultAutosaveInterval
	}

	logFile := strings.TrimSpace(v.GetString("log_file"))
	if logFile != "" {
		if logFile, err = homedir.Expand(logFile); err != nil {
			return nil, fmt.Errorf("store: expand log_file: %w", err)
		}
	}

	return &fileConfig{
		Path:     path,
		Interval: interval,
		Level:    v.GetString("log_level"),
		Log:      logFile,
		File:     v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path     string        `json:"path"`
	Interval time.Duration `json:"autosave_interval"`
	Level    string        `json:"log_level"`
	Log      string        `json:"log_file"`
	File     string        `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) AutosaveInterval() time.Duration {
	return f.Interval
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFile() string {
	return f.Log
}

func (f *fileConfig) ConfigFile() string {
	return f.File
}
