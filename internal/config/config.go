package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Default file names, relative to the repository root the tool runs in.
const (
	DefaultWorkerName = "claude-print"
	DefaultMainPath   = "./cmd/claude-print"
	DefaultDistDir    = "dist"
	DefaultPIDFile    = ".claude-print.pid"
	DefaultLogFile    = ".claude-print.log"
)

// DefaultStripEnv is removed from the worker's environment before launch.
// If the worker sees it, it believes it is running under the tool it wraps
// and degrades into non-interactive mode.
const DefaultStripEnv = "CLAUDECODE"

// Settings describes everything the supervisor needs: file locations for the
// single tracked instance, worker identity, and the lifecycle timeouts.
type Settings struct {
	WorkerName   string        `mapstructure:"worker_name"`
	MainPath     string        `mapstructure:"main_path"`
	DistDir      string        `mapstructure:"dist_dir"`
	PIDFile      string        `mapstructure:"pid_file"`
	LogFile      string        `mapstructure:"log_file"`
	StripEnv     string        `mapstructure:"strip_env"`
	SettleDelay  time.Duration `mapstructure:"settle_delay"`
	TermTimeout  time.Duration `mapstructure:"term_timeout"`
	KillTimeout  time.Duration `mapstructure:"kill_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Default returns the built-in settings used when no config file is present.
func Default() Settings {
	return Settings{
		WorkerName:   DefaultWorkerName,
		MainPath:     DefaultMainPath,
		DistDir:      DefaultDistDir,
		PIDFile:      DefaultPIDFile,
		LogFile:      DefaultLogFile,
		StripEnv:     DefaultStripEnv,
		SettleDelay:  2 * time.Second,
		TermTimeout:  10 * time.Second,
		KillTimeout:  5 * time.Second,
		PollInterval: 100 * time.Millisecond,
	}
}

// Load reads settings from the given TOML file path, falling back to
// .cpctl.toml in the working directory when path is empty. A missing config
// file is not an error; defaults apply. Environment variables prefixed with
// CPCTL_ override file values.
func Load(path string) (Settings, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("worker_name", d.WorkerName)
	v.SetDefault("main_path", d.MainPath)
	v.SetDefault("dist_dir", d.DistDir)
	v.SetDefault("pid_file", d.PIDFile)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("strip_env", d.StripEnv)
	v.SetDefault("settle_delay", d.SettleDelay)
	v.SetDefault("term_timeout", d.TermTimeout)
	v.SetDefault("kill_timeout", d.KillTimeout)
	v.SetDefault("poll_interval", d.PollInterval)

	v.SetEnvPrefix("CPCTL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".cpctl")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings that would make the supervisor misbehave.
func (s Settings) Validate() error {
	if s.WorkerName == "" {
		return errors.New("worker_name must not be empty")
	}
	if s.PIDFile == "" {
		return errors.New("pid_file must not be empty")
	}
	if s.LogFile == "" {
		return errors.New("log_file must not be empty")
	}
	if s.SettleDelay < 0 || s.TermTimeout <= 0 || s.KillTimeout <= 0 || s.PollInterval <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}
