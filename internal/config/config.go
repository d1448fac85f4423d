// Package config resolves where timely keeps its data and how it behaves.
// Values come from, in increasing priority: built-in defaults, an optional
// .timely.yaml file, and TIMELY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/timely/internal/domain"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "TIMELY"
	ConfigName     = ".timely"
	ConfigPathEnv  = "TIMELY_CONFIG_PATH"
	DefaultLogFile = "time_log.txt"
)

// Config holds all settings for the CLI.
type Config struct {
	Home         string
	LogFile      string
	ProjectsFile string
	Backend      domain.Backend
	DBPath       string
	HistoricDays int
	LogCalls     bool

	// ConfigFile is the file the settings were read from, empty when none
	// was found.
	ConfigFile string
}

// DefaultConfig returns the settings used when nothing is configured: both
// stores as text files in the working directory.
func DefaultConfig() Config {
	return Config{
		Home:         ".",
		LogFile:      DefaultLogFile,
		ProjectsFile: "projects.txt",
		Backend:      domain.BackendFile,
		DBPath:       "timely.db",
		HistoricDays: 14,
		LogCalls:     false,
	}
}

// LoadConfig reads the config file (if any) and environment variables,
// falling back to defaults for unset values.
func LoadConfig() (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("home", def.Home)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("projects_file", def.ProjectsFile)
	v.SetDefault("backend", string(def.Backend))
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("historic_days", def.HistoricDays)
	v.SetDefault("log_calls", def.LogCalls)

	v.SetConfigName(ConfigName) // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Home:         v.GetString("home"),
		LogFile:      v.GetString("log_file"),
		ProjectsFile: v.GetString("projects_file"),
		Backend:      domain.Backend(v.GetString("backend")),
		DBPath:       v.GetString("db_path"),
		HistoricDays: domain.IntWithDefault(v.GetInt("historic_days"), def.HistoricDays),
		LogCalls:     v.GetBool("log_calls"),
		ConfigFile:   v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Backend {
	case domain.BackendFile, domain.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, domain.BackendFile, domain.BackendSQLite)
	}
	if c.LogFile == "" || c.ProjectsFile == "" {
		return errors.New("log_file and projects_file must not be empty")
	}
	return nil
}

// LogPath is the resolved path of the time log file.
func (c Config) LogPath() (string, error) {
	return c.resolve(c.LogFile)
}

// ProjectsPath is the resolved path of the projects file.
func (c Config) ProjectsPath() (string, error) {
	return c.resolve(c.ProjectsFile)
}

// DatabasePath is the resolved path of the SQLite database.
func (c Config) DatabasePath() (string, error) {
	return c.resolve(c.DBPath)
}

// resolve expands a leading ~ and anchors relative paths at Home.
func (c Config) resolve(p string) (string, error) {
	p, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", p, err)
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	home, err := homedir.Expand(c.Home)
	if err != nil {
		return "", fmt.Errorf("expanding home %q: %w", c.Home, err)
	}
	return filepath.Join(home, p), nil
}
