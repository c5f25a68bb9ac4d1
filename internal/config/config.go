package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/paths"
)

// FileName is the base name of the config file.
const FileName = "config.yaml"

// Config represents the top-level configuration structure.
type Config struct {
	Version    int          `mapstructure:"version" yaml:"version" toml:"version"`
	Candidates []string     `mapstructure:"candidates" yaml:"candidates" toml:"candidates"`
	RCFile     string       `mapstructure:"rc_file" yaml:"rc_file" toml:"rc_file"`
	Shell      string       `mapstructure:"shell" yaml:"shell" toml:"shell"`
	AutoSource bool         `mapstructure:"auto_source" yaml:"auto_source" toml:"auto_source"`
	Backup     BackupConfig `mapstructure:"backup" yaml:"backup" toml:"backup"`
}

// BackupConfig controls the copies taken before each edit.
type BackupConfig struct {
	Enabled   bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Retention int  `mapstructure:"retention" yaml:"retention" toml:"retention"`
}

// DefaultRetention is the number of backups kept per shell file.
const DefaultRetention = 5

// DefaultShell returns $SHELL, or /bin/sh when it is unset.
func DefaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// DefaultConfigPath returns <ConfigHome>/dotcli/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(paths.AppConfigDir(), FileName)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:    1,
		Candidates: append([]string(nil), paths.DefaultShellConfigs...),
		Shell:      DefaultShell(),
		AutoSource: true,
		Backup: BackupConfig{
			Enabled:   true,
			Retention: DefaultRetention,
		},
	}
}

// Init resets Viper and registers search paths, env binding and defaults.
// Call this once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix("DOTCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("candidates", paths.DefaultShellConfigs)
	viper.SetDefault("rc_file", "")
	viper.SetDefault("shell", DefaultShell())
	viper.SetDefault("auto_source", true)
	viper.SetDefault("backup.enabled", true)
	viper.SetDefault("backup.retention", DefaultRetention)
}

// Load reads the configuration file.
// An explicit path must exist; with an empty path a missing file means defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		switch {
		case notFound && path == "":
			// implicit load: defaults only
		case path != "" && os.IsNotExist(err):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// FileUsed returns the config file Viper read, or "" when defaults were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
