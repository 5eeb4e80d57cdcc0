// Package config loads settings for the gridastar example programs.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type GridConfig struct {
	Width     int  `mapstructure:"width" yaml:"width"`
	Height    int  `mapstructure:"height" yaml:"height"`
	Diagonals bool `mapstructure:"diagonals" yaml:"diagonals"`
	// Layout optionally seeds the grid from map rows; it overrides Width and Height.
	Layout []string `mapstructure:"layout" yaml:"layout,omitempty"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	// StepInterval paces trace snapshots pushed over websockets.
	StepInterval time.Duration `mapstructure:"stepInterval" yaml:"stepInterval"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type Config struct {
	Grid   GridConfig   `mapstructure:"grid" yaml:"grid"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

func Default() *Config {
	return &Config{
		Grid:   GridConfig{Width: 40, Height: 24},
		Server: ServerConfig{Addr: ":8080", StepInterval: 50 * time.Millisecond},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. Environment variables
// prefixed GRIDASTAR_ (e.g. GRIDASTAR_SERVER_ADDR) take precedence.
// An empty path yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	vp := viper.New()
	setDefaults(vp, Default())
	vp.SetEnvPrefix("gridastar")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(filepath.Clean(path))
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(vp *viper.Viper, defaults *Config) {
	vp.SetDefault("grid.width", defaults.Grid.Width)
	vp.SetDefault("grid.height", defaults.Grid.Height)
	vp.SetDefault("grid.diagonals", defaults.Grid.Diagonals)
	vp.SetDefault("server.addr", defaults.Server.Addr)
	vp.SetDefault("server.stepInterval", defaults.Server.StepInterval)
	vp.SetDefault("log.level", defaults.Log.Level)
}

func (cfg *Config) Validate() error {
	if len(cfg.Grid.Layout) == 0 && (cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0) {
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Server.StepInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "step interval %v", cfg.Server.StepInterval)
	}
	if _, err := cfg.level(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q", cfg.Log.Level)
	}
	return nil
}

// YAML renders the effective config, for startup logs.
func (cfg *Config) YAML() (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, "encoding config")
	}
	return string(out), nil
}

// NewLogger builds a production zap logger at the configured level.
func (cfg *Config) NewLogger() (*zap.Logger, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}

func (cfg *Config) level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(cfg.Log.Level))
	return level, err
}
