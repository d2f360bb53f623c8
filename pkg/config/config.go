package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
	"github.com/dmitrymomot/xssguard/pkg/logger"
)

// Config holds every setting xssguard reads from the environment.
type Config struct {
	// Scriptless also neutralizes <meta> and <base> and tightens the CSP header.
	Scriptless bool `env:"XSSGUARD_SCRIPTLESS" envDefault:"false"`
	// LaxSecondary leaves secondary output surfaces unrewritten.
	LaxSecondary bool `env:"XSSGUARD_LAX_SECONDARY" envDefault:"false"`
	// ProtectMessages runs the rewrite post-processor on formatted messages.
	// Turning it off reduces plain-text protection.
	ProtectMessages bool `env:"XSSGUARD_PROTECT_MESSAGES" envDefault:"true"`

	HTTP HTTPConfig `envPrefix:"XSSGUARD_HTTP_"`
	Log  LogConfig  `envPrefix:"XSSGUARD_LOG_"`
}

type HTTPConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type LogConfig struct {
	Format string `env:"FORMAT" envDefault:"json"`
	Level  string `env:"LEVEL" envDefault:"info"`
}

// Flags returns the rewrite flags derived from the configuration.
func (c Config) Flags() defuse.Flags {
	return defuse.Flags{Scriptless: c.Scriptless}
}

// LogLevel returns the parsed log level, or info when it does not parse.
func (c Config) LogLevel() slog.Level {
	l, _ := logger.ParseLevel(c.Log.Level)
	return l
}

// Validate checks values that parse but make no sense.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http address is empty"))
	}
	if c.HTTP.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http read timeout must be > 0, got %s", c.HTTP.ReadTimeout))
	}
	if c.HTTP.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http write timeout must be > 0, got %s", c.HTTP.WriteTimeout))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http shutdown timeout must be > 0, got %s", c.HTTP.ShutdownTimeout))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or text, got %q", c.Log.Format))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
