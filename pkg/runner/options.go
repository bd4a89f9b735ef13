package runner

import (
	"log/slog"
	"time"
)

// Config holds runner configuration.
type Config struct {
	Interval time.Duration
	Now      func() time.Time
	Logger   *slog.Logger
}

// Option modifies Config.
type Option interface {
	Apply(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) Apply(c *Config) { f(c) }

// Interval sets how often the registry is polled. Defaults to one minute,
// the schedule model's resolution.
func Interval(d time.Duration) Option {
	return optionFunc(func(c *Config) {
		c.Interval = d
	})
}

// Clock overrides the time source. Intended for tests.
func Clock(now func() time.Time) Option {
	return optionFunc(func(c *Config) {
		c.Now = now
	})
}

// Logger sets the structured logger.
func Logger(l *slog.Logger) Option {
	return optionFunc(func(c *Config) {
		c.Logger = l
	})
}
