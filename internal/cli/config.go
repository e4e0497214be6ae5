package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mcoot/pexeso/internal/factory"
	"github.com/mcoot/pexeso/internal/model"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	BotDelay time.Duration
	Seed     string // Empty for an unseeded game
	Rounds   int
	Output   string
	Verbose  bool

	// envErrs holds environment values that could not be parsed
	envErrs []error
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		Seed:    os.Getenv("PEXESO_SEED"),
		Output:  getEnvOrDefault("PEXESO_OUTPUT", FormatText),
		Verbose: false,
	}
	cfg.BotDelay = cfg.durationFromEnv("PEXESO_BOT_DELAY", factory.DefaultBotDelay)
	cfg.Rounds = cfg.intFromEnv("PEXESO_ROUNDS", 1)
	return cfg
}

// Validate checks flag and environment values
func (c *Config) Validate() error {
	errs := append([]error(nil), c.envErrs...)
	if c.Output != FormatText && c.Output != FormatJSON {
		errs = append(errs, fmt.Errorf("output must be %q or %q, got %q", FormatText, FormatJSON, c.Output))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds))
	}
	if c.BotDelay < 0 {
		errs = append(errs, fmt.Errorf("bot delay must not be negative, got %s", c.BotDelay))
	}
	if _, err := c.seed(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", model.ErrConfiguration, errors.Join(errs...))
	}
	return nil
}

// NewLogger returns the JSON logger for this configuration
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig converts the CLI configuration into application wiring
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	seed, err := c.seed()
	if err != nil {
		return factory.Config{}, err
	}
	return factory.Config{
		Logger:   logger,
		Seed:     seed,
		BotDelay: c.BotDelay,
	}, nil
}

func (c *Config) seed() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be a non-negative integer, got %q", c.Seed)
	}
	return &v, nil
}

func (c *Config) durationFromEnv(key string, defaultVal time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		c.envErrs = append(c.envErrs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return d
}

func (c *Config) intFromEnv(key string, defaultVal int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.envErrs = append(c.envErrs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return n
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
