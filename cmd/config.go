package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"printflow/internal/adapters/out/memory"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/jobs"
	"printflow/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadConfig.
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvOrderIDOffset     = "ORDER_ID_OFFSET"
	EnvEstimatedLeadTime = "ESTIMATED_LEAD_TIME"
	EnvSummarySchedule   = "SUMMARY_SCHEDULE"
	EnvSeedDemoOrders    = "SEED_DEMO_ORDERS"
)

type Config struct {
	LogLevel          slog.Level
	OrderIDOffset     int
	EstimatedLeadTime time.Duration
	SummarySchedule   string
	SeedDemoOrders    bool
}

// DefaultConfig returns the settings used when no variable is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:          slog.LevelInfo,
		OrderIDOffset:     memory.DefaultIDOffset,
		EstimatedLeadTime: order.DefaultLeadTime,
		SummarySchedule:   jobs.DefaultSummarySchedule,
		SeedDemoOrders:    true,
	}
}

// LoadConfig loads envFiles (".env" when none are given) into the process
// environment without overriding variables already set, then reads the
// configuration. Missing env files are not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, falling back to DefaultConfig
// for unset or empty variables, and validates it.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	var problems []error
	if v, ok := get(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(EnvLogLevel, err))
		}
	}
	if v, ok := get(EnvOrderIDOffset); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(EnvOrderIDOffset, err))
		}
		cfg.OrderIDOffset = n
	}
	if v, ok := get(EnvEstimatedLeadTime); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(EnvEstimatedLeadTime, err))
		}
		cfg.EstimatedLeadTime = d
	}
	if v, ok := get(EnvSummarySchedule); ok {
		cfg.SummarySchedule = v
	}
	if v, ok := get(EnvSeedDemoOrders); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(EnvSeedDemoOrders, err))
		}
		cfg.SeedDemoOrders = b
	}
	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var problems []error
	if c.OrderIDOffset < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("order id offset", c.OrderIDOffset, 0, "max int"))
	}
	if c.EstimatedLeadTime <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"estimated lead time", fmt.Errorf("%s is not positive", c.EstimatedLeadTime)))
	}
	if strings.TrimSpace(c.SummarySchedule) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("summary schedule"))
	}
	return errors.Join(problems...)
}
