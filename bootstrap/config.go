package bootstrap

import (
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/heap"
)

// Environment variables read by DefaultConfig.
const (
	EnvDebug      = "JULERT_DEBUG"
	EnvMaxHandles = "JULERT_MAX_HANDLES"
	EnvMaxBytes   = "JULERT_MAX_BYTES"
)

// Config holds bootstrap configuration
type Config struct {
	// Main is the program entry point.
	Main func()

	// Stdout replaces the program output stream. Nil keeps the console.
	Stdout io.Writer

	// Exit ends the process. Nil means os.Exit.
	Exit func(code int)

	// Logger receives runtime diagnostics. Nil means no logging.
	Logger *zap.Logger

	// Initializers run in order before Main.
	Initializers []func()

	// Heap configures the default allocation space. Nil keeps the
	// current default space.
	Heap []heap.Option

	// Debug enables the live handle report at exit.
	Debug bool
}

// DefaultConfig returns a configuration populated from the environment.
// Malformed values are ignored.
func DefaultConfig() *Config {
	cfg, err := ConfigFromEnv(os.Getenv)
	if err != nil && cfg.Logger != nil {
		cfg.Logger.Warn("ignoring malformed environment", zap.Error(err))
	}
	return cfg
}

// ConfigFromEnv builds a configuration from the variables returned by
// getenv. It always returns a usable configuration; the error combines
// every malformed value.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Debug: getenv(EnvDebug) != "",
	}

	var errs error
	if cfg.Debug {
		l, err := zap.NewDevelopment()
		errs = multierr.Append(errs, err)
		cfg.Logger = l
	}

	if n, err := parseLimit(getenv, EnvMaxHandles); err != nil {
		errs = multierr.Append(errs, err)
	} else if n > 0 {
		cfg.Heap = append(cfg.Heap, heap.WithMaxLive(int(n)))
	}

	if n, err := parseLimit(getenv, EnvMaxBytes); err != nil {
		errs = multierr.Append(errs, err)
	} else if n > 0 {
		cfg.Heap = append(cfg.Heap, heap.WithMaxBytes(n))
	}

	return cfg, errs
}

func parseLimit(getenv func(string) string, name string) (int64, error) {
	v := getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(name).
			Value(v).
			Cause(err).
			Detail("expected a non-negative integer, got %q", v).
			Build()
	}
	return n, nil
}
