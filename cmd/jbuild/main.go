package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	rterrors "github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/toolchain"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs the build and returns the process exit code. Deferred
// cleanup runs before main exits.
func realMain(args []string) int {
	fs := flag.NewFlagSet("jbuild", flag.ContinueOnError)
	var (
		configPath = fs.String("config", ".", "Path to jule.toml or the directory containing it")
		srcFile    = fs.String("src", "", "Generated Go source to build")
		quiet      = fs.Bool("quiet", false, "Plain output, no progress display")
		verbose    = fs.Bool("v", false, "Debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *srcFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: jbuild -src <file.go> [-config jule.toml] [-quiet] [-v]")
		return 1
	}

	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			toolchain.SetLogger(l)
			defer func() { _ = l.Sync() }()
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	source, err := os.ReadFile(*srcFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read source: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var code int
	if !*quiet && term.IsTerminal(int(os.Stdout.Fd())) {
		code, err = runInteractive(ctx, cfg, *srcFile, string(source))
	} else {
		code, err = run(ctx, cfg, *srcFile, string(source))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code <= 0 {
			code = 1
		}
	}
	return code
}

// loadConfig reads the build configuration, falling back to the defaults
// when no jule.toml exists.
func loadConfig(path string) (*toolchain.Config, error) {
	cfg, err := toolchain.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	var e *rterrors.Error
	if errors.As(err, &e) && e.Kind == rterrors.KindNotFound {
		toolchain.Logger().Debug("no build configuration, using defaults", zap.String("path", path))
		return toolchain.DefaultConfig(), nil
	}
	return nil, err
}

func run(ctx context.Context, cfg *toolchain.Config, srcFile, source string) (int, error) {
	fmt.Printf("Building %s\n", srcFile)
	fmt.Printf("Output: %s\n", cfg.OutFilePath())

	res, err := toolchain.Build(ctx, cfg, source)
	if err != nil {
		if res != nil {
			return res.ExitCode, err
		}
		return 1, err
	}

	if res.Output != "" {
		fmt.Printf("\n--- compiler output ---\n%s", res.Output)
	}
	if res.Failed() {
		fmt.Printf("Build failed: exit status %d (%s)\n", res.ExitCode, res.Duration.Round(time.Millisecond))
	} else {
		fmt.Printf("Build succeeded (%s)\n", res.Duration.Round(time.Millisecond))
	}
	return res.ExitCode, nil
}
