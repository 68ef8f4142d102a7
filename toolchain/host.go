package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"go.uber.org/zap"

	rterrors "github.com/wippyai/julert/errors"
)

// CompileTime is a local wall clock reading at minute resolution.
type CompileTime struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

// String renders the time as dd/mm/yyyy hh:mm.
func (t CompileTime) String() string {
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d", t.Day, t.Month, t.Year, t.Hour, t.Minute)
}

// TimeNow reads the local wall clock.
func TimeNow() CompileTime {
	return compileTime(time.Now())
}

func compileTime(now time.Time) CompileTime {
	now = now.Local()
	return CompileTime{
		Day:    now.Day(),
		Month:  int(now.Month()),
		Year:   now.Year(),
		Hour:   now.Hour(),
		Minute: now.Minute(),
	}
}

// Mkdir creates path and any missing parents. It succeeds when path
// already exists as a directory.
func Mkdir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return rterrors.Wrap(rterrors.PhaseToolchain, rterrors.KindIO, err, "mkdir "+path)
	}
	return nil
}

// TruncateFile creates path, or empties it if it exists.
func TruncateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return rterrors.Wrap(rterrors.PhaseToolchain, rterrors.KindIO, err, "truncate "+path)
	}
	return f.Close()
}

// System runs cmd through the platform shell and returns its exit status,
// or -1 if it could not be started or was killed by a signal.
func System(ctx context.Context, cmd string) int {
	c := shell(ctx, cmd)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	status, err := exitStatus(c.Run())
	if err != nil {
		Logger().Warn("command did not run", zap.String("command", cmd), zap.Error(err))
	}
	return status
}

func shell(ctx context.Context, cmd string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", cmd)
	}
	return exec.CommandContext(ctx, "sh", "-c", cmd)
}

// exitStatus converts the result of running a command into its exit
// status. The error is non-nil only when no status is available.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
