package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/julert/errors"
)

// Result describes a finished build.
type Result struct {
	Output   string
	SourceAt string
	Stamp    CompileTime
	ExitCode int
	Duration time.Duration
}

// Failed reports whether the compiler exited non-zero.
func (r *Result) Failed() bool {
	return r.ExitCode != 0
}

// StampLine returns the header written at the top of stamped output.
func StampLine(t CompileTime) string {
	return "// Generated at " + t.String() + "\n"
}

// Build writes source to the configured output file and runs the compiler
// on it from the output directory. A compiler that exits non-zero is not
// an error; its status and output are reported in the Result.
func Build(ctx context.Context, cfg *Config, source string) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := Logger()
	start := time.Now()

	res := &Result{
		SourceAt: cfg.OutFilePath(),
		Stamp:    TimeNow(),
	}

	if err := Mkdir(cfg.OutDirPath()); err != nil {
		return nil, err
	}
	if err := writeSource(res.SourceAt, cfg.Build.Stamp, res.Stamp, source); err != nil {
		return nil, err
	}
	log.Debug("source written", zap.String("path", res.SourceAt), zap.Int("bytes", len(source)))

	args := append(append([]string(nil), cfg.Build.CompilerFlags...), cfg.Build.OutFile)
	cmd := exec.CommandContext(ctx, cfg.Build.Compiler, args...)
	cmd.Dir = cfg.OutDirPath()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	command := cfg.Build.Compiler + " " + strings.Join(args, " ")
	log.Debug("running compiler", zap.String("command", command), zap.String("dir", cmd.Dir))

	status, err := exitStatus(cmd.Run())
	res.Output = out.String()
	res.ExitCode = status
	res.Duration = time.Since(start)
	if err != nil {
		return res, errors.CommandFailed(command, status, err)
	}

	log.Info("build finished",
		zap.String("command", command),
		zap.Int("status", status),
		zap.Duration("duration", res.Duration))
	return res, nil
}

func writeSource(path string, stamp bool, t CompileTime, source string) (err error) {
	if err := TruncateFile(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(errors.PhaseToolchain, errors.KindIO, err, "open "+path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if stamp {
		if _, err := f.WriteString(StampLine(t)); err != nil {
			return errors.Wrap(errors.PhaseToolchain, errors.KindIO, err, "write "+path)
		}
	}
	if _, err := f.WriteString(source); err != nil {
		return errors.Wrap(errors.PhaseToolchain, errors.KindIO, err, "write "+path)
	}
	return nil
}
