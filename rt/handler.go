package rt

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/julert/console"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	ExitPanic   = 2
)

// PanicPrefix precedes the error description on an unhandled panic.
const PanicPrefix = "panic: "

// Handler receives an error that escaped every recovery scope. Handlers
// are expected to end the process.
type Handler func(err error)

var (
	handler     atomic.Pointer[Handler]
	installOnce sync.Once
)

// InstallHandler sets the process-wide terminal handler. Only the first
// call takes effect; it reports whether h was installed.
func InstallHandler(h Handler) bool {
	installed := false
	installOnce.Do(func() {
		handler.Store(&h)
		installed = true
	})
	return installed
}

// Terminate delivers err to the installed handler, or to the default
// handler when none was installed.
func Terminate(err error) {
	Logger().Error("unhandled panic", zap.Error(err))
	if h := handler.Load(); h != nil && *h != nil {
		(*h)(err)
		return
	}
	DefaultHandler(err)
}

// DefaultHandler writes the panic line to the console, flushes it and
// exits with ExitPanic.
func DefaultHandler(err error) {
	_ = WritePanic(console.Stdout(), err)
	_ = console.Flush()
	os.Exit(ExitPanic)
}

// WritePanic writes "panic: <description>\n" to w.
func WritePanic(w io.Writer, err error) error {
	_, werr := io.WriteString(w, FormatPanic(err))
	return werr
}

// FormatPanic renders the terminal panic line for err.
func FormatPanic(err error) string {
	msg := "<nil>"
	if err != nil {
		msg = err.Error()
	}
	return PanicPrefix + msg + "\n"
}
