package rt

import (
	"fmt"

	"github.com/wippyai/julert/errors"
)

// Panic raises err and starts unwinding the calling goroutine. It never
// returns. A nil err is replaced by a runtime error describing it.
func Panic(err error) {
	if err == nil {
		err = errors.Recovered(nil)
	}
	panic(err)
}

// Panicf raises a user error built from a format string.
func Panicf(format string, args ...any) {
	Panic(errors.Message(fmt.Sprintf(format, args...)))
}

// AsError converts a recovered panic value into the propagating error object.
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errors.Recovered(v)
}

// Recover stops a propagating panic and hands its error object to handler.
// It must be deferred directly:
//
//	defer rt.Recover(func(err error) { ... })
func Recover(handler func(err error)) {
	v := recover()
	if v == nil {
		return
	}
	handler(AsError(v))
}

// Try runs fn and returns the error object of a panic raised inside it,
// or nil if fn returned normally.
func Try(fn func()) (err error) {
	defer Recover(func(e error) {
		err = e
	})
	fn()
	return nil
}
