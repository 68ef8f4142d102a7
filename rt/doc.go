// Package rt implements the failure model of compiled Jule programs.
//
// There is exactly one unwind mechanism: Panic raises an error object and
// Go's own panic machinery carries it up the stack, running deferred exit
// actions last-registered-first. Any enclosing scope may recover it:
//
//	func parse(s string) (n int, err error) {
//		defer rt.Recover(func(e error) { err = e })
//		...
//		rt.Panic(errors.Message("bad digit"))
//	}
//
// or, in expression form:
//
//	err := rt.Try(func() { risky() })
//
// The recovered value is the original error object, unchanged. Values that
// are not errors (raised by foreign code) are wrapped with errors.Recovered.
//
// # Termination
//
// An unwind that escapes the program entry point, or the function passed to
// Go, reaches the process-wide handler installed once with InstallHandler.
// The bootstrap package installs a handler that prints
//
//	panic: <error description>
//
// to standard output and exits with status ExitPanic (2). That status is a
// contract: build tooling checks for it.
//
// # Goroutines
//
// Go starts fire-and-forget work with no join. An unrecovered panic inside
// it terminates the whole process through the same handler.
package rt
