// Package bootstrap runs a compiled program from process start to exit.
//
// The sequence is fixed: set up the console, install the process-wide
// panic handler, run the initializers in declaration order, run the entry
// point, flush output and exit with status 0. A panic that escapes an
// initializer or the entry point prints
//
//	panic: <error description>
//
// to standard output and exits with status 2. Bootstrap is the only code
// in the runtime that ends the process.
package bootstrap
