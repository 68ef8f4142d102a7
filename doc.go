// Package julert is the runtime support library for compiled Jule programs.
//
// Generated Go code links against the packages below; each one carries a
// piece of the language's execution model.
//
// # Architecture Overview
//
//	julert/              Root package with the guest Memory and Allocator interfaces
//	├── heap/            Reference counted heap handles and allocation spaces
//	├── slice/           Bounds-checked slices with the language's append/copy rules
//	├── omap/            Ordered maps with deterministic iteration
//	├── rt/              Panic, recovery, the termination handler and console output
//	├── wide/            UTF-16 decoding, including strings in guest memory
//	├── console/         Process output streams and console setup
//	├── bootstrap/       Process entry: handler, initializers, entry point, exit
//	├── toolchain/       Build helpers used by the compiler driver
//	├── errors/          Structured error types
//	└── cmd/jbuild/      Compiler driver CLI
//
// # Quick Start
//
// A generated program's main function hands its initializers and entry
// point to the bootstrap:
//
//	func main() {
//	    bootstrap.Main(jule_main, init_config, init_cache)
//	}
//
//	func jule_main() {
//	    xs := slice.Make[int](3)
//	    xs = slice.Append(xs, 4)
//	    rt.Outln(xs) // [0 0 0 4]
//	    rt.Panic(errors.Message("boom"))
//	}
//
// The program above prints "[0 0 0 4]", then "panic: boom", and exits with
// status 2.
//
// # Exit Status
//
// A program that returns from its entry point exits with 0. A panic that
// no scope recovers exits with 2. Tooling depends on both values.
//
// # Thread Safety
//
// Heap handle counts are updated atomically and may be shared across
// goroutines. Slices and maps provide no synchronization; concurrent
// writers are the caller's responsibility.
package julert
