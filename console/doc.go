// Package console owns the process output streams used by generated programs.
//
// Output is written straight through when the stream is a terminal and
// buffered otherwise, so programs writing to a pipe do not pay a syscall per
// print. Buffered output must be flushed before the process exits; the
// bootstrap package does this on both the success and the panic path.
//
//	console.Setup()            // UTF-8 code page on Windows, no-op elsewhere
//	console.WriteString("hi\n")
//	defer console.Flush()
//
// Tests and embedders redirect output with SetStdout:
//
//	var buf bytes.Buffer
//	prev := console.SetStdout(&buf)
//	defer console.SetStdout(prev)
package console
