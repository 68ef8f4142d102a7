package console

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"golang.org/x/term"
)

const bufferSize = 32 * 1024

var (
	stdout = newStream(os.Stdout)
	stderr = newStream(os.Stderr)

	setupOnce sync.Once
)

// stream is a process output that is unbuffered on a terminal and
// buffered otherwise. Safe for concurrent use.
type stream struct {
	file     *os.File
	w        io.Writer
	buf      *bufio.Writer
	terminal int32 // -1 = unchecked, 0 = no, 1 = yes
	mu       sync.Mutex
}

func newStream(f *os.File) *stream {
	return &stream{file: f, terminal: -1}
}

func (s *stream) isTerminal() bool {
	if v := atomic.LoadInt32(&s.terminal); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(int(s.file.Fd()))
	if result {
		atomic.StoreInt32(&s.terminal, 1)
	} else {
		atomic.StoreInt32(&s.terminal, 0)
	}
	return result
}

// writer must be called with mu held.
func (s *stream) writer() io.Writer {
	if s.w != nil {
		return s.w
	}
	if s.isTerminal() {
		s.w = s.file
		return s.w
	}
	s.buf = bufio.NewWriterSize(s.file, bufferSize)
	s.w = s.buf
	return s.w
}

func (s *stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer().Write(p)
}

func (s *stream) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return nil
	}
	return s.buf.Flush()
}

func (s *stream) set(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.w
	if s.buf != nil {
		_ = s.buf.Flush()
	}
	s.w = w
	s.buf = nil
	if bw, ok := w.(*bufio.Writer); ok {
		s.buf = bw
	}
	return prev
}

// Setup prepares the process console for UTF-8 output. Only the first call
// has an effect.
func Setup() {
	setupOnce.Do(enableUTF8)
}

// Stdout returns the program output stream.
func Stdout() io.Writer {
	return stdout
}

// Stderr returns the diagnostic output stream.
func Stderr() io.Writer {
	return stderr
}

// WriteString writes s to the program output stream.
func WriteString(s string) error {
	_, err := io.WriteString(stdout, s)
	return err
}

// SetStdout replaces the program output writer and returns the previous
// one. A nil previous value means the default, terminal-dependent writer.
// Pending buffered output is flushed first.
func SetStdout(w io.Writer) io.Writer {
	return stdout.set(w)
}

// SetStderr replaces the diagnostic output writer and returns the previous one.
func SetStderr(w io.Writer) io.Writer {
	return stderr.set(w)
}

// Flush writes any buffered output of both streams.
func Flush() error {
	return multierr.Combine(stdout.flush(), stderr.flush())
}
