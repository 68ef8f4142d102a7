package console

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

func TestSetStdout_Redirects(t *testing.T) {
	var buf bytes.Buffer
	prev := SetStdout(&buf)
	defer SetStdout(prev)

	if err := WriteString("hello\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if _, err := Stdout().Write([]byte("world\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "hello\nworld\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFlush_BufferedWriter(t *testing.T) {
	var sink bytes.Buffer
	bw := bufio.NewWriter(&sink)
	prev := SetStdout(bw)
	defer SetStdout(prev)

	if err := WriteString("pending"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if sink.Len() != 0 {
		t.Fatalf("expected output to stay buffered, got %q", sink.String())
	}
	if err := Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if sink.String() != "pending" {
		t.Errorf("after Flush = %q", sink.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestFlush_CombinesErrors(t *testing.T) {
	outBuf := bufio.NewWriter(failWriter{})
	errBuf := bufio.NewWriter(failWriter{})
	prevOut := SetStdout(outBuf)
	prevErr := SetStderr(errBuf)
	defer SetStdout(prevOut)
	defer SetStderr(prevErr)

	_, _ = Stdout().Write([]byte("a"))
	_, _ = Stderr().Write([]byte("b"))

	err := Flush()
	if err == nil {
		t.Fatal("expected flush error")
	}
	// Buffered writers keep reporting the sticky error; clear them before restoring.
	SetStdout(io.Discard)
	SetStderr(io.Discard)
}

func TestSetStdout_FlushesPrevious(t *testing.T) {
	var sink bytes.Buffer
	prev := SetStdout(bufio.NewWriter(&sink))
	defer SetStdout(prev)

	_ = WriteString("carried")
	SetStdout(io.Discard)

	if sink.String() != "carried" {
		t.Errorf("replacing the writer should flush it, got %q", sink.String())
	}
}

func TestStream_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	prev := SetStdout(&buf)
	defer SetStdout(prev)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = WriteString("x")
			}
		}()
	}
	wg.Wait()

	if buf.Len() != 800 {
		t.Errorf("expected 800 bytes, got %d", buf.Len())
	}
}

func TestStream_NonTerminalIsBuffered(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	s := newStream(w)
	if s.isTerminal() {
		t.Skip("pipe reported as terminal")
	}
	if _, err := s.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if s.buf == nil {
		t.Fatal("expected a buffered writer for a pipe")
	}
	if err := s.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got := make([]byte, 1)
	if _, err := io.ReadFull(r, got); err != nil || got[0] != 'x' {
		t.Fatalf("read %q, %v", got, err)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	Setup()
	Setup()
}
