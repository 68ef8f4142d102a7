package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseSlice,
				Kind:   KindOutOfBounds,
				Path:   []string{"frame", "locals"},
				Detail: "index 9 out of bounds (length 4)",
			},
			contains: []string{"[slice]", "out_of_bounds", "frame.locals", "index 9"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseHeap,
				Kind:  KindAllocation,
			},
			contains: []string{"[heap]", "allocation"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseToolchain,
				Kind:   KindIO,
				Detail: "truncate out.go",
				Cause:  errors.New("permission denied"),
			},
			contains: []string{"[toolchain]", "io", "truncate out.go", "caused by", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseBootstrap,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseSlice,
		Kind:  KindOutOfBounds,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseSlice, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMap, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseSlice, Kind: KindAllocation}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, &Error{Phase: PhaseSlice, Kind: KindOutOfBounds}) {
		t.Error("errors.Is should match")
	}
}

func TestMessage(t *testing.T) {
	var err error = Message("boom")
	if err.Error() != "boom" {
		t.Fatalf("Message.Error() = %q, want %q", err.Error(), "boom")
	}

	var msg Message
	if !errors.As(err, &msg) || msg != "boom" {
		t.Fatalf("errors.As(Message) = %q", msg)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseHeap, KindNilHandle).
		Path("node", "next").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "handle", "nil").
		Build()

	if err.Phase != PhaseHeap {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseHeap)
	}
	if err.Kind != KindNilHandle {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNilHandle)
	}
	if len(err.Path) != 2 || err.Path[0] != "node" || err.Path[1] != "next" {
		t.Errorf("Path = %v, want [node next]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected handle, got nil" {
		t.Errorf("Detail = %v, want 'expected handle, got nil'", err.Detail)
	}
}

func TestBuilder_DetailWithoutArgs(t *testing.T) {
	err := New(PhaseRuntime, KindPanic).Detail("100%").Build()
	if err.Detail != "100%" {
		t.Errorf("Detail = %q, want %q", err.Detail, "100%")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseHeap, 4, 1024)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") || !strings.Contains(err.Detail, "memory allocation failed") {
			t.Errorf("Detail = %v, should describe the request", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseSlice, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("SliceBounds", func(t *testing.T) {
		err := SliceBounds(PhaseSlice, 3, 1, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "[3:1]") {
			t.Errorf("Detail = %v, should contain range", err.Detail)
		}
	})

	t.Run("DoubleRelease", func(t *testing.T) {
		err := DoubleRelease(PhaseHeap, 7)
		if err.Kind != KindDoubleRelease {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDoubleRelease)
		}
		if err.Value != uint32(7) {
			t.Errorf("Value = %v, want 7", err.Value)
		}
	})

	t.Run("Dangling", func(t *testing.T) {
		err := Dangling(PhaseHeap, 3)
		if err.Kind != KindDangling || !strings.Contains(err.Detail, "after release") {
			t.Errorf("unexpected %v", err)
		}
	})

	t.Run("NilHandle", func(t *testing.T) {
		err := NilHandle(PhaseHeap, "Ref[int]")
		if err.Kind != KindNilHandle {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilHandle)
		}
	})

	t.Run("ConcurrentModification", func(t *testing.T) {
		err := ConcurrentModification(PhaseMap, "delete")
		if err.Kind != KindConcurrentModification {
			t.Errorf("Kind = %v, want %v", err.Kind, KindConcurrentModification)
		}
	})

	t.Run("Recovered", func(t *testing.T) {
		err := Recovered(42)
		if err.Kind != KindPanic || err.Phase != PhaseRuntime {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Detail != "42" || err.Value != 42 {
			t.Errorf("Detail=%q Value=%v", err.Detail, err.Value)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("underlying")
		err := Wrap(PhaseToolchain, KindIO, cause, "mkdir")
		if !errors.Is(err, cause) {
			t.Error("Wrap should preserve cause")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseConfig, "config", "jule.toml")
		if err.Kind != KindNotFound || !strings.Contains(err.Detail, `"jule.toml"`) {
			t.Errorf("unexpected %v", err)
		}
	})

	t.Run("CommandFailed", func(t *testing.T) {
		err := CommandFailed("cc main.c", 1, nil)
		if err.Kind != KindCommandFailed || err.Value != 1 {
			t.Errorf("unexpected %v", err)
		}
		if !strings.Contains(err.Error(), "status 1") {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = Wrap(PhaseBootstrap, KindPanic, OutOfBounds(PhaseSlice, 1, 0), "initializer")

	var target *Error
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find *Error")
	}
	if target.Phase != PhaseBootstrap {
		t.Errorf("outermost Phase = %v", target.Phase)
	}
	if !errors.Is(wrapped, &Error{Phase: PhaseSlice, Kind: KindOutOfBounds}) {
		t.Error("errors.Is should see the wrapped bounds error")
	}
}
