package slice

import (
	"errors"
	"slices"
	"testing"

	rterrors "github.com/wippyai/julert/errors"
	"github.com/wippyai/julert/heap"
	"github.com/wippyai/julert/rt"
)

func expectBounds(t *testing.T, err error) {
	t.Helper()
	var e *rterrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T: %v", err, err)
	}
	if e.Phase != rterrors.PhaseSlice || e.Kind != rterrors.KindOutOfBounds {
		t.Fatalf("got %s/%s, want slice/out_of_bounds", e.Phase, e.Kind)
	}
}

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative", -1, 0},
		{"very negative", -1 << 20, 0},
		{"zero", 0, 0},
		{"positive", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Slice[int]
			err := rt.Try(func() { s = Make[int](tt.n) })
			if err != nil {
				t.Fatalf("Make(%d) panicked: %v", tt.n, err)
			}
			if s.Len() != tt.want {
				t.Fatalf("Len = %d, want %d", s.Len(), tt.want)
			}
			for i := range s.Len() {
				if s.At(i) != 0 {
					t.Fatalf("element %d = %d, want zero", i, s.At(i))
				}
			}
		})
	}
}

func TestMake_AllocationFailure(t *testing.T) {
	prev := heap.SetDefault(heap.NewSpace(heap.WithMaxBytes(64)))
	defer heap.SetDefault(prev)

	err := rt.Try(func() { Make[int64](9) })
	var e *rterrors.Error
	if !errors.As(err, &e) || e.Kind != rterrors.KindAllocation {
		t.Fatalf("expected allocation failure, got %v", err)
	}

	if s := Make[int64](8); s.Len() != 8 {
		t.Fatalf("Len = %d, want 8", s.Len())
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name string
		dst  []int
		src  []int
		n    int
		want []int
	}{
		{"equal length", []int{0, 0, 0}, []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"short dst", []int{0, 0}, []int{1, 2, 3}, 2, []int{1, 2}},
		{"short src", []int{0, 0, 0, 9}, []int{1, 2}, 2, []int{1, 2, 0, 9}},
		{"empty src", []int{7, 7}, []int{}, 0, []int{7, 7}},
		{"nil src", []int{7}, nil, 0, []int{7}},
		{"nil dst", nil, []int{1}, 0, nil},
		{"both nil", nil, nil, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Wrap(tt.dst)
			n := Copy(dst, Wrap(tt.src))
			if n != tt.n {
				t.Fatalf("Copy = %d, want %d", n, tt.n)
			}
			if !slices.Equal(dst.Values(), tt.want) {
				t.Fatalf("dst = %v, want %v", dst.Values(), tt.want)
			}
		})
	}
}

func TestCopy_Overlapping(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)

	n := Copy(s.Sub(1, 5), s.Sub(0, 4))
	if n != 4 {
		t.Fatalf("Copy = %d, want 4", n)
	}
	if got := s.String(); got != "[1 1 2 3 4]" {
		t.Fatalf("forward overlap = %s", got)
	}

	s = Of(1, 2, 3, 4, 5)
	Copy(s.Sub(0, 4), s.Sub(1, 5))
	if got := s.String(); got != "[2 3 4 5 5]" {
		t.Fatalf("backward overlap = %s", got)
	}
}

func TestAppend(t *testing.T) {
	backing := make([]int, 2, 10)
	backing[0], backing[1] = 1, 2
	src := Wrap(backing)

	out := Append(src, 3, 4)
	if out.Len() != 4 {
		t.Fatalf("Len = %d, want 4", out.Len())
	}
	if got := out.String(); got != "[1 2 3 4]" {
		t.Fatalf("Append = %s", got)
	}

	// Spare capacity in src must not be written.
	if backing[:3][2] != 0 {
		t.Fatal("Append wrote into the source's spare capacity")
	}

	out.Set(0, 100)
	if src.At(0) != 1 {
		t.Fatal("mutating the result changed the source")
	}
}

func TestAppend_NilAndEmpty(t *testing.T) {
	var nilSlice Slice[string]

	out := Append(nilSlice)
	if out.Len() != 0 {
		t.Fatalf("Len = %d, want 0", out.Len())
	}

	out = Append(nilSlice, "a")
	if out.Len() != 1 || out.At(0) != "a" {
		t.Fatalf("Append(nil, a) = %s", out)
	}

	joined := Concat(Of("x"), Of("y", "z"))
	if joined.String() != "[x y z]" {
		t.Fatalf("Concat = %s", joined)
	}
}

func TestSub(t *testing.T) {
	s := Of(10, 20, 30, 40)

	valid := [][2]int{{0, 0}, {0, 4}, {1, 3}, {4, 4}, {2, 2}}
	for _, r := range valid {
		sub := s.Sub(r[0], r[1])
		if sub.Len() != r[1]-r[0] {
			t.Fatalf("Sub(%d, %d).Len = %d", r[0], r[1], sub.Len())
		}
	}

	sub := s.Sub(1, 3)
	sub.Set(0, 21)
	if s.At(1) != 21 {
		t.Fatal("write through sub-slice not visible in parent")
	}
	s.Set(2, 31)
	if sub.At(1) != 31 {
		t.Fatal("write through parent not visible in sub-slice")
	}

	invalid := [][2]int{{-1, 2}, {0, 5}, {3, 2}, {5, 5}, {-2, -1}}
	for _, r := range invalid {
		err := rt.Try(func() { s.Sub(r[0], r[1]) })
		if err == nil {
			t.Fatalf("Sub(%d, %d) should fail", r[0], r[1])
		}
		expectBounds(t, err)
	}
}

func TestIndexBounds(t *testing.T) {
	s := Of("a", "b")

	for _, i := range []int{-1, 2, 100} {
		expectBounds(t, rt.Try(func() { s.At(i) }))
		expectBounds(t, rt.Try(func() { s.Set(i, "z") }))
		expectBounds(t, rt.Try(func() { s.Ptr(i) }))
	}

	var empty Slice[int]
	expectBounds(t, rt.Try(func() { empty.At(0) }))

	*s.Ptr(1) = "c"
	if s.At(1) != "c" {
		t.Fatalf("At(1) = %q, want c", s.At(1))
	}
}

func TestIteration(t *testing.T) {
	s := Of(3, 1, 2)

	var each []int
	s.Each(func(i, x int) {
		if s.At(i) != x {
			t.Fatalf("Each index %d value %d mismatch", i, x)
		}
		each = append(each, x)
	})
	if !slices.Equal(each, []int{3, 1, 2}) {
		t.Fatalf("Each = %v", each)
	}

	var idx []int
	s.EachIndex(func(i int) { idx = append(idx, i) })
	if !slices.Equal(idx, []int{0, 1, 2}) {
		t.Fatalf("EachIndex = %v", idx)
	}

	var seen []int
	for i, x := range s.All() {
		if i == 2 {
			break
		}
		seen = append(seen, x)
	}
	if !slices.Equal(seen, []int{3, 1}) {
		t.Fatalf("All with break = %v", seen)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ints", Of(1, 2, 3).String(), "[1 2 3]"},
		{"empty", Make[int](0).String(), "[]"},
		{"nil", Slice[int]{}.String(), "[]"},
		{"bytes numeric", Of[uint8](104, 105).String(), "[104 105]"},
		{"bools", Of(true, false).String(), "[true false]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("String = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	var nilSlice Slice[int]
	if !nilSlice.IsNil() || !nilSlice.Empty() {
		t.Fatal("zero Slice should be nil and empty")
	}
	if Make[int](0).IsNil() {
		t.Fatal("Make(0) should not be nil")
	}
	s := Make[int](3)
	if s.Cap() < 3 || s.Empty() {
		t.Fatalf("Cap = %d Empty = %v", s.Cap(), s.Empty())
	}
	if Of[int]().IsNil() != true {
		t.Fatal("Of() with no items should be nil")
	}
}
