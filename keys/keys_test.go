package keys_test

import (
	"errors"
	"testing"

	"github.com/bjoernbethge/memocache/keys"
)

func mustBuild(t *testing.T, args []any, named map[string]any) keys.Key {
	t.Helper()
	k, err := keys.Build(args, named)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return k
}

func TestSameArgumentsSameKey(t *testing.T) {
	a := mustBuild(t, []any{1, "two", 3.0}, nil)
	b := mustBuild(t, []any{1, "two", 3.0}, nil)

	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
}

func TestNamedOrderDoesNotMatter(t *testing.T) {
	// Maps iterate in random order; building repeatedly would already flush
	// out ordering bugs, but we also compare two separately built maps.
	a := mustBuild(t, []any{"q"}, map[string]any{"limit": 10, "offset": 20, "asc": true})
	b := mustBuild(t, []any{"q"}, map[string]any{"asc": true, "offset": 20, "limit": 10})

	if a != b {
		t.Fatalf("expected equal keys, got %q and %q", a, b)
	}
}

func TestDifferentArgumentsDifferentKey(t *testing.T) {
	base := mustBuild(t, []any{1, 2}, map[string]any{"x": 1})

	variants := []keys.Key{
		mustBuild(t, []any{2, 1}, map[string]any{"x": 1}),
		mustBuild(t, []any{1}, map[string]any{"x": 1}),
		mustBuild(t, []any{1, 2}, map[string]any{"x": 2}),
		mustBuild(t, []any{1, 2}, map[string]any{"y": 1}),
		mustBuild(t, []any{1, 2}, nil),
		mustBuild(t, []any{1, 2, 1}, map[string]any{"x": 1}),
	}

	for i, v := range variants {
		if v == base {
			t.Fatalf("variant %d collides with base key %q", i, base)
		}
	}
}

func TestTypesDoNotCollide(t *testing.T) {
	a := mustBuild(t, []any{1}, nil)
	b := mustBuild(t, []any{int64(1)}, nil)
	c := mustBuild(t, []any{"1"}, nil)

	if a == b || a == c || b == c {
		t.Fatalf("expected distinct keys, got %q, %q, %q", a, b, c)
	}
}

func TestStringQuotingPreventsCollisions(t *testing.T) {
	a := mustBuild(t, []any{"a,b"}, nil)
	b := mustBuild(t, []any{"a", "b"}, nil)

	if a == b {
		t.Fatalf("expected distinct keys, got %q for both", a)
	}
}

func TestNameQuotingPreventsCollisions(t *testing.T) {
	// A name carrying '=' or ',' must not be able to spell out a different
	// argument list.
	a := mustBuild(t, nil, map[string]any{"a=int:1,b": 2})
	b := mustBuild(t, nil, map[string]any{"a": 1, "b": 2})

	if a == b {
		t.Fatalf("expected distinct keys, got %q for both", a)
	}
}

func TestNilArgument(t *testing.T) {
	a := mustBuild(t, []any{nil}, nil)
	b := mustBuild(t, []any{nil}, nil)

	if a != b {
		t.Fatalf("expected equal keys for nil arguments, got %q and %q", a, b)
	}
}

func TestPointerIdentity(t *testing.T) {
	x, y := new(int), new(int)

	a := mustBuild(t, []any{x}, nil)
	b := mustBuild(t, []any{x}, nil)
	c := mustBuild(t, []any{y}, nil)

	if a != b {
		t.Fatalf("same pointer should give the same key")
	}
	if a == c {
		t.Fatalf("distinct pointers should give distinct keys")
	}
}

func TestComparableStruct(t *testing.T) {
	type point struct{ X, Y int }

	a := mustBuild(t, []any{point{1, 2}}, nil)
	b := mustBuild(t, []any{point{1, 2}}, nil)
	c := mustBuild(t, []any{point{2, 1}}, nil)

	if a != b {
		t.Fatalf("equal structs should give equal keys")
	}
	if a == c {
		t.Fatalf("different structs should give different keys")
	}
}

func TestUnhashableArguments(t *testing.T) {
	type withSlice struct{ S []int }

	bad := []any{
		[]int{1, 2, 3},
		map[string]int{"a": 1},
		func() {},
		withSlice{S: []int{1}},
	}

	for i, v := range bad {
		if _, err := keys.Build([]any{v}, nil); !errors.Is(err, keys.ErrUnhashable) {
			t.Fatalf("argument %d: expected ErrUnhashable, got %v", i, err)
		}
		if _, err := keys.Build(nil, map[string]any{"v": v}); !errors.Is(err, keys.ErrUnhashable) {
			t.Fatalf("named argument %d: expected ErrUnhashable, got %v", i, err)
		}
	}
}
