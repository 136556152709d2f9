// This file decides HOW a call's arguments become a cache key.

package keys

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

/*
Key is a comparable cache key derived from the arguments of one call.

Two calls produce the same Key when:
- Their positional arguments are equal, in order
- Their named arguments are equal as a set (supply order does NOT matter)

Any difference in either produces a different Key.

Key is a plain string so it can be used directly as a map key and as a
singleflight key without conversion.
*/
type Key string

// ErrUnhashable is returned when an argument value cannot participate in a
// cache key because its type is not comparable (slices, maps, funcs, or
// structs containing them).
var ErrUnhashable = errors.New("keys: argument is not comparable")

/*
Build derives a Key from one call's arguments.

BEHAVIOR:
---------
1. Positional arguments are encoded in the order they were given
2. Named arguments are sorted by name before encoding, so that
   {a:1, b:2} and {b:2, a:1} yield the same Key
3. Every value is encoded together with its type, so int(1), int64(1)
   and "1" never collide

Build fails with ErrUnhashable (wrapped with the offending type) on the
first argument whose type is not comparable. The caller is expected to
treat this as a programming error; no cache state is touched.
*/
func Build(args []any, named map[string]any) (Key, error) {
	var b strings.Builder

	b.WriteByte('(')
	for i, v := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeValue(&b, v); err != nil {
			return "", err
		}
	}
	b.WriteString(")(")

	if len(named) > 0 {
		names := make([]string, 0, len(named))
		for name := range named {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			if i > 0 {
				b.WriteByte(',')
			}
			// Names are quoted like string values: a name containing '=' or
			// ',' must not be able to imitate another argument list.
			fmt.Fprintf(&b, "%q=", name)
			if err := writeValue(&b, named[name]); err != nil {
				return "", err
			}
		}
	}
	b.WriteByte(')')

	return Key(b.String()), nil
}

/*
writeValue encodes a single argument value.

Encoding rules:
---------------
- nil            → "nil"
- strings        → quoted, so "a,b" and the pair "a","b" cannot collide
- pointers/chans → identity (the address), matching "same object" semantics
- everything else → Go-syntax representation prefixed with the type

Values are rejected before encoding if their dynamic type is not
comparable. The check uses the type, not the value, so an empty slice is
rejected just like a populated one.
*/
func writeValue(b *strings.Builder, v any) error {
	if v == nil {
		b.WriteString("nil")
		return nil
	}

	t := reflect.TypeOf(v)
	if !t.Comparable() {
		return fmt.Errorf("%w: %T", ErrUnhashable, v)
	}

	switch t.Kind() {
	case reflect.String:
		fmt.Fprintf(b, "string:%q", v)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		// Identity-based: two arguments match only if they are the same object.
		fmt.Fprintf(b, "%s@%p", t.String(), v)
	default:
		fmt.Fprintf(b, "%s:%#v", t.String(), v)
	}
	return nil
}
