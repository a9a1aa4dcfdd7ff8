// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements read-only path navigation over a built jon.Value.
package cursor

import (
	"fmt"

	"github.com/jonfmt/jon"
	"github.com/jonfmt/jon/pointer"
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(v jon.Value, path ...any) (jon.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return jon.Null, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a jon.Value.
type Cursor struct {
	org jon.Value
	stk []jon.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jon.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jon.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jon.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []jon.Value {
	return append([]jon.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current value, where path elements are either strings (denoting
// object keys), integers (denoting array offsets, or numeric object keys),
// functions (see below), or nil.
//
// If a path element is a string, the current value must be an Object, and
// the string resolves a member with that name; *jon.OutOfRange is recorded
// if the key is absent.
//
// If a path element is an integer, the current value must be an Array or
// an Object. Negative indices count backward from the end (-1 is last, -2
// second-last), and the result must lie below the current value's Size.
// On an Array it selects that element; on an Object it is converted to its
// decimal string and looked up as a key (see jon.Value.AtIndex), not taken
// as an insertion position.
//
// If a path element is a function, it is called as func(jon.Value)
// (jon.Value, error); its result becomes the next value in the traversal.
//
// A nil path element is a no-op, useful as the final element of a path
// built programmatically.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			next, err := cur.At(t)
			if err != nil {
				return c.setError(err)
			}
			cur = c.push(next)

		case int:
			n := cur.Size()
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, n)
			}
			next, err := cur.AtIndex(i)
			if err != nil {
				return c.setError(err)
			}
			cur = c.push(next)

		case func(jon.Value) (jon.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// no-op

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

// DownPath traverses p, a pointer.Path, from the current value.
func (c *Cursor) DownPath(p pointer.Path) *Cursor {
	elts := make([]any, len(p))
	for i, step := range p {
		if step.IsIndex {
			elts[i] = step.Index
		} else {
			elts[i] = step.Name
		}
	}
	return c.Down(elts...)
}

func (c *Cursor) push(v jon.Value) jon.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setError(err error) *Cursor {
	c.err = err
	return c
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
