// Package ast defines the intermediate tree produced by parsing jon source
// text, before it is lowered into the public jon.Value tree.
package ast

// A Value is any of the node types defined in this package: Null, Bool,
// Int, Float, String, Ref, Object, or Array.
type Value interface {
	// span reports the node's byte extent in the source text, mainly for
	// future diagnostics; it is unexported because callers should not need
	// to switch on it directly.
	span() (pos, end int)
}

// Null is the AST node for the `null` literal.
type Null struct {
	Pos, End int
}

func (n *Null) span() (int, int) { return n.Pos, n.End }

// Bool is the AST node for `true`/`false`.
type Bool struct {
	Value    bool
	Pos, End int
}

func (n *Bool) span() (int, int) { return n.Pos, n.End }

// Int is the AST node for an integer literal of any base.
type Int struct {
	Value    int64
	Pos, End int
}

func (n *Int) span() (int, int) { return n.Pos, n.End }

// Float is the AST node for a float literal, including the nan/inf
// keyword families.
type Float struct {
	Value    float64
	Pos, End int
}

func (n *Float) span() (int, int) { return n.Pos, n.End }

// String is the AST node for a quoted or bare-identifier string.
type String struct {
	Value    string
	Pos, End int
}

func (n *String) span() (int, int) { return n.Pos, n.End }

// Ref is the AST node for a `$name` document reference.
type Ref struct {
	Target   string // identifier, without the leading '$'
	Pos, End int
}

func (n *Ref) span() (int, int) { return n.Pos, n.End }

// A Member is one key:value entry of an Object, in source order.
type Member struct {
	Key   string
	Value Value
}

// Object is the AST node for an object, bare or braced.
type Object struct {
	Members  []Member
	Pos, End int
}

func (n *Object) span() (int, int) { return n.Pos, n.End }

// Find returns the last member with the given key, or nil. Parsing keeps
// every member in source order, so on a duplicate key the later entry
// wins, matching the original implementation's "last write wins" behavior.
func (n *Object) Find(key string) *Member {
	var found *Member
	for i := range n.Members {
		if n.Members[i].Key == key {
			found = &n.Members[i]
		}
	}
	return found
}

// Array is the AST node for an array.
type Array struct {
	Elems    []Value
	Pos, End int
}

func (n *Array) span() (int, int) { return n.Pos, n.End }
