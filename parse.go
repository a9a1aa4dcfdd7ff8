package jon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonfmt/jon/ast"
	"github.com/jonfmt/jon/pointer"
)

// A ParseOption adjusts the behavior of Parse, in the style of the
// teacher's Stream.AllowComments/AllowTrailingCommas setters.
type ParseOption func(*parseConfig)

type parseConfig struct {
	debug    bool
	debugOut io.Writer
	maxDepth int
}

// WithDebug, when enabled, writes the lexer's token stream and the
// parser's AST to an io.Writer (os.Stderr by default) before lowering,
// for ad hoc inspection. It is the whole of this library's "debug
// printer" scaffolding: there is no separate pretty-printer subsystem.
func WithDebug(enable bool) ParseOption {
	return func(c *parseConfig) { c.debug = enable }
}

// WithDebugWriter overrides the io.Writer debug output is sent to; it
// implies WithDebug(true).
func WithDebugWriter(w io.Writer) ParseOption {
	return func(c *parseConfig) { c.debug = true; c.debugOut = w }
}

// WithMaxDepth bounds object/array nesting depth to guard against
// pathological input. A non-positive value means unlimited (the default).
func WithMaxDepth(n int) ParseOption {
	return func(c *parseConfig) { c.maxDepth = n }
}

// Parse lexes and parses text, lowers the result into a Value tree, and
// resolves every $ref reference it contains. The root may be an array, a
// braced object, a bare object, or a single scalar value.
func Parse(text string, opts ...ParseOption) (Value, error) {
	cfg := parseConfig{debugOut: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.debug {
		toks, err := Lex(text)
		if err != nil {
			return Null, err
		}
		fmt.Fprintln(cfg.debugOut, "-- tokens --")
		for _, t := range toks {
			fmt.Fprintf(cfg.debugOut, "%-6d %s %q\n", t.Span.Pos, t.Kind, t.Literal)
		}
	}

	var astOpts []ast.Option
	if cfg.maxDepth > 0 {
		astOpts = append(astOpts, ast.WithMaxDepth(cfg.maxDepth))
	}
	root, err := ast.Parse(text, astOpts...)
	if err != nil {
		return Null, err
	}
	if cfg.debug {
		fmt.Fprintln(cfg.debugOut, "-- ast --")
		fmt.Fprintf(cfg.debugOut, "%+v\n", root)
	}

	v := lower(root)
	return ResolveRefs(v)
}

// FromFile reads path as UTF-8 text and parses it. It is a thin
// convenience composing os.ReadFile with Parse and carries no independent
// design of its own.
func FromFile(path string, opts ...ParseOption) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Null, err
	}
	return Parse(string(data), opts...)
}

// lower performs the structural, one-to-one AST-to-Value translation.
// Ref nodes become unresolved kindRef values; ResolveRefs replaces them
// afterward.
func lower(v ast.Value) Value {
	switch n := v.(type) {
	case *ast.Null:
		return Null
	case *ast.Bool:
		return NewBool(n.Value)
	case *ast.Int:
		return NewInt(n.Value)
	case *ast.Float:
		return NewFloat(n.Value)
	case *ast.String:
		return NewString(n.Value)
	case *ast.Ref:
		return newRef(n.Target)
	case *ast.Object:
		o := NewObjectData()
		for _, m := range n.Members {
			o.Set(m.Key, lower(m.Value))
		}
		return Value{kind: KindObject, payload: o}
	case *ast.Array:
		a := NewArrayData()
		for _, e := range n.Elems {
			a.Push(lower(e))
		}
		return Value{kind: KindArray, payload: a}
	default:
		return Null
	}
}

// ResolveRefs walks root, replacing every unresolved $name reference with
// a deep clone of the value it names, and fails with a *ParseError if a
// reference cannot be resolved or participates in a cycle.
//
// A reference target beginning with '/' is resolved as a pointer path from
// root (see the pointer package); any other target is resolved as a
// top-level key of root, the common case for named document-local values.
func ResolveRefs(root Value) (Value, error) {
	return resolveIn(root, root, nil)
}

func resolveIn(root, v Value, stack []string) (Value, error) {
	switch v.kind {
	case kindRef:
		target := v.payload.(*refData).target
		for _, s := range stack {
			if s == target {
				return Null, &ParseError{Msg: "cyclic reference: $" + target}
			}
		}
		targetVal, err := lookupRef(root, target)
		if err != nil {
			return Null, &ParseError{Msg: "unresolved reference $" + target + ": " + err.Error()}
		}
		resolved, err := resolveIn(root, targetVal, append(stack, target))
		if err != nil {
			return Null, err
		}
		return resolved.Clone(), nil

	case KindObject:
		o := v.Object()
		for _, m := range o.Members() {
			nv, err := resolveIn(root, m.Value, stack)
			if err != nil {
				return Null, err
			}
			o.Set(m.Key, nv)
		}
		return v, nil

	case KindArray:
		a := v.Array()
		for i, item := range a.Items() {
			nv, err := resolveIn(root, item, stack)
			if err != nil {
				return Null, err
			}
			a.Set(i, nv)
		}
		return v, nil

	default:
		return v, nil
	}
}

func lookupRef(root Value, target string) (Value, error) {
	if strings.HasPrefix(target, "/") {
		path, err := pointer.Parse(target)
		if err != nil {
			return Null, err
		}
		return navigate(root, path)
	}
	return root.At(target)
}

func navigate(v Value, path pointer.Path) (Value, error) {
	cur := v
	for _, step := range path {
		var err error
		if step.IsIndex {
			cur, err = cur.AtIndex(step.Index)
		} else {
			cur, err = cur.At(step.Name)
		}
		if err != nil {
			return Null, err
		}
	}
	return cur, nil
}
