package jon

import "strconv"

// Kind identifies the active variant of a Value.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray

	// kindRef marks an unresolved $name reference. It never escapes a
	// freshly built document: ResolveRefs (run automatically by Parse)
	// replaces every kindRef value with a clone of its target before
	// returning, so public accessors never need to special-case it.
	kindRef
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
	kindRef:    "ref",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return "invalid"
}

// refData is the payload of an unresolved reference.
type refData struct {
	target string // the path, without the leading '$'
}

// A Value is a tagged union over the seven runtime types of the format:
// Null, Bool, Int, Float, String, Object, and Array. The zero Value is Null.
//
// Value is a small value type (a kind tag plus one interface word); Object
// and Array payloads are held by pointer, so copying a Value that wraps a
// container shares that container's backing storage. Clone always produces
// an independent deep copy.
type Value struct {
	kind    Kind
	payload any
}

// Null is the Null value. It is also the zero Value.
var Null = Value{}

// Type reports v's active Kind.
func (v Value) Type() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns v's boolean payload. It panics with a *TypeError if v is not
// a Bool.
func (v Value) Bool() bool {
	b, ok := v.payload.(bool)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not bool"})
	}
	return b
}

// TryBool is the error-returning counterpart of Bool.
func (v Value) TryBool() (bool, error) {
	b, ok := v.payload.(bool)
	if !ok {
		return false, &TypeError{Msg: "value is " + v.kind.String() + ", not bool"}
	}
	return b, nil
}

// Int returns v's integer payload. It panics with a *TypeError if v is not
// an Int.
func (v Value) Int() int64 {
	n, ok := v.payload.(int64)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not int"})
	}
	return n
}

// TryInt is the error-returning counterpart of Int.
func (v Value) TryInt() (int64, error) {
	n, ok := v.payload.(int64)
	if !ok {
		return 0, &TypeError{Msg: "value is " + v.kind.String() + ", not int"}
	}
	return n, nil
}

// Float returns v's floating-point payload. It panics with a *TypeError if
// v is not a Float.
func (v Value) Float() float64 {
	f, ok := v.payload.(float64)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not float"})
	}
	return f
}

// TryFloat is the error-returning counterpart of Float.
func (v Value) TryFloat() (float64, error) {
	f, ok := v.payload.(float64)
	if !ok {
		return 0, &TypeError{Msg: "value is " + v.kind.String() + ", not float"}
	}
	return f, nil
}

// String returns v's string payload. It panics with a *TypeError if v is
// not a String.
//
// Note this shadows the conventional fmt.Stringer signature on purpose:
// Value intentionally has no generic String() string debug form, to keep
// "get the payload" and "render for humans" from being confused. Use Dump
// to render a Value as text.
func (v Value) String() string {
	s, ok := v.payload.(string)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not string"})
	}
	return s
}

// TryString is the error-returning counterpart of String.
func (v Value) TryString() (string, error) {
	s, ok := v.payload.(string)
	if !ok {
		return "", &TypeError{Msg: "value is " + v.kind.String() + ", not string"}
	}
	return s, nil
}

// Object returns v's object payload. It panics with a *TypeError if v is
// not an Object.
func (v Value) Object() *Object {
	o, ok := v.payload.(*Object)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not object"})
	}
	return o
}

// TryObject is the error-returning counterpart of Object.
func (v Value) TryObject() (*Object, error) {
	o, ok := v.payload.(*Object)
	if !ok {
		return nil, &TypeError{Msg: "value is " + v.kind.String() + ", not object"}
	}
	return o, nil
}

// Array returns v's array payload. It panics with a *TypeError if v is not
// an Array.
func (v Value) Array() *Array {
	a, ok := v.payload.(*Array)
	if !ok {
		panic(&TypeError{Msg: "value is " + v.kind.String() + ", not array"})
	}
	return a
}

// TryArray is the error-returning counterpart of Array.
func (v Value) TryArray() (*Array, error) {
	a, ok := v.payload.(*Array)
	if !ok {
		return nil, &TypeError{Msg: "value is " + v.kind.String() + ", not array"}
	}
	return a, nil
}

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, payload: b} }

// NewInt returns an Int value.
func NewInt(n int64) Value { return Value{kind: KindInt, payload: n} }

// NewFloat returns a Float value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, payload: f} }

// NewString returns a String value.
func NewString(s string) Value { return Value{kind: KindString, payload: s} }

// NewObject returns an Object value built from pairs, preserving their
// order. Use this forced constructor when New's []any heuristic would be
// ambiguous, e.g. building an object whose every value is itself a 2-tuple.
func NewObject(pairs ...Pair) Value {
	o := NewObjectData()
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return Value{kind: KindObject, payload: o}
}

// NewArray returns an Array value containing elems, in order.
func NewArray(elems ...Value) Value {
	a := &Array{items: append([]Value(nil), elems...)}
	return Value{kind: KindArray, payload: a}
}

func newRef(target string) Value {
	return Value{kind: kindRef, payload: &refData{target: target}}
}

// A Pair is a key/value pair passed to NewObject.
type Pair struct {
	Key   string
	Value Value
}

// At returns the member at key. It fails with *TypeError if v is not an
// Object, and with *OutOfRange if key is absent.
func (v Value) At(key string) (Value, error) {
	o, ok := v.payload.(*Object)
	if !ok {
		return Value{}, &TypeError{Msg: "value is " + v.kind.String() + ", not object, cannot index by key " + strconv.Quote(key)}
	}
	val, ok := o.Get(key)
	if !ok {
		return Value{}, &OutOfRange{Msg: "no such key " + strconv.Quote(key)}
	}
	return val, nil
}

// Set inserts or overwrites the member at key. If v is Null, it is upgraded
// in place to an empty Object first.
func (v *Value) Set(key string, val Value) {
	if v.kind == KindNull {
		*v = Value{kind: KindObject, payload: NewObjectData()}
	}
	v.Object().Set(key, val)
}

// AtIndex returns the element at i. For an Array this is ordinary indexing;
// for an Object, i is stringified and looked up as a key (enabling numeric
// keys). It fails with *TypeError if v is neither, and with *OutOfRange if
// the index/key is absent.
func (v Value) AtIndex(i int) (Value, error) {
	switch a := v.payload.(type) {
	case *Array:
		val, ok := a.At(i)
		if !ok {
			return Value{}, &OutOfRange{Msg: "index out of range: " + strconv.Itoa(i)}
		}
		return val, nil
	case *Object:
		return v.At(strconv.Itoa(i))
	default:
		return Value{}, &TypeError{Msg: "value is " + v.kind.String() + ", not array, cannot index by position"}
	}
}

// SetIndex overwrites the element at i. If v is Null, it is upgraded in
// place to an empty Array first. i must already be in bounds; use Push to
// extend an array.
func (v *Value) SetIndex(i int, val Value) error {
	if v.kind == KindNull {
		*v = Value{kind: KindArray, payload: NewArrayData()}
	}
	a, ok := v.payload.(*Array)
	if !ok {
		return &TypeError{Msg: "value is " + v.kind.String() + ", not array"}
	}
	if i < 0 || i >= a.Len() {
		return &OutOfRange{Msg: "index out of range: " + strconv.Itoa(i)}
	}
	a.Set(i, val)
	return nil
}

// Push appends val to v's array, upgrading a Null value to an empty Array
// in place first. It fails with *TypeError if v is neither Null nor Array.
func (v *Value) Push(val Value) error {
	if v.kind == KindNull {
		*v = Value{kind: KindArray, payload: NewArrayData()}
	}
	a, ok := v.payload.(*Array)
	if !ok {
		return &TypeError{Msg: "value is " + v.kind.String() + ", not array"}
	}
	a.Push(val)
	return nil
}

// Has reports whether v is an Object containing key.
func (v Value) Has(key string) bool {
	o, ok := v.payload.(*Object)
	return ok && o.Has(key)
}

// Size reports the element count of a container, the byte length of a
// string, 0 for Null, and 1 for every other scalar.
func (v Value) Size() int {
	switch p := v.payload.(type) {
	case *Object:
		return p.Len()
	case *Array:
		return p.Len()
	case string:
		return len(p)
	case nil:
		return 0
	default:
		return 1
	}
}

// Empty reports whether Size() == 0.
func (v Value) Empty() bool { return v.Size() == 0 }

// Clear resets v to the default value of its current Kind in place:
// false/0/0.0/""/empty object/empty array. Clearing a Null value is a
// no-op.
func (v *Value) Clear() {
	switch v.kind {
	case KindBool:
		v.payload = false
	case KindInt:
		v.payload = int64(0)
	case KindFloat:
		v.payload = float64(0)
	case KindString:
		v.payload = ""
	case KindObject:
		v.payload = NewObjectData()
	case KindArray:
		v.payload = NewArrayData()
	}
}

// Clone returns a deep copy of v: containers are recursively copied, so the
// result shares no backing storage with v.
func (v Value) Clone() Value {
	switch p := v.payload.(type) {
	case *Object:
		return Value{kind: v.kind, payload: p.Clone()}
	case *Array:
		return Value{kind: v.kind, payload: p.Clone()}
	case *refData:
		return Value{kind: v.kind, payload: &refData{target: p.target}}
	default:
		return v
	}
}
