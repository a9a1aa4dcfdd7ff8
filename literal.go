package jon

import "fmt"

// New converts a native Go value into a Value.
//
// Recognised inputs: nil (Null), bool, the signed/unsigned integer kinds
// and int (Int), float32/float64 (Float), string (String), Value (returned
// unchanged), map[string]any (Object, key order undefined — prefer
// NewObject when order matters), and []any.
//
// A []any is the one ambiguous case, mirroring the original's brace-
// initializer disambiguation: if every element is itself a []any or [2]any
// of length 2 whose first element is a string, the slice is read as an
// object projection (each pair becomes key:value); otherwise it is read as
// an array, recursively converting each element with New.
func New(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null
	case Value:
		return x
	case bool:
		return NewBool(x)
	case int:
		return NewInt(int64(x))
	case int8:
		return NewInt(int64(x))
	case int16:
		return NewInt(int64(x))
	case int32:
		return NewInt(int64(x))
	case int64:
		return NewInt(x)
	case uint:
		return NewInt(int64(x))
	case uint8:
		return NewInt(int64(x))
	case uint16:
		return NewInt(int64(x))
	case uint32:
		return NewInt(int64(x))
	case uint64:
		return NewInt(int64(x))
	case float32:
		return NewFloat(float64(x))
	case float64:
		return NewFloat(x)
	case string:
		return NewString(x)
	case map[string]any:
		o := NewObjectData()
		for k, elem := range x {
			o.Set(k, New(elem))
		}
		return Value{kind: KindObject, payload: o}
	case []any:
		return newFromSlice(x)
	default:
		panic(&TypeError{Msg: fmt.Sprintf("cannot build a value from %T", v)})
	}
}

func newFromSlice(elems []any) Value {
	if isObjectProjection(elems) {
		o := NewObjectData()
		for _, elem := range elems {
			pair := asPairSlice(elem)
			key, ok := pair[0].(string)
			if !ok {
				panic(&TypeError{Msg: "object projection pair key must be a string"})
			}
			o.Set(key, New(pair[1]))
		}
		return Value{kind: KindObject, payload: o}
	}
	a := &Array{items: make([]Value, len(elems))}
	for i, elem := range elems {
		a.items[i] = New(elem)
	}
	return Value{kind: KindArray, payload: a}
}

// isObjectProjection reports whether elems should be read as key:value
// pairs rather than plain array elements.
func isObjectProjection(elems []any) bool {
	if len(elems) == 0 {
		return false
	}
	for _, elem := range elems {
		pair := asPairSlice(elem)
		if pair == nil {
			return false
		}
		if _, ok := pair[0].(string); !ok {
			return false
		}
	}
	return true
}

// asPairSlice returns elem's two elements if it is a []any or [2]any of
// length exactly 2, or nil otherwise.
func asPairSlice(elem any) []any {
	switch x := elem.(type) {
	case []any:
		if len(x) == 2 {
			return x
		}
	case [2]any:
		return []any{x[0], x[1]}
	}
	return nil
}
