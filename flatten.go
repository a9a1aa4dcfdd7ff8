package jon

import "github.com/jonfmt/jon/pointer"

// Flatten returns an Object value mapping every leaf of v to a
// pointer-path string key ("/a/0/b"). Empty containers contribute no
// entries; a leaf at the root is keyed by the empty path.
//
// Flatten is a fixed point on its own output: a value whose members are
// already path-keyed leaves is returned unchanged rather than having
// another layer of path prefixing applied on top of an already-final key.
func Flatten(v Value) Value {
	if alreadyFlat(v) {
		return v.Clone()
	}
	o := NewObjectData()
	flattenInto(o, nil, v)
	return Value{kind: KindObject, payload: o}
}

func alreadyFlat(v Value) bool {
	if v.kind != KindObject {
		return false
	}
	for _, m := range v.Object().Members() {
		if m.Value.kind == KindObject || m.Value.kind == KindArray {
			return false
		}
		if m.Key != "" && m.Key[0] != '/' {
			return false
		}
	}
	return true
}

func flattenInto(out *Object, path pointer.Path, v Value) {
	switch v.kind {
	case KindObject:
		for _, m := range v.Object().Members() {
			flattenInto(out, path.Append(pointer.Member(m.Key)), m.Value)
		}
	case KindArray:
		for i, elem := range v.Array().Items() {
			flattenInto(out, path.Append(pointer.Elem(i)), elem)
		}
	default:
		out.Set(path.String(), v)
	}
}
