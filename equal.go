package jon

import "math"

// floatEpsilon is float64 machine epsilon, matching the original
// implementation's "double epsilon" tolerance for Float comparison.
const floatEpsilon = 2.220446049250313e-16

// Equal reports whether v and other have the same Kind and equal payload.
// Object equality disregards member order; Array equality is positional.
// Float equality uses an absolute epsilon tolerance.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch p := v.payload.(type) {
	case nil:
		return true
	case bool:
		return p == other.payload.(bool)
	case int64:
		return p == other.payload.(int64)
	case float64:
		return floatEqual(p, other.payload.(float64))
	case string:
		return p == other.payload.(string)
	case *Array:
		return arrayEqual(p, other.payload.(*Array))
	case *Object:
		return objectEqual(p, other.payload.(*Object))
	case *refData:
		return p.target == other.payload.(*refData).target
	default:
		return false
	}
}

func floatEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= floatEpsilon
}

func arrayEqual(a, b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.Items() {
		if !v.Equal(b.items[i]) {
			return false
		}
	}
	return true
}

func objectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, m := range a.Members() {
		other, ok := b.Get(m.Key)
		if !ok || !m.Value.Equal(other) {
			return false
		}
	}
	return true
}
