package jon

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jonfmt/jon/pointer"
)

// Validate checks instance against schema and returns a report Value: Null
// if instance conforms, otherwise an Object whose keys are
// "<pointer path>/<keyword>" and whose values are objects
// {message, data, keyword}. If schema itself is malformed, Validate
// returns (Null, *InvalidSchema); the report object, when non-Null, always
// concerns genuine instance nonconformance.
func Validate(instance, schema Value) (Value, error) {
	report := NewObjectData()
	if err := validateNode(instance, schema, nil, report); err != nil {
		return Null, err
	}
	if report.Len() == 0 {
		return Null, nil
	}
	return Value{kind: KindObject, payload: report}, nil
}

func addError(report *Object, path pointer.Path, keyword, message string, data Value) {
	key := path.String() + "/" + keyword
	report.Set(key, NewObject(
		Pair{Key: "message", Value: NewString(message)},
		Pair{Key: "data", Value: data},
		Pair{Key: "keyword", Value: NewString(keyword)},
	))
}

func validateNode(instance, schema Value, path pointer.Path, report *Object) error {
	schemaPath := path.String()

	if schema.kind == KindString {
		name := schema.String()
		if !validTypeNames[name] {
			return &InvalidSchema{Msg: "unknown type name " + fmt.Sprintf("%q", name), Path: schemaPath}
		}
		if !typeMatches(instance, []string{name}) {
			addError(report, path, "type", "expected type "+name+", got "+typeNameOf(instance), instance)
		}
		return nil
	}

	if schema.kind != KindObject {
		return &InvalidSchema{Msg: "schema must be a string or an object", Path: schemaPath}
	}
	so := schema.Object()

	if nv, ok := so.Get("nullable"); ok {
		nullable, err := nv.TryBool()
		if err != nil {
			return &InvalidSchema{Msg: "nullable must be a bool", Path: schemaPath}
		}
		if nullable && instance.IsNull() {
			return nil
		}
	}

	if tv, ok := so.Get("type"); ok {
		names, err := typeNames(tv, schemaPath)
		if err != nil {
			return err
		}
		if !typeMatches(instance, names) {
			addError(report, path, "type", fmt.Sprintf("expected type %v, got %s", names, typeNameOf(instance)), instance)
		}
	}

	switch instance.kind {
	case KindInt:
		if err := checkInt(instance, so, path, report); err != nil {
			return err
		}
	case KindFloat:
		if err := checkFloat(instance, so, path, report); err != nil {
			return err
		}
	case KindString:
		if err := checkString(instance, so, path, report); err != nil {
			return err
		}
	case KindArray:
		if err := checkArray(instance, so, path, report); err != nil {
			return err
		}
	case KindObject:
		if err := checkObject(instance, so, path, report); err != nil {
			return err
		}
	}

	if err := checkCombinators(instance, so, path, report); err != nil {
		return err
	}
	return nil
}

func intBound(so *Object, key string, path string) (int64, bool, error) {
	v, ok := so.Get(key)
	if !ok {
		return 0, false, nil
	}
	n, err := v.TryInt()
	if err != nil {
		return 0, false, &InvalidSchema{Msg: key + " must be an int", Path: path}
	}
	return n, true, nil
}

func floatBound(so *Object, key string, path string) (float64, bool, error) {
	v, ok := so.Get(key)
	if !ok {
		return 0, false, nil
	}
	f, err := v.TryFloat()
	if err != nil {
		return 0, false, &InvalidSchema{Msg: key + " must be a float", Path: path}
	}
	return f, true, nil
}

func checkInt(instance Value, so *Object, path pointer.Path, report *Object) error {
	n := instance.Int()
	if minV, ok, err := intBound(so, "minInt", path.String()); err != nil {
		return err
	} else if ok && n < minV {
		addError(report, path, "minInt", fmt.Sprintf("%d is less than minimum %d", n, minV), instance)
	}
	if maxV, ok, err := intBound(so, "maxInt", path.String()); err != nil {
		return err
	} else if ok && n > maxV {
		addError(report, path, "maxInt", fmt.Sprintf("%d is greater than maximum %d", n, maxV), instance)
	}
	return nil
}

func checkFloat(instance Value, so *Object, path pointer.Path, report *Object) error {
	f := instance.Float()
	if minV, ok, err := floatBound(so, "minFloat", path.String()); err != nil {
		return err
	} else if ok && f < minV {
		addError(report, path, "minFloat", fmt.Sprintf("%v is less than minimum %v", f, minV), instance)
	}
	if maxV, ok, err := floatBound(so, "maxFloat", path.String()); err != nil {
		return err
	} else if ok && f > maxV {
		addError(report, path, "maxFloat", fmt.Sprintf("%v is greater than maximum %v", f, maxV), instance)
	}
	return nil
}

func checkString(instance Value, so *Object, path pointer.Path, report *Object) error {
	s := instance.String()
	if minV, ok, err := intBound(so, "minLen", path.String()); err != nil {
		return err
	} else if ok && int64(len(s)) < minV {
		addError(report, path, "minLen", fmt.Sprintf("length %d is less than minimum %d", len(s), minV), instance)
	}
	if maxV, ok, err := intBound(so, "maxLen", path.String()); err != nil {
		return err
	} else if ok && int64(len(s)) > maxV {
		addError(report, path, "maxLen", fmt.Sprintf("length %d is greater than maximum %d", len(s), maxV), instance)
	}
	if pv, ok := so.Get("pattern"); ok {
		pat, err := pv.TryString()
		if err != nil {
			return &InvalidSchema{Msg: "pattern must be a string", Path: path.String()}
		}
		re, err := regexp.Compile(`\A(?:` + pat + `)\z`)
		if err != nil {
			return &InvalidSchema{Msg: "invalid pattern: " + err.Error(), Path: path.String()}
		}
		if !re.MatchString(s) {
			addError(report, path, "pattern", fmt.Sprintf("%q does not match pattern %q", s, pat), instance)
		}
	}
	return nil
}

func checkArray(instance Value, so *Object, path pointer.Path, report *Object) error {
	items := instance.Array().Items()
	if minV, ok, err := intBound(so, "minSize", path.String()); err != nil {
		return err
	} else if ok && int64(len(items)) < minV {
		addError(report, path, "minSize", fmt.Sprintf("size %d is less than minimum %d", len(items), minV), instance)
	}
	if maxV, ok, err := intBound(so, "maxSize", path.String()); err != nil {
		return err
	} else if ok && int64(len(items)) > maxV {
		addError(report, path, "maxSize", fmt.Sprintf("size %d is greater than maximum %d", len(items), maxV), instance)
	}
	if iv, ok := so.Get("items"); ok {
		for i, elem := range items {
			if err := validateNode(elem, iv, path.Append(pointer.Elem(i)), report); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkObject(instance Value, so *Object, path pointer.Path, report *Object) error {
	obj := instance.Object()
	if minV, ok, err := intBound(so, "minProps", path.String()); err != nil {
		return err
	} else if ok && int64(obj.Len()) < minV {
		addError(report, path, "minProps", fmt.Sprintf("property count %d is less than minimum %d", obj.Len(), minV), instance)
	}
	if maxV, ok, err := intBound(so, "maxProps", path.String()); err != nil {
		return err
	} else if ok && int64(obj.Len()) > maxV {
		addError(report, path, "maxProps", fmt.Sprintf("property count %d is greater than maximum %d", obj.Len(), maxV), instance)
	}

	propsVal, hasProps := so.Get("props")
	var propsObj *Object
	if hasProps {
		po, err := propsVal.TryObject()
		if err != nil {
			return &InvalidSchema{Msg: "props must be an object", Path: path.String()}
		}
		propsObj = po
		for _, pm := range propsObj.Members() {
			sub := pm.Value
			optional := false
			if sub.kind == KindObject {
				if ov, ok := sub.Object().Get("optional"); ok {
					b, err := ov.TryBool()
					if err != nil {
						return &InvalidSchema{Msg: "optional must be a bool", Path: path.Append(pointer.Member(pm.Key)).String()}
					}
					optional = b
				}
			}
			childVal, present := obj.Get(pm.Key)
			childPath := path.Append(pointer.Member(pm.Key))
			if !present {
				if !optional {
					addError(report, childPath, "required", "missing required property "+fmt.Sprintf("%q", pm.Key), Null)
				}
				continue
			}
			if err := validateNode(childVal, sub, childPath, report); err != nil {
				return err
			}
		}
	}

	extrasAllowed := false
	if ev, ok := so.Get("extras"); ok {
		b, err := ev.TryBool()
		if err != nil {
			return &InvalidSchema{Msg: "extras must be a bool", Path: path.String()}
		}
		extrasAllowed = b
	}
	if !extrasAllowed {
		for _, m := range obj.Members() {
			if propsObj != nil && propsObj.Has(m.Key) {
				continue
			}
			if propsObj == nil && !hasProps {
				// No props keyword at all: extras has nothing to restrict
				// against, so every property is implicitly allowed.
				continue
			}
			addError(report, path.Append(pointer.Member(m.Key)), "extras", "unexpected property "+fmt.Sprintf("%q", m.Key), m.Value)
		}
	}
	return nil
}

func checkCombinators(instance Value, so *Object, path pointer.Path, report *Object) error {
	if av, ok := so.Get("anyOf"); ok {
		schemas, err := subSchemaList(av, "anyOf", path.String())
		if err != nil {
			return err
		}
		matched := 0
		for _, s := range schemas {
			sub := NewObjectData()
			if err := validateNode(instance, s, path, sub); err != nil {
				return err
			}
			if sub.Len() == 0 {
				matched++
			}
		}
		if matched == 0 {
			addError(report, path, "anyOf", "no alternative schema validated", instance)
		}
	}

	if ov, ok := so.Get("oneOf"); ok {
		schemas, err := subSchemaList(ov, "oneOf", path.String())
		if err != nil {
			return err
		}
		matched := 0
		for _, s := range schemas {
			sub := NewObjectData()
			if err := validateNode(instance, s, path, sub); err != nil {
				return err
			}
			if sub.Len() == 0 {
				matched++
			}
		}
		if matched != 1 {
			addError(report, path, "oneOf", fmt.Sprintf("%d alternative schemas validated, expected exactly 1", matched), instance)
		}
	}

	if av, ok := so.Get("allOf"); ok {
		schemas, err := subSchemaList(av, "allOf", path.String())
		if err != nil {
			return err
		}
		for _, s := range schemas {
			if err := validateNode(instance, s, path, report); err != nil {
				return err
			}
		}
	}

	if nv, ok := so.Get("not"); ok {
		switch nv.kind {
		case KindArray:
			for _, s := range nv.Array().Items() {
				sub := NewObjectData()
				if err := validateNode(instance, s, path, sub); err != nil {
					return err
				}
				if sub.Len() == 0 {
					addError(report, path, "not", "a disallowed schema validated", instance)
				}
			}
		default:
			sub := NewObjectData()
			if err := validateNode(instance, nv, path, sub); err != nil {
				return err
			}
			if sub.Len() == 0 {
				addError(report, path, "not", "the disallowed schema validated", instance)
			}
		}
	}
	return nil
}

// subSchemaList extracts an array of sub-schemas from a combinator
// keyword's value.
func subSchemaList(v Value, keyword, path string) ([]Value, error) {
	a, err := v.TryArray()
	if err != nil {
		return nil, &InvalidSchema{Msg: keyword + " must be an array of schemas", Path: path}
	}
	return a.Items(), nil
}

// ToErrorList renders a Validate report object as an Array of
// "path: {message: ..., ...}"-style strings, one per report entry, sorted
// by key for determinism.
func ToErrorList(report Value) Value {
	if report.IsNull() {
		return NewArray()
	}
	members := append([]Member(nil), report.Object().Members()...)
	sort.Slice(members, func(i, j int) bool { return members[i].Key < members[j].Key })
	out := NewArrayData()
	for _, m := range members {
		out.Push(NewString(m.Key + ": " + Dump(m.Value, CompactIndent())))
	}
	return Value{kind: KindArray, payload: out}
}
