package jon

import "fmt"

// typeNameOf maps a Value's runtime Kind to the type name used in schema
// "type" keywords.
func typeNameOf(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "any"
	}
}

var validTypeNames = map[string]bool{
	"null": true, "bool": true, "int": true, "float": true,
	"string": true, "object": true, "array": true, "any": true,
}

// typeNames normalises a schema's "type" field, which may be a single
// string or an array of strings, into a slice of names. It fails with
// *InvalidSchema if any name is unrecognised or the list is empty.
func typeNames(v Value, path string) ([]string, error) {
	switch v.kind {
	case KindString:
		name := v.String()
		if !validTypeNames[name] {
			return nil, &InvalidSchema{Msg: "unknown type name " + fmt.Sprintf("%q", name), Path: path}
		}
		return []string{name}, nil
	case KindArray:
		items := v.Array().Items()
		if len(items) == 0 {
			return nil, &InvalidSchema{Msg: "type list must not be empty", Path: path}
		}
		names := make([]string, len(items))
		for i, item := range items {
			if item.kind != KindString {
				return nil, &InvalidSchema{Msg: "type list entries must be strings", Path: path}
			}
			if !validTypeNames[item.String()] {
				return nil, &InvalidSchema{Msg: "unknown type name " + fmt.Sprintf("%q", item.String()), Path: path}
			}
			names[i] = item.String()
		}
		return names, nil
	default:
		return nil, &InvalidSchema{Msg: "type must be a string or array of strings", Path: path}
	}
}

// typeMatches reports whether instance's runtime type is listed in names,
// honoring the "any" wildcard.
func typeMatches(instance Value, names []string) bool {
	actual := typeNameOf(instance)
	for _, n := range names {
		if n == "any" || n == actual {
			return true
		}
	}
	return false
}
