package ast_test

import (
	"strings"
	"testing"

	"github.com/jonfmt/jon/ast"
)

func TestParseBareObject(t *testing.T) {
	v, err := ast.Parse(`name: 'demo', count: 3`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Parse: got %T, want *ast.Object", v)
	}
	if len(obj.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(obj.Members))
	}
	if obj.Members[0].Key != "name" || obj.Members[1].Key != "count" {
		t.Errorf("got keys %q, %q, want name, count", obj.Members[0].Key, obj.Members[1].Key)
	}
}

func TestParseBareVsBracedEquivalence(t *testing.T) {
	bare, err := ast.Parse(`a: 1, b: 2`)
	if err != nil {
		t.Fatalf("Parse(bare): %v", err)
	}
	braced, err := ast.Parse(`{a: 1, b: 2}`)
	if err != nil {
		t.Fatalf("Parse(braced): %v", err)
	}
	bo := bare.(*ast.Object)
	co := braced.(*ast.Object)
	if len(bo.Members) != len(co.Members) {
		t.Fatalf("member count mismatch: %d vs %d", len(bo.Members), len(co.Members))
	}
	for i := range bo.Members {
		if bo.Members[i].Key != co.Members[i].Key {
			t.Errorf("member %d key mismatch: %q vs %q", i, bo.Members[i].Key, co.Members[i].Key)
		}
	}
}

func TestParseMixedBareAndBracesIsError(t *testing.T) {
	// Once bare-object form is chosen, a trailing brace is extra input.
	if _, err := ast.Parse(`a: 1 }`); err == nil {
		t.Error("Parse: expected an error for a stray closing brace after a bare root")
	}
}

func TestParseSeparatorPermissiveness(t *testing.T) {
	variants := []string{
		"[1, 2, 3]",
		"[1\n2\n3]",
		"[1,\n2,\n3]",
		"[\n1,\n2,\n3,\n]",
	}
	var want *ast.Array
	for i, src := range variants {
		v, err := ast.Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		arr := v.(*ast.Array)
		if i == 0 {
			want = arr
			continue
		}
		if len(arr.Elems) != len(want.Elems) {
			t.Fatalf("Parse(%q): got %d elements, want %d", src, len(arr.Elems), len(want.Elems))
		}
		for j := range arr.Elems {
			if arr.Elems[j].(*ast.Int).Value != want.Elems[j].(*ast.Int).Value {
				t.Errorf("Parse(%q): element %d mismatch", src, j)
			}
		}
	}
}

func TestParseBasedIntKeyHasNoPrefix(t *testing.T) {
	v, err := ast.Parse(`{0x2A: 1}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := v.(*ast.Object)
	if len(obj.Members) != 1 || obj.Members[0].Key != "2A" {
		t.Fatalf("Parse({0x2A: 1}): got key %q, want %q", obj.Members[0].Key, "2A")
	}
}

func TestParseNumericOverflowIsParseError(t *testing.T) {
	_, err := ast.Parse("99999999999999999999999")
	if err == nil {
		t.Fatal("Parse: expected an error for an out-of-range integer literal")
	}
}

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		src  string
		want string // formatted with %T
	}{
		{"null", "*ast.Null"},
		{"true", "*ast.Bool"},
		{"42", "*ast.Int"},
		{"0x2A", "*ast.Int"},
		{"3.5", "*ast.Float"},
		{"nan", "*ast.Float"},
		{"inf", "*ast.Float"},
		{"'hi'", "*ast.String"},
		{"$ref", "*ast.Ref"},
		{"[1,2]", "*ast.Array"},
		{"{a: 1}", "*ast.Object"},
	}
	for _, tc := range tests {
		v, err := ast.Parse(tc.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.src, err)
		}
		got := typeName(v)
		if got != tc.want {
			t.Errorf("Parse(%q): got %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 5) + "1" + strings.Repeat("]", 5)
	if _, err := ast.Parse(deep, ast.WithMaxDepth(3)); err == nil {
		t.Error("Parse: expected a depth-limit error")
	}
	if _, err := ast.Parse(deep, ast.WithMaxDepth(10)); err != nil {
		t.Errorf("Parse: unexpected error under a generous depth limit: %v", err)
	}
}

func typeName(v ast.Value) string {
	switch v.(type) {
	case *ast.Null:
		return "*ast.Null"
	case *ast.Bool:
		return "*ast.Bool"
	case *ast.Int:
		return "*ast.Int"
	case *ast.Float:
		return "*ast.Float"
	case *ast.String:
		return "*ast.String"
	case *ast.Ref:
		return "*ast.Ref"
	case *ast.Array:
		return "*ast.Array"
	case *ast.Object:
		return "*ast.Object"
	default:
		return "unknown"
	}
}
