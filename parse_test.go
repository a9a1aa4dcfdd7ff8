package jon_test

import (
	"bytes"
	"testing"

	"github.com/jonfmt/jon"
)

func TestParseBareObjectRoot(t *testing.T) {
	v, err := jon.Parse(`name: 'demo', count: 3`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	name, err := v.At("name")
	if err != nil || name.String() != "demo" {
		t.Fatalf("At(name): got (%v, %v), want (demo, nil)", name, err)
	}
}

func TestParseCommentsAndTrailingCommas(t *testing.T) {
	src := `[
		1, // one
		2,
		3,
	]`
	v, err := jon.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := v.Array().Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
}

func TestParseRefResolutionByKey(t *testing.T) {
	v, err := jon.Parse(`base: 10, derived: $base`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	derived, err := v.At("derived")
	if err != nil || derived.Int() != 10 {
		t.Fatalf("At(derived): got (%v, %v), want (10, nil)", derived, err)
	}
}

func TestParseRefResolutionByPointer(t *testing.T) {
	v, err := jon.Parse(`a: {b: 1}, c: $/a/b`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, err := v.At("c")
	if err != nil || c.Int() != 1 {
		t.Fatalf("At(c): got (%v, %v), want (1, nil)", c, err)
	}
}

func TestParseCyclicRefIsError(t *testing.T) {
	_, err := jon.Parse(`a: $b, b: $a`)
	if err == nil {
		t.Error("Parse: expected a cyclic reference error")
	}
}

func TestParseUnresolvedRefIsError(t *testing.T) {
	_, err := jon.Parse(`a: $missing`)
	if err == nil {
		t.Error("Parse: expected an unresolved reference error")
	}
}

func TestParseExtraInputAfterRootIsError(t *testing.T) {
	_, err := jon.Parse(`1 2`)
	if err == nil {
		t.Fatal("Parse: expected an error for extra input after a scalar root")
	}
	if _, ok := err.(*jon.ParseError); !ok {
		t.Fatalf("Parse: got error of type %T, want *jon.ParseError", err)
	}
}

func TestParseRoundTripsThroughDump(t *testing.T) {
	src := `{a: 1, b: [2, 3], c: 'x'}`
	v, err := jon.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text := jon.Dump(v, jon.CompactIndent())
	v2, err := jon.Parse(text)
	if err != nil {
		t.Fatalf("Parse(round trip): %v", err)
	}
	if !v.Equal(v2) {
		t.Errorf("round trip mismatch: %s vs %s", jon.Dump(v, jon.CompactIndent()), jon.Dump(v2, jon.CompactIndent()))
	}
}

func TestParseDebugWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := jon.Parse(`1`, jon.WithDebugWriter(&buf))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Parse(debug): expected debug output to be written")
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := jon.Parse(`[[[[[1]]]]]`, jon.WithMaxDepth(2))
	if err == nil {
		t.Error("Parse: expected a depth-limit error")
	}
}
