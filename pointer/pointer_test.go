package pointer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonfmt/jon/pointer"
)

func TestParseAndString(t *testing.T) {
	tests := []string{"", "/a", "/a/0/b", "/a~1b", "/a~0b"}
	for _, s := range tests {
		p, err := pointer.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("Parse(%q).String(): got %q, want %q", s, got, s)
		}
	}
}

func TestParseIndexVsMember(t *testing.T) {
	p, err := pointer.Parse("/a/0/01")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// "01" has a leading zero, so it is not a valid index and is kept as a
	// literal member name instead.
	want := pointer.Path{pointer.Member("a"), pointer.Elem(0), pointer.Member("01")}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Parse(/a/0/01): diff (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMissingLeadingSlash(t *testing.T) {
	if _, err := pointer.Parse("a/b"); err == nil {
		t.Error("Parse: expected a *pointer.SyntaxError for a path missing its leading slash")
	}
}

func TestAppend(t *testing.T) {
	base, _ := pointer.Parse("/a")
	extended := base.Append(pointer.Elem(3))
	if extended.String() != "/a/3" {
		t.Errorf("Append: got %q, want %q", extended.String(), "/a/3")
	}
	if base.String() != "/a" {
		t.Errorf("Append: mutated the receiver, got %q", base.String())
	}
}
