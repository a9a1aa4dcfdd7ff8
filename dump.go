package jon

import (
	"math"
	"strconv"
	"strings"
)

// Indent describes how Dump lays out nested containers. Level == -1 means
// compact: no inter-token whitespace at all. Otherwise each nesting level
// is indented by Level copies of Unit, mirroring the original's
// Indent{val, size} pair and the teacher's jwcc.Formatter indent-string
// convention.
type Indent struct {
	Unit  string
	Level int
}

// CompactIndent returns the compact Indent.
func CompactIndent() Indent { return Indent{Level: -1} }

// PrettyIndent returns an Indent that renders one entry per line with unit
// repeated per nesting level, starting at level 0.
func PrettyIndent(unit string) Indent { return Indent{Unit: unit, Level: 0} }

func (in Indent) compact() bool { return in.Level < 0 }

func (in Indent) nested() Indent {
	if in.compact() {
		return in
	}
	return Indent{Unit: in.Unit, Level: in.Level + 1}
}

func (in Indent) prefix() string {
	if in.compact() || in.Level == 0 {
		return ""
	}
	return strings.Repeat(in.Unit, in.Level)
}

// Dump renders v as text using indent.
func Dump(v Value, indent Indent) string {
	var b strings.Builder
	dumpValue(&b, v, indent)
	return b.String()
}

// DumpIndent renders v pretty-printed with unit repeated level times per
// nesting level. A negative level renders compact, matching CompactIndent.
func DumpIndent(v Value, unit string, level int) string {
	return Dump(v, Indent{Unit: unit, Level: level})
}

func dumpValue(b *strings.Builder, v Value, indent Indent) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		dumpFloat(b, v.Float())
	case KindString:
		b.WriteByte('"')
		b.WriteString(Quote(v.String()))
		b.WriteByte('"')
	case KindObject:
		dumpObject(b, v.Object(), indent)
	case KindArray:
		dumpArray(b, v.Array(), indent)
	default:
		b.WriteString("null")
	}
}

func dumpFloat(b *strings.Builder, f float64) {
	switch {
	case math.IsNaN(f):
		b.WriteString("nan")
	case math.IsInf(f, 1):
		b.WriteString("inf")
	case math.IsInf(f, -1):
		b.WriteString("-inf")
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

func dumpObject(b *strings.Builder, o *Object, indent Indent) {
	members := o.Members()
	if len(members) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	inner := indent.nested()
	for i, m := range members {
		writeEntrySep(b, indent, inner, i)
		b.WriteString(m.Key)
		if indent.compact() {
			b.WriteByte(':')
		} else {
			b.WriteString(": ")
		}
		dumpValue(b, m.Value, inner)
	}
	writeClose(b, indent, '}')
}

func dumpArray(b *strings.Builder, a *Array, indent Indent) {
	items := a.Items()
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	inner := indent.nested()
	for i, v := range items {
		writeEntrySep(b, indent, inner, i)
		dumpValue(b, v, inner)
	}
	writeClose(b, indent, ']')
}

func writeEntrySep(b *strings.Builder, outer, inner Indent, i int) {
	if outer.compact() {
		if i > 0 {
			b.WriteByte(',')
		}
		return
	}
	if i > 0 {
		b.WriteByte(',')
	}
	b.WriteByte('\n')
	b.WriteString(inner.prefix())
}

func writeClose(b *strings.Builder, outer Indent, ch byte) {
	if outer.compact() {
		b.WriteByte(ch)
		return
	}
	b.WriteByte('\n')
	b.WriteString(outer.prefix())
	b.WriteByte(ch)
}
