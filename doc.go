// Package jon implements a human-friendly, JSON-superset data format.
//
// # Parsing
//
// Parse accepts text using optional punctuation, comments, multi-line
// strings, based numeric literals, signed non-finite floats, and document
// references, and returns a typed Value tree:
//
//	v, err := jon.Parse(`name: 'demo', count: 3`)
//	if err != nil {
//	    log.Fatalf("parse failed: %v", err)
//	}
//
// Parse errors are of concrete type *ParseError and carry a source excerpt
// with a caret pointing at the offending column.
//
// # Values
//
// A Value is a tagged variant over seven runtime types: Null, Bool, Int,
// Float, String, Object, and Array. Typed accessors such as Value.Int and
// Value.Object panic with a *TypeError on a tag mismatch; the TryInt,
// TryObject, and similar variants return an error instead. Use Value.At and
// Value.AtIndex to navigate objects and arrays, and Value.Push to append to
// an array.
//
// # Validation
//
// Validate checks an instance Value against a schema Value expressed in the
// same format, and returns a report Value (Null if the instance conforms):
//
//	report, err := jon.Validate(instance, schema)
//	if err != nil {
//	    log.Fatalf("bad schema: %v", err)
//	}
//	if !report.IsNull() {
//	    fmt.Println(jon.Dump(jon.ToErrorList(report), jon.PrettyIndent("  ")))
//	}
//
// # Serialisation
//
// Dump renders a Value back to text, either compactly or pretty-printed
// according to an Indent descriptor.
package jon
