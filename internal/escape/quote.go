// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of string payloads for serialisation.
package escape

import "go4.org/mem"

// controlEsc maps a control byte to the letter following a backslash in its
// short escape form, or 0 if the byte has no short form.
var controlEsc = [256]byte{
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\b': 'b',
	'\f': 'f',
	'\v': 'v',
}

var hexDigit = []byte("0123456789abcdef")

// Quote escapes src for inclusion between quote marks in a dumped string,
// using the short escapes above and \xHH for any other byte below 0x20.
// Bytes at or above 0x20, including multi-byte UTF-8 sequences, pass
// through unchanged: this operates on raw bytes and never decodes runes.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if esc := controlEsc[b]; esc != 0 {
			buf = append(buf, '\\', esc)
			continue
		}
		if b < 0x20 {
			buf = append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&0xf])
			continue
		}
		buf = append(buf, b)
	}
	return buf
}
