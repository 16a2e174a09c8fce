// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"strings"

	"mediatype/internal/pkg/unsafe"
)

// Value is one parameter value, quoting preserved. Values compare by
// content: quotes and backslash escapes are transparent, and charset
// values additionally compare case-insensitively.
type Value struct {
	source      string
	insensitive bool
}

// UTF8 is the value of the charset parameter in constants such as
// TextPlainUTF8. It compares equal to "utf-8", "UTF-8", and
// `"Utf-8"` alike.
var UTF8 = Value{source: utf8Value, insensitive: true}

// paramValue wraps a raw parameter value as scanned from the source.
// Charset values are marked case-insensitive.
func paramValue(name, raw string) Value {
	return Value{source: raw, insensitive: strings.EqualFold(name, charsetName)}
}

// Raw returns the value exactly as it appeared in the source, quotes
// and escapes included.
func (v Value) Raw() string {
	return v.source
}

// Content returns the value with surrounding quotes stripped and
// quoted-pair escapes resolved. Unquoted values come back as-is.
func (v Value) Content() string {
	s := v.source
	if len(s) < 2 || s[0] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	buf := make([]byte, 0, len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		if !escaped && s[i] == '\\' {
			escaped = true
			continue
		}
		escaped = false
		buf = append(buf, s[i])
	}
	return unsafe.Str(buf)
}

// Equal reports whether two values have the same content. Comparison is
// case-insensitive when either side is a charset value.
func (v Value) Equal(o Value) bool {
	if v.insensitive || o.insensitive {
		return strings.EqualFold(v.Content(), o.Content())
	}
	return v.Content() == o.Content()
}

// EqualString reports whether the value's content equals s.
func (v Value) EqualString(s string) bool {
	if v.insensitive {
		return strings.EqualFold(v.Content(), s)
	}
	return v.Content() == s
}

func (v Value) String() string {
	return v.Content()
}
