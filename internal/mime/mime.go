// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package mime parses Internet media type strings (RFC 6838 / RFC 7231
// "type/subtype[+suffix][;param=value...]") into a compact value that can
// answer questions about its parts without re-parsing.
//
// Common media types are interned in a fixed table, so parsing
// "application/json" twice yields two values that compare equal with a
// single integer comparison, and Type/Subtype/Suffix are plain substring
// slices of the stored source. Everything else is kept as one lower-cased
// copy of the input plus byte offsets into it.
package mime

import (
	"strings"

	"mediatype/internal/pkg/null"
)

// source is the backing storage of a Mime: either a reference to an
// interned table entry (atom != 0), or an owned, normalized copy of the
// input.
type source struct {
	atom atom
	s    string
}

// Mime is one parsed media type or media range. The zero value is not
// meaningful; obtain one from Parse, ParseRange, or the package
// constants. A Mime is immutable and safe for concurrent use.
type Mime struct {
	source source
	slash  uint16
	plus   null.Null[uint16]
	params paramSource
}

// String returns the normalized form: type, subtype, suffix, parameter
// names, and charset values lower-cased, every other parameter value
// byte-for-byte as given, original quoting included.
func (m Mime) String() string {
	return m.source.s
}

// Type returns the top-level type, e.g. "text" for "text/plain".
func (m Mime) Type() string {
	return m.source.s[:m.slash]
}

// Subtype returns the subtype, suffix included: "svg+xml" for
// "image/svg+xml".
func (m Mime) Subtype() string {
	return m.source.s[m.slash+1 : m.semicolonOrEnd()]
}

// Suffix returns the structured-syntax suffix ("xml" for
// "image/svg+xml") or "" when there is none.
func (m Mime) Suffix() string {
	if !m.plus.Set {
		return ""
	}
	return m.source.s[m.plus.Value+1 : m.semicolonOrEnd()]
}

// Essence returns the type, subtype, and suffix without any parameters.
func (m Mime) Essence() string {
	return m.source.s[:m.semicolonOrEnd()]
}

// HasParams reports whether at least one parameter is present.
func (m Mime) HasParams() bool {
	return m.params.kind != paramsNone
}

// Params returns an iterator over the parameters, in source order.
func (m Mime) Params() Params {
	p := m.params
	return Params{src: m.source.s, kind: p.kind, a: p.a, b: p.b, more: p.more}
}

// Param looks up a parameter by name, case-insensitively.
func (m Mime) Param(name string) (Value, bool) {
	it := m.Params()
	for n, raw, ok := it.Next(); ok; n, raw, ok = it.Next() {
		if strings.EqualFold(n, name) {
			return paramValue(n, raw), true
		}
	}
	return Value{}, false
}

// WithoutParams returns the same essence with the parameter list
// dropped, re-interned so "text/plain; charset=latin1" comes back as
// the "text/plain" table entry.
func (m Mime) WithoutParams() Mime {
	if !m.HasParams() {
		return m
	}
	return Mime{
		source: intern(m.Essence(), int(m.slash)),
		slash:  m.slash,
		plus:   m.plus,
	}
}

func (m Mime) semicolon() null.Null[uint16] {
	if m.params.kind == paramsNone {
		return null.Null[uint16]{}
	}
	return null.New(m.params.start)
}

func (m Mime) semicolonOrEnd() int {
	if sc := m.semicolon(); sc.Set {
		return int(sc.Value)
	}
	return len(m.source.s)
}
