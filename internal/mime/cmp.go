// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import "strings"

// Equal reports whether two values denote the same media type: same
// essence under ASCII case folding and the same parameter set, order
// never mattering. Parameter names compare case-insensitively, values
// case-sensitively except charset.
func (m Mime) Equal(o Mime) bool {
	// two interned values are equal iff they are the same table entry
	if m.source.atom != atomDynamic && o.source.atom != atomDynamic {
		return m.source.atom == o.source.atom
	}
	if !strings.EqualFold(m.Essence(), o.Essence()) {
		return false
	}
	return equalParams(m, o)
}

func equalParams(m, o Mime) bool {
	mk, ok := m.params.kind, o.params.kind
	// nothing can equal an empty list except another empty list
	if mk == paramsNone || ok == paramsNone {
		return mk == ok
	}
	if mk == paramsUtf8 && ok == paramsUtf8 {
		return true
	}
	if m.params.count() != o.params.count() {
		return false
	}
	// same length, so containment one way is equality
	it := m.Params()
	for name, raw, more := it.Next(); more; name, raw, more = it.Next() {
		v, found := o.Param(name)
		if !found || !paramValue(name, raw).Equal(v) {
			return false
		}
	}
	return true
}

// EqualString reports whether m equals the media type denoted by s.
// A malformed s is simply not equal; parsing problems never surface.
func (m Mime) EqualString(s string) bool {
	if m.HasParams() {
		o, err := ParseRange(s)
		if err != nil {
			return false
		}
		return m.Equal(o)
	}
	return strings.EqualFold(m.source.s, s)
}

// Match reports whether the media type mt falls within the range m.
// "*/*" admits every type, "text/*" every text subtype. Parameters on
// the range, except the HTTP weight parameter "q", must be present on
// mt with equal values.
func (m Mime) Match(mt Mime) bool {
	switch {
	case m.Type() == wildcardName:
		// */*
	case !strings.EqualFold(m.Type(), mt.Type()):
		return false
	case m.Subtype() == wildcardName:
		// text/*
	case !strings.EqualFold(m.Subtype(), mt.Subtype()):
		return false
	}

	it := m.Params()
	for name, raw, more := it.Next(); more; name, raw, more = it.Next() {
		if strings.EqualFold(name, qName) {
			continue
		}
		v, found := mt.Param(name)
		if !found || !paramValue(name, raw).Equal(v) {
			return false
		}
	}
	return true
}
