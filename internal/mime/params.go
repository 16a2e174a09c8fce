// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"strings"
)

const (
	charsetName  = "charset"
	utf8Value    = "utf-8"
	charsetUTF8  = "; charset=utf-8"
	qName        = "q"
	wildcardName = "*"
)

// indexed is a half-open byte span into a Mime source string.
type indexed struct {
	start uint16
	end   uint16
}

type indexedPair struct {
	name  indexed
	value indexed
}

type paramKind uint8

// The shapes are chosen so the common cases (no parameters at all, a
// single "charset=utf-8") never allocate.
const (
	paramsNone paramKind = iota
	// exactly "; charset=utf-8", position and content implied by kind
	paramsUtf8
	paramsOne
	paramsTwo
	paramsCustom
)

type paramSource struct {
	kind  paramKind
	start uint16 // offset of the ';' (or space) introducing the list
	a, b  indexedPair
	more  []indexedPair // paramsCustom only, always len >= 3
}

// push folds one scanned (name, value) pair into the shape. Promotion
// order: None -> Utf8 or One, Utf8 -> Two (re-materializing the implied
// charset pair), One -> Two, Two -> Custom, Custom -> append.
func (p paramSource) push(s string, name, value indexed) paramSource {
	pair := indexedPair{name: name, value: value}

	switch p.kind {
	case paramsNone:
		// the Utf8 shape requires the exact "; charset=utf-8" layout,
		// anything else gets explicit spans
		if int(p.start)+2 == int(name.start) &&
			strings.EqualFold(charsetName, s[name.start:name.end]) &&
			strings.EqualFold(utf8Value, s[value.start:value.end]) {
			p.kind = paramsUtf8
			return p
		}
		p.kind = paramsOne
		p.a = pair
	case paramsUtf8:
		base := p.start + 2
		charset := indexed{base, base + uint16(len(charsetName))}
		utf8 := indexed{charset.end + 1, charset.end + 1 + uint16(len(utf8Value))}
		p.kind = paramsTwo
		p.a = indexedPair{name: charset, value: utf8}
		p.b = pair
	case paramsOne:
		p.kind = paramsTwo
		p.b = pair
	case paramsTwo:
		p.kind = paramsCustom
		p.more = []indexedPair{p.a, p.b, pair}
	default:
		p.more = append(p.more, pair)
	}

	return p
}

func (p paramSource) count() int {
	switch p.kind {
	case paramsNone:
		return 0
	case paramsUtf8, paramsOne:
		return 1
	case paramsTwo:
		return 2
	default:
		return len(p.more)
	}
}

// Params is a forward-only iterator over the parameters of a Mime.
// It is finite and cannot be restarted; obtain a fresh one from
// Mime.Params.
type Params struct {
	src  string
	kind paramKind
	a, b indexedPair
	more []indexedPair
}

// Next yields the next (name, value) pair. The value is the raw
// representation, quotes included; see Value for content access.
func (it *Params) Next() (name, value string, ok bool) {
	switch it.kind {
	case paramsUtf8:
		// synthesized without touching the source at all
		it.kind = paramsNone
		return charsetName, utf8Value, true
	case paramsOne:
		it.kind = paramsNone
		return it.pair(it.a)
	case paramsTwo:
		it.kind = paramsOne
		pair := it.a
		it.a = it.b
		return it.pair(pair)
	case paramsCustom:
		if len(it.more) == 0 {
			return "", "", false
		}
		pair := it.more[0]
		it.more = it.more[1:]
		return it.pair(pair)
	default:
		return "", "", false
	}
}

// Len reports the exact number of pairs Next has yet to yield, without
// consuming any of them.
func (it *Params) Len() int {
	switch it.kind {
	case paramsNone:
		return 0
	case paramsUtf8, paramsOne:
		return 1
	case paramsTwo:
		return 2
	default:
		return len(it.more)
	}
}

func (it *Params) pair(p indexedPair) (string, string, bool) {
	return it.src[p.name.start:p.name.end], it.src[p.value.start:p.value.end], true
}
