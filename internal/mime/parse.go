// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"mediatype/internal/pkg/null"
)

// Parse parses s as an exact media type. Wildcard forms like "*/*" or
// "text/*" are rejected with ErrInvalidRange or an InvalidTokenError.
func Parse(s string) (Mime, error) {
	return parse(s, false)
}

// ParseRange parses s as a media range: the subtype may be the single
// character "*", and the literal "*/*" is accepted as a whole.
func ParseRange(s string) (Mime, error) {
	return parse(s, true)
}

// The grammar is the permissive media-type grammar of
// RFC 7231 section 3.1.1.1:
//
//	media-type = type "/" subtype *( OWS ";" OWS parameter )
//	type       = token
//	subtype    = token
//	parameter  = token "=" ( token / quoted-string )
//
// with a space also accepted as a subtype/value terminator and empty
// parameters ("a/b;;" or a trailing ";") skipped rather than rejected.
func parse(s string, canRange bool) (Mime, error) {
	if len(s) > maxLength {
		return Mime{}, ErrTooLong
	}

	if s == "*/*" {
		if canRange {
			return StarStar, nil
		}
		return Mime{}, ErrInvalidRange
	}

	// top-level type
	var slash int
	i := 0
	for {
		if i == len(s) {
			return Mime{}, ErrMissingSlash
		}
		c := s[i]
		if isToken(c) {
			i++
			continue
		}
		if c == '/' && i > 0 {
			slash = i
			i++
			break
		}
		return Mime{}, &InvalidTokenError{Pos: i, Byte: c}
	}

	// subtype
	start := i
	var plus null.Null[uint16]
subtype:
	for {
		if i == len(s) {
			return Mime{
				source: intern(s, slash),
				slash:  uint16(slash),
				plus:   plus,
			}, nil
		}
		c := s[i]
		switch {
		case c == '+' && i > start:
			// only the offset of the last '+' is kept, earlier ones
			// become part of the subtype text
			plus = null.New(uint16(i))
			i++
		case (c == ';' || c == ' ') && i > start:
			start = i
			break subtype
		case c == '*' && i == start && canRange:
			// a wildcard subtype must end the essence
			i++
			if i == len(s) {
				return Mime{
					source: intern(s, slash),
					slash:  uint16(slash),
					plus:   plus,
				}, nil
			}
			if c := s[i]; c == ';' || c == ' ' {
				start = i
				break subtype
			}
			return Mime{}, &InvalidTokenError{Pos: i, Byte: s[i]}
		case isToken(c):
			i++
		default:
			return Mime{}, &InvalidTokenError{Pos: i, Byte: c}
		}
	}

	params, err := scanParams(s, start)
	if err != nil {
		return Mime{}, err
	}

	var src source
	switch params.kind {
	case paramsNone:
		// there was a ';' (or a space), but no parameters after it, so
		// chop off the empty list
		src = intern(s[:start], slash)
	case paramsUtf8:
		src = internCharsetUTF8(s, slash, int(params.start))
	case paramsOne:
		src = dynamic(lowerWithParams(s, int(params.start), []indexedPair{params.a}))
	case paramsTwo:
		src = dynamic(lowerWithParams(s, int(params.start), []indexedPair{params.a, params.b}))
	default:
		src = dynamic(lowerWithParams(s, int(params.start), params.more))
	}

	return Mime{
		source: src,
		slash:  uint16(slash),
		plus:   plus,
		params: params,
	}, nil
}

// scanParams consumes the parameter region. start is the offset of the
// byte that terminated the subtype (';' or ' ').
func scanParams(s string, semicolon int) (paramSource, error) {
	params := paramSource{kind: paramsNone, start: uint16(semicolon)}
	start := semicolon + 1
	i := start

nextParam:
	for start < len(s) {
		var name indexed
		for {
			if i == len(s) {
				return paramSource{}, ErrMissingEqual
			}
			c := s[i]
			switch {
			case (c == ' ' || c == ';') && i == start:
				// optional whitespace, or an empty parameter
				i++
				start = i
				continue nextParam
			case c == '=' && i > start:
				name = indexed{uint16(start), uint16(i)}
				i++
				start = i
			case isToken(c):
				i++
				continue
			default:
				return paramSource{}, &InvalidTokenError{Pos: i, Byte: c}
			}
			break
		}

		var value indexed
		quoted := false
		quotedPair := false
	valueLoop:
		for {
			if i == len(s) {
				if quoted {
					return paramSource{}, ErrMissingQuote
				}
				value = indexed{uint16(start), uint16(len(s))}
				start = len(s)
				break valueLoop
			}
			c := s[i]
			if quoted {
				switch {
				case quotedPair:
					quotedPair = false
					if !isRestrictedQuotedChar(c) {
						return paramSource{}, &InvalidTokenError{Pos: i, Byte: c}
					}
					i++
				case c == '"' && i > start:
					value = indexed{uint16(start), uint16(i + 1)}
					i++
					start = i
					break valueLoop
				case c == '\\':
					quotedPair = true
					i++
				case isRestrictedQuotedChar(c):
					i++
				default:
					return paramSource{}, &InvalidTokenError{Pos: i, Byte: c}
				}
			} else {
				switch {
				case c == '"' && i == start:
					quoted = true
					i++
				case (c == ';' || c == ' ') && i > start:
					value = indexed{uint16(start), uint16(i)}
					i++
					start = i
					break valueLoop
				case isToken(c):
					i++
				default:
					return paramSource{}, &InvalidTokenError{Pos: i, Byte: c}
				}
			}
		}

		params = params.push(s, name, value)
	}

	return params, nil
}

// tokenTable marks RFC 7231 tchar bytes. '*' is handled structurally by
// the wildcard rules and is deliberately absent here.
var tokenTable = [256]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true,
	'+': true, '-': true, '.': true, '^': true, '_': true, '`': true,
	'|': true, '~': true,

	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,

	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,

	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
	'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
	's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
}

func isToken(c byte) bool {
	return tokenTable[c]
}

// qdtext / quoted-pair target set: HTAB plus every visible byte except
// DEL, non-ASCII bytes included.
func isRestrictedQuotedChar(c byte) bool {
	return c == '\t' || (c > 31 && c != 127)
}
