// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"strings"

	"mediatype/internal/pkg/assert"
	"mediatype/internal/pkg/unsafe"
)

// atom identifies an interned media type. Zero means the Mime carries
// its own dynamic string and must be compared structurally.
type atom = uint8

const (
	atomDynamic atom = iota
	atomTextPlain
	atomTextPlainUTF8
	atomTextHTML
	atomTextHTMLUTF8
	atomTextCSS
	atomTextCSSUTF8
	atomTextJavaScript
	atomTextXML
	atomTextEventStream
	atomTextCSV
	atomTextCSVUTF8
	atomTextTabSeparatedValues
	atomTextTabSeparatedValuesUTF8
	atomTextVCard
	atomImageJPEG
	atomImageGIF
	atomImagePNG
	atomImageBMP
	atomImageSVG
	atomFontWoff
	atomFontWoff2
	atomApplicationJSON
	atomApplicationJavaScript
	atomApplicationJavaScriptUTF8
	atomApplicationWWWFormURLEncoded
	atomApplicationOctetStream
	atomApplicationMsgPack
	atomApplicationPDF
	atomApplicationDNS
	atomStarStar
	atomTextStar
	atomImageStar
	atomVideoStar
	atomAudioStar
)

// intern matches an essence (no parameters present) against the table.
// The table entries are lower-case, the candidate is compared as-is, so
// "TEXT/PLAIN" interns without an intermediate lower-cased copy.
func intern(s string, slash int) source {
	assert.Equal(s[slash], '/')

	top := s[:slash]
	sub := s[slash+1:]

	// dispatch on the slash position first: it encodes the top-level
	// type length, which prunes most of the table in one comparison
	switch slash {
	case 4:
		if strings.EqualFold(top, "text") {
			switch len(sub) {
			case 1:
				if sub[0] == '*' {
					return sourceFor(atomTextStar)
				}
			case 3:
				if strings.EqualFold(sub, "css") {
					return sourceFor(atomTextCSS)
				}
				if strings.EqualFold(sub, "xml") {
					return sourceFor(atomTextXML)
				}
				if strings.EqualFold(sub, "csv") {
					return sourceFor(atomTextCSV)
				}
			case 4:
				if strings.EqualFold(sub, "html") {
					return sourceFor(atomTextHTML)
				}
			case 5:
				if strings.EqualFold(sub, "plain") {
					return sourceFor(atomTextPlain)
				}
				if strings.EqualFold(sub, "vcard") {
					return sourceFor(atomTextVCard)
				}
			case 10:
				if strings.EqualFold(sub, "javascript") {
					return sourceFor(atomTextJavaScript)
				}
			case 12:
				if strings.EqualFold(sub, "event-stream") {
					return sourceFor(atomTextEventStream)
				}
			case 20:
				if strings.EqualFold(sub, "tab-separated-values") {
					return sourceFor(atomTextTabSeparatedValues)
				}
			}
		} else if strings.EqualFold(top, "font") {
			switch len(sub) {
			case 4:
				if strings.EqualFold(sub, "woff") {
					return sourceFor(atomFontWoff)
				}
			case 5:
				if strings.EqualFold(sub, "woff2") {
					return sourceFor(atomFontWoff2)
				}
			}
		}
	case 5:
		if strings.EqualFold(top, "image") {
			switch len(sub) {
			case 1:
				if sub[0] == '*' {
					return sourceFor(atomImageStar)
				}
			case 3:
				if strings.EqualFold(sub, "png") {
					return sourceFor(atomImagePNG)
				}
				if strings.EqualFold(sub, "gif") {
					return sourceFor(atomImageGIF)
				}
				if strings.EqualFold(sub, "bmp") {
					return sourceFor(atomImageBMP)
				}
			case 4:
				if strings.EqualFold(sub, "jpeg") {
					return sourceFor(atomImageJPEG)
				}
			case 7:
				if strings.EqualFold(sub, "svg+xml") {
					return sourceFor(atomImageSVG)
				}
			}
		} else if strings.EqualFold(top, "video") {
			if len(sub) == 1 && sub[0] == '*' {
				return sourceFor(atomVideoStar)
			}
		} else if strings.EqualFold(top, "audio") {
			if len(sub) == 1 && sub[0] == '*' {
				return sourceFor(atomAudioStar)
			}
		}
	case 11:
		if strings.EqualFold(top, "application") {
			switch len(sub) {
			case 3:
				if strings.EqualFold(sub, "pdf") {
					return sourceFor(atomApplicationPDF)
				}
			case 4:
				if strings.EqualFold(sub, "json") {
					return sourceFor(atomApplicationJSON)
				}
			case 7:
				if strings.EqualFold(sub, "msgpack") {
					return sourceFor(atomApplicationMsgPack)
				}
			case 10:
				if strings.EqualFold(sub, "javascript") {
					return sourceFor(atomApplicationJavaScript)
				}
			case 11:
				if strings.EqualFold(sub, "dns-message") {
					return sourceFor(atomApplicationDNS)
				}
			case 12:
				if strings.EqualFold(sub, "octet-stream") {
					return sourceFor(atomApplicationOctetStream)
				}
			case 21:
				if strings.EqualFold(sub, "x-www-form-urlencoded") {
					return sourceFor(atomApplicationWWWFormURLEncoded)
				}
			}
		}
	}

	return dynamic(s)
}

// internCharsetUTF8 matches the "type/subtype; charset=utf-8" layout
// against the handful of table entries that carry it.
func internCharsetUTF8(s string, slash, semicolon int) source {
	assert.True(slash < semicolon && semicolon < len(s))

	top := s[:slash]
	sub := s[slash+1 : semicolon]

	if strings.EqualFold(top, "text") {
		if strings.EqualFold(sub, "plain") {
			return sourceFor(atomTextPlainUTF8)
		}
		if strings.EqualFold(sub, "html") {
			return sourceFor(atomTextHTMLUTF8)
		}
		if strings.EqualFold(sub, "css") {
			return sourceFor(atomTextCSSUTF8)
		}
		if strings.EqualFold(sub, "csv") {
			return sourceFor(atomTextCSVUTF8)
		}
		if strings.EqualFold(sub, "tab-separated-values") {
			return sourceFor(atomTextTabSeparatedValuesUTF8)
		}
	}
	if strings.EqualFold(top, "application") {
		if strings.EqualFold(sub, "javascript") {
			return sourceFor(atomApplicationJavaScriptUTF8)
		}
	}

	return dynamic(s)
}

// dynamic stores an owned, ASCII-lower-cased copy. Only reached for
// strings whose parameters (if any) are exactly "charset=utf-8", so the
// whole string may be folded at once.
func dynamic(s string) source {
	return source{atom: atomDynamic, s: asciiLower(s)}
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			buf := []byte(s)
			lowerRange(buf, i, len(buf))
			return unsafe.Str(buf)
		}
	}
	return s
}

// lowerWithParams copies s, folding the essence span and every
// parameter name, plus charset values, to lower case. Other parameter
// values are left byte-for-byte intact.
func lowerWithParams(s string, semicolon int, pairs []indexedPair) string {
	buf := []byte(s)
	lowerRange(buf, 0, semicolon)
	for _, p := range pairs {
		lowerRange(buf, int(p.name.start), int(p.name.end))
		if string(buf[p.name.start:p.name.end]) == charsetName {
			lowerRange(buf, int(p.value.start), int(p.value.end))
		}
	}
	return unsafe.Str(buf)
}

func lowerRange(buf []byte, start, end int) {
	for i := start; i < end; i++ {
		if buf[i] >= 'A' && buf[i] <= 'Z' {
			buf[i] += 'a' - 'A'
		}
	}
}
