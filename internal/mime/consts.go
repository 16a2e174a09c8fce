// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"strings"

	"mediatype/internal/pkg/null"
)

// Interned media types. Parsing any of these strings (in any letter
// case) yields a value that compares equal to the constant with a
// single integer comparison.
var (
	TextPlain                  = constant(atomTextPlain, "text/plain")
	TextPlainUTF8              = constant(atomTextPlainUTF8, "text/plain; charset=utf-8")
	TextHTML                   = constant(atomTextHTML, "text/html")
	TextHTMLUTF8               = constant(atomTextHTMLUTF8, "text/html; charset=utf-8")
	TextCSS                    = constant(atomTextCSS, "text/css")
	TextCSSUTF8                = constant(atomTextCSSUTF8, "text/css; charset=utf-8")
	TextJavaScript             = constant(atomTextJavaScript, "text/javascript")
	TextXML                    = constant(atomTextXML, "text/xml")
	TextEventStream            = constant(atomTextEventStream, "text/event-stream")
	TextCSV                    = constant(atomTextCSV, "text/csv")
	TextCSVUTF8                = constant(atomTextCSVUTF8, "text/csv; charset=utf-8")
	TextTabSeparatedValues     = constant(atomTextTabSeparatedValues, "text/tab-separated-values")
	TextTabSeparatedValuesUTF8 = constant(atomTextTabSeparatedValuesUTF8, "text/tab-separated-values; charset=utf-8")
	TextVCard                  = constant(atomTextVCard, "text/vcard")

	ImageJPEG = constant(atomImageJPEG, "image/jpeg")
	ImageGIF  = constant(atomImageGIF, "image/gif")
	ImagePNG  = constant(atomImagePNG, "image/png")
	ImageBMP  = constant(atomImageBMP, "image/bmp")
	ImageSVG  = constant(atomImageSVG, "image/svg+xml")

	FontWoff  = constant(atomFontWoff, "font/woff")
	FontWoff2 = constant(atomFontWoff2, "font/woff2")

	ApplicationJSON              = constant(atomApplicationJSON, "application/json")
	ApplicationJavaScript        = constant(atomApplicationJavaScript, "application/javascript")
	ApplicationJavaScriptUTF8    = constant(atomApplicationJavaScriptUTF8, "application/javascript; charset=utf-8")
	ApplicationWWWFormURLEncoded = constant(atomApplicationWWWFormURLEncoded, "application/x-www-form-urlencoded")
	ApplicationOctetStream       = constant(atomApplicationOctetStream, "application/octet-stream")
	ApplicationMsgPack           = constant(atomApplicationMsgPack, "application/msgpack")
	ApplicationPDF               = constant(atomApplicationPDF, "application/pdf")
	ApplicationDNS               = constant(atomApplicationDNS, "application/dns-message")
)

// Interned media ranges. These come out of ParseRange only; Parse
// rejects wildcards.
var (
	StarStar  = constant(atomStarStar, "*/*")
	TextStar  = constant(atomTextStar, "text/*")
	ImageStar = constant(atomImageStar, "image/*")
	VideoStar = constant(atomVideoStar, "video/*")
	AudioStar = constant(atomAudioStar, "audio/*")
)

var atomTable = [...]Mime{
	atomTextPlain:                    TextPlain,
	atomTextPlainUTF8:                TextPlainUTF8,
	atomTextHTML:                     TextHTML,
	atomTextHTMLUTF8:                 TextHTMLUTF8,
	atomTextCSS:                      TextCSS,
	atomTextCSSUTF8:                  TextCSSUTF8,
	atomTextJavaScript:               TextJavaScript,
	atomTextXML:                      TextXML,
	atomTextEventStream:              TextEventStream,
	atomTextCSV:                      TextCSV,
	atomTextCSVUTF8:                  TextCSVUTF8,
	atomTextTabSeparatedValues:       TextTabSeparatedValues,
	atomTextTabSeparatedValuesUTF8:   TextTabSeparatedValuesUTF8,
	atomTextVCard:                    TextVCard,
	atomImageJPEG:                    ImageJPEG,
	atomImageGIF:                     ImageGIF,
	atomImagePNG:                     ImagePNG,
	atomImageBMP:                     ImageBMP,
	atomImageSVG:                     ImageSVG,
	atomFontWoff:                     FontWoff,
	atomFontWoff2:                    FontWoff2,
	atomApplicationJSON:              ApplicationJSON,
	atomApplicationJavaScript:        ApplicationJavaScript,
	atomApplicationJavaScriptUTF8:    ApplicationJavaScriptUTF8,
	atomApplicationWWWFormURLEncoded: ApplicationWWWFormURLEncoded,
	atomApplicationOctetStream:       ApplicationOctetStream,
	atomApplicationMsgPack:           ApplicationMsgPack,
	atomApplicationPDF:               ApplicationPDF,
	atomApplicationDNS:               ApplicationDNS,
	atomStarStar:                     StarStar,
	atomTextStar:                     TextStar,
	atomImageStar:                    ImageStar,
	atomVideoStar:                    VideoStar,
	atomAudioStar:                    AudioStar,
}

func sourceFor(a atom) source {
	return atomTable[a].source
}

// constant builds an interned entry from a known-good lower-case
// string. Offsets are derived here once, at package init, instead of
// being written out by hand next to each literal.
func constant(a atom, src string) Mime {
	m := Mime{source: source{atom: a, s: src}}

	end := len(src)
	if semi := strings.IndexByte(src, ';'); semi >= 0 {
		m.params = paramSource{kind: paramsUtf8, start: uint16(semi)}
		end = semi
	}
	m.slash = uint16(strings.IndexByte(src, '/'))
	if plus := strings.LastIndexByte(src[:end], '+'); plus >= 0 {
		m.plus = null.New(uint16(plus))
	}
	return m
}
