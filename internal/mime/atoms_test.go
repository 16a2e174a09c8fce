// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// every interned entry must carry offsets that actually point at the
// bytes they claim to, and parsing its own string must find it again
func TestAtomTable(t *testing.T) {
	t.Parallel()

	for a, m := range atomTable {
		if a == int(atomDynamic) {
			continue
		}
		src := m.source.s

		require.EqualValues(t, a, m.source.atom, "%q", src)
		require.Equal(t, byte('/'), src[m.slash], "%q", src)
		if m.plus.Set {
			require.Equal(t, byte('+'), src[m.plus.Value], "%q", src)
		} else {
			require.NotContains(t, src, "+", "%q", src)
		}
		if m.params.kind == paramsUtf8 {
			require.Equal(t, charsetUTF8, src[m.params.start:], "%q", src)
		} else {
			require.Equal(t, paramsNone, m.params.kind, "%q", src)
			require.NotContains(t, src, ";", "%q", src)
		}

		parsed, err := parse(src, true)
		require.NoError(t, err, "%q", src)
		require.Equal(t, m.source.atom, parsed.source.atom, "%q did not intern", src)
		require.Equal(t, src, parsed.source.s, "%q", src)
	}
}

func TestInternIgnoresCase(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"TEXT/PLAIN", "Application/JSON", "IMAGE/svg+XML"} {
		m, err := parse(s, false)
		require.NoError(t, err, "%q", s)
		require.NotEqual(t, atomDynamic, m.source.atom, "%q should intern", s)
		require.Equal(t, strings.ToLower(s), m.source.s, "%q", s)
	}
}

func TestInternCharsetUTF8(t *testing.T) {
	t.Parallel()

	m, err := parse("text/plain; charset=utf-8", false)
	require.NoError(t, err)
	require.Equal(t, atomTextPlainUTF8, m.source.atom)

	// only the exact "; charset=utf-8" layout hits the utf-8 entries
	m, err = parse("text/plain;charset=utf-8", false)
	require.NoError(t, err)
	require.Equal(t, atomDynamic, m.source.atom)

	m, err = parse("text/plain; charset=utf-9", false)
	require.NoError(t, err)
	require.Equal(t, atomDynamic, m.source.atom)
}

func TestDynamicLowercases(t *testing.T) {
	t.Parallel()

	m, err := parse("X-Custom/Thing; Name=Value", false)
	require.NoError(t, err)
	require.Equal(t, atomDynamic, m.source.atom)
	require.Equal(t, "x-custom/thing; name=Value", m.source.s)
}

func TestParamShapes(t *testing.T) {
	t.Parallel()

	m, err := parse("text/plain", false)
	require.NoError(t, err)
	require.Equal(t, paramsNone, m.params.kind)

	m, err = parse("text/plain; charset=utf-8", false)
	require.NoError(t, err)
	require.Equal(t, paramsUtf8, m.params.kind)

	m, err = parse("text/plain; charset=UTF-8", false)
	require.NoError(t, err)
	require.Equal(t, paramsUtf8, m.params.kind)

	m, err = parse("text/plain; a=1", false)
	require.NoError(t, err)
	require.Equal(t, paramsOne, m.params.kind)

	m, err = parse("text/plain; charset=utf-8; a=1", false)
	require.NoError(t, err)
	require.Equal(t, paramsTwo, m.params.kind)

	m, err = parse("text/plain; a=1; b=2; c=3", false)
	require.NoError(t, err)
	require.Equal(t, paramsCustom, m.params.kind)
}

// the utf-8 fast path hands out implied offsets when a second parameter
// forces the Two shape, so they must line up with the real bytes
func TestUtf8PromotionOffsets(t *testing.T) {
	t.Parallel()

	m, err := parse("text/plain; charset=utf-8; foo=bar", false)
	require.NoError(t, err)
	require.Equal(t, paramsTwo, m.params.kind)

	it := m.Params()
	name, value, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "charset", name)
	require.Equal(t, "utf-8", value)

	name, value, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, "foo", name)
	require.Equal(t, "bar", value)
}

func TestTokenTable(t *testing.T) {
	t.Parallel()

	for i := 0; i < 256; i++ {
		c := byte(i)
		want := c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			strings.IndexByte("!#$%&'+-.^_`|~", c) >= 0
		require.Equal(t, want, isToken(c), "byte %q (%d)", c, c)
	}
}
