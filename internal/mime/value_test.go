// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mediatype/internal/mime"
)

func TestValue_RawAndContent(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `text/plain; p=token; q="quoted"; e="a\"b"`)

	v, ok := m.Param("p")
	require.True(t, ok)
	require.Equal(t, "token", v.Raw())
	require.Equal(t, "token", v.Content())

	v, ok = m.Param("q")
	require.True(t, ok)
	require.Equal(t, `"quoted"`, v.Raw())
	require.Equal(t, "quoted", v.Content())

	v, ok = m.Param("e")
	require.True(t, ok)
	require.Equal(t, `"a\"b"`, v.Raw())
	require.Equal(t, `a"b`, v.Content())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	a := mustParse(t, `a/b; x="v"`)
	b := mustParse(t, "a/b; x=v")

	va, _ := a.Param("x")
	vb, _ := b.Param("x")
	require.True(t, va.Equal(vb))
	require.True(t, vb.Equal(va))

	c := mustParse(t, "a/b; x=V")
	vc, _ := c.Param("x")
	require.False(t, va.Equal(vc))
}

func TestValue_Charset(t *testing.T) {
	t.Parallel()

	m := mustParse(t, "multipart/form-data; charset=BASE64; boundary=ABCDEFG")

	// charset values normalize and compare case-insensitively
	v, ok := m.Param("charset")
	require.True(t, ok)
	require.True(t, v.EqualString("bAsE64"))
	require.True(t, v.EqualString("base64"))

	// other values keep their case
	v, ok = m.Param("boundary")
	require.True(t, ok)
	require.Equal(t, "ABCDEFG", v.Raw())
	require.True(t, v.EqualString("ABCDEFG"))
	require.False(t, v.EqualString("abcdefg"))
}

func TestValue_UTF8Constant(t *testing.T) {
	t.Parallel()

	require.Equal(t, "utf-8", mime.UTF8.Content())
	require.True(t, mime.UTF8.EqualString("utf-8"))
	require.True(t, mime.UTF8.EqualString("UTF-8"))

	v, ok := mime.TextPlainUTF8.Param("charset")
	require.True(t, ok)
	require.True(t, v.Equal(mime.UTF8))
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	m := mustParse(t, `a/b; x="v w"`)
	v, _ := m.Param("x")
	require.Equal(t, "v w", v.String())
}
