// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mediatype/internal/config"
	"mediatype/internal/mime"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", cfg.App.DefaultType)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[application]
default-type = "text/plain"

[types]
conf = "text/plain; charset=utf-8"
wasm = "application/wasm"
`)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "text/plain", cfg.App.DefaultType)

	m, err := cfg.Lookup("wasm")
	require.NoError(t, err)
	require.True(t, m.EqualString("application/wasm"))

	m, err = cfg.Lookup(".conf")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.TextPlainUTF8))
}

func TestLoadFromFile_BadType(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[types]
foo = "not a media type"
`)

	_, err := config.LoadFromFile(path)
	require.Error(t, err)
}

func TestLookup_Builtin(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	m, err := cfg.Lookup("json")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.ApplicationJSON))

	m, err = cfg.Lookup(".SVG")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.ImageSVG))

	m, err = cfg.Lookup("html")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.TextHTMLUTF8))
}

func TestLookup_Default(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	m, err := cfg.Lookup("no-such-ext")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.ApplicationOctetStream))
}

func TestLookup_Strict(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[application]
strict = true
`)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	_, err = cfg.Lookup("no-such-ext")
	require.Error(t, err)

	cfg.SetStrict(false)
	m, err := cfg.Lookup("no-such-ext")
	require.NoError(t, err)
	require.True(t, m.Equal(mime.ApplicationOctetStream))
}
