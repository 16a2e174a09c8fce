// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/trim21/errgo"
	"go.uber.org/atomic"

	"mediatype/internal/mime"
)

type Application struct {
	// returned for extensions missing from both tables
	DefaultType string `toml:"default-type"`
	// error out on unknown extensions instead of falling back
	Strict bool `toml:"strict"`
}

type Config struct {
	App Application `toml:"application"`
	// extension (no dot) -> media type, layered over the builtin table
	Types map[string]string `toml:"types"`

	// effective mode, flags may override the file after load
	strict atomic.Bool
}

// SetStrict overrides strict mode at runtime.
func (c *Config) SetStrict(v bool) {
	c.strict.Store(v)
}

// builtin extension table, user [types] entries shadow it
var builtin = map[string]string{
	"txt":   "text/plain; charset=utf-8",
	"html":  "text/html; charset=utf-8",
	"htm":   "text/html; charset=utf-8",
	"css":   "text/css; charset=utf-8",
	"csv":   "text/csv; charset=utf-8",
	"xml":   "text/xml",
	"js":    "text/javascript",
	"mjs":   "text/javascript",
	"vcf":   "text/vcard",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"gif":   "image/gif",
	"png":   "image/png",
	"bmp":   "image/bmp",
	"svg":   "image/svg+xml",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"json":  "application/json",
	"pdf":   "application/pdf",
	"bin":   "application/octet-stream",
}

func LoadFromFile(path string) (Config, error) {
	var cfg = Config{
		App: Application{DefaultType: mime.ApplicationOctetStream.String()},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, errgo.Wrap(err, "failed to read config file")
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	for ext, s := range cfg.Types {
		if _, err := mime.Parse(s); err != nil {
			return cfg, errgo.Wrap(err, fmt.Sprintf("invalid media type %q for extension %q", s, ext))
		}
	}
	if _, err := mime.Parse(cfg.App.DefaultType); err != nil {
		return cfg, errgo.Wrap(err, fmt.Sprintf("invalid default media type %q", cfg.App.DefaultType))
	}

	cfg.strict.Store(cfg.App.Strict)

	return cfg, nil
}

// Lookup resolves a file extension (with or without the leading dot) to
// a media type. Unknown extensions yield the configured default, or an
// error in strict mode.
func (c *Config) Lookup(ext string) (mime.Mime, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	if s, ok := c.Types[ext]; ok {
		// validated during load
		return lo.Must(mime.Parse(s)), nil
	}
	if s, ok := builtin[ext]; ok {
		return lo.Must(mime.Parse(s)), nil
	}
	if c.strict.Load() {
		return mime.Mime{}, fmt.Errorf("unknown file extension %q", ext)
	}

	return lo.Must(mime.Parse(c.App.DefaultType)), nil
}
