// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mediatype/internal/config"
	"mediatype/internal/mime"
	"mediatype/internal/version"
)

func main() {
	setupFlagsAndEnvParser()

	if viper.GetBool("version") {
		fmt.Println(version.Print())
		return
	}

	if viper.GetBool("build-info") {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			errExit("binary was built without module support")
		}
		fmt.Print(version.FormatBuildInfo(info))
		return
	}

	setupLogger()

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "inspect":
		cmdInspect(rest)
	case "equal":
		cmdEqual(rest)
	case "match":
		cmdMatch(rest)
	case "ext":
		cmdExt(rest)
	default:
		errExit(fmt.Sprintf("unknown command %q, expected one of inspect/equal/match/ext", cmd))
	}
}

func setupFlagsAndEnvParser() {
	pflag.String("config-file", "", "path to config file (default ~/.config/mediatype/config.toml)")

	pflag.Bool("range", false, "treat inputs of 'inspect' as media ranges, allowing wildcards")
	pflag.Bool("strict", false, "'ext' fails on unknown extensions instead of using the default type")

	pflag.Bool("log-json", false, "log as json format")
	pflag.String("log-level", "warn", "log level")
	pflag.Bool("no-color", false, "disable colored output")

	pflag.Bool("version", false, "print version and exit")
	pflag.Bool("build-info", false, "print full build info and exit")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		printUsage()
		os.Exit(0)
		return
	}

	pflag.Parse()

	viper.SetEnvPrefix("MEDIATYPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	lo.Must0(viper.BindPFlags(pflag.CommandLine), "failed to combine arguments with env")

	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}

func printUsage() {
	_, _ = fmt.Fprintln(os.Stderr, "usage: mediatype <command> [arguments]")
	_, _ = fmt.Fprintln(os.Stderr, "")
	_, _ = fmt.Fprintln(os.Stderr, "commands:")
	_, _ = fmt.Fprintln(os.Stderr, "  inspect <media-type>...        parse and show the parts of each media type")
	_, _ = fmt.Fprintln(os.Stderr, "  equal <a> <b>                  report whether two media types are equal")
	_, _ = fmt.Fprintln(os.Stderr, "  match <range> <media-type>...  match media types against a range")
	_, _ = fmt.Fprintln(os.Stderr, "  ext <file-or-extension>...     look up media types by file extension")
	_, _ = fmt.Fprintln(os.Stderr, "")
	pflag.Usage()
	_, _ = fmt.Fprintln(os.Stderr, "\nNote: command arguments will override config file, but won't change config file.")
}

func errExit(msg ...any) {
	_, _ = fmt.Fprintln(os.Stderr, msg...)
	os.Exit(1)
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}

	errExit(fmt.Sprintf("unknown log level %q, only trace/debug/info/warn/error is allowed", s))

	return zerolog.NoLevel
}

func setupLogger() {
	logLevel := parseLogLevel(viper.GetString("log-level"))

	var w = zerolog.MultiLevelWriter(os.Stderr)
	if !viper.GetBool("log-json") {
		w = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = log.Output(w).Level(logLevel)
}

func mustParse(s string) mime.Mime {
	var m mime.Mime
	var err error
	if viper.GetBool("range") {
		m, err = mime.ParseRange(s)
	} else {
		m, err = mime.Parse(s)
	}
	if err != nil {
		errExit(fmt.Sprintf("can't parse %q: %s", s, err))
	}

	log.Debug().Str("input", s).Str("normalized", m.String()).Msg("parsed media type")

	return m
}

func cmdInspect(args []string) {
	if len(args) == 0 {
		errExit("inspect needs at least one media type argument")
	}

	label := color.New(color.Faint).Sprint
	for _, s := range args {
		m := mustParse(s)

		fmt.Println(color.CyanString(m.String()))
		fmt.Println(label("  type:    ") + m.Type())
		fmt.Println(label("  subtype: ") + m.Subtype())
		if suffix := m.Suffix(); suffix != "" {
			fmt.Println(label("  suffix:  ") + suffix)
		}
		if m.HasParams() {
			var pairs []string
			it := m.Params()
			for name, value, ok := it.Next(); ok; name, value, ok = it.Next() {
				pairs = append(pairs, name+"="+value)
			}
			fmt.Println(label("  params:  ") + strings.Join(pairs, " "))
		}
	}
}

func cmdEqual(args []string) {
	if len(args) != 2 {
		errExit("equal needs exactly two media type arguments")
	}

	a := mustParse(args[0])
	if a.Equal(mustParse(args[1])) {
		fmt.Println(color.GreenString("equal"))
		return
	}

	fmt.Println(color.RedString("not equal"))
	os.Exit(1)
}

func cmdMatch(args []string) {
	if len(args) < 2 {
		errExit("match needs a media range and at least one media type")
	}

	r, err := mime.ParseRange(args[0])
	if err != nil {
		errExit(fmt.Sprintf("can't parse range %q: %s", args[0], err))
	}

	anyMiss := false
	for _, s := range args[1:] {
		m, err := mime.Parse(s)
		if err != nil {
			errExit(fmt.Sprintf("can't parse %q: %s", s, err))
		}

		if r.Match(m) {
			fmt.Printf("%s %s\n", color.GreenString("match   "), s)
		} else {
			anyMiss = true
			fmt.Printf("%s %s\n", color.RedString("no match"), s)
		}
	}

	if anyMiss {
		os.Exit(1)
	}
}

func cmdExt(args []string) {
	if len(args) == 0 {
		errExit("ext needs at least one file name or extension argument")
	}

	cfg := mustParseConfig()

	for _, name := range args {
		ext := name
		if i := strings.LastIndexByte(name, '.'); i > 0 {
			ext = filepath.Ext(name)
		}

		m, err := cfg.Lookup(ext)
		if err != nil {
			errExit(err)
		}

		fmt.Printf("%s\t%s\n", name, color.CyanString(m.String()))
	}
}

func defaultConfigPath() string {
	h, err := os.UserHomeDir()
	if err != nil {
		errExit("failed to get home directory, please set config path with --config-file manually", err)
	}

	return filepath.Join(h, ".config", "mediatype", "config.toml")
}

func mustParseConfig() config.Config {
	configFilePath := viper.GetString("config-file")
	if configFilePath == "" {
		configFilePath = defaultConfigPath()
	}

	cfg, err := config.LoadFromFile(configFilePath)
	if err != nil {
		errExit("failed to load config", err)
	}

	if pflag.CommandLine.Changed("strict") {
		cfg.SetStrict(viper.GetBool("strict"))
	}

	log.Debug().Str("config", configFilePath).Msg("config loaded")

	return cfg
}
