// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"seed", "--count", "50"},
			wantSub: "seed",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("count") != "50" {
					t.Errorf("Flag(count) = %q, want %q", p.Flag("count"), "50")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"--count=7"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("--count") != "7" {
					t.Errorf("Flag(--count) = %q, want %q", p.Flag("--count"), "7")
				}
			},
		},
		{
			name:    "trailing bool flag",
			args:    []string{"init", "--force"},
			wantSub: "init",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("force") {
					t.Error("BoolFlag(force) = false, want true")
				}
				if !p.HasFlag("force") {
					t.Error("HasFlag(force) = false, want true")
				}
			},
		},
		{
			name:    "explicit bool value",
			args:    []string{"--reset=false"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("reset") {
					t.Error("BoolFlag(reset) = true, want false")
				}
				if !p.HasFlag("reset") {
					t.Error("HasFlag(reset) = false, want true")
				}
			},
		},
		{
			name:    "bool flag before another flag",
			args:    []string{"--reset", "--count", "3", "extra"},
			wantSub: "extra",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("reset") {
					t.Error("BoolFlag(reset) = false, want true")
				}
				if p.PositionalCount() != 1 {
					t.Errorf("PositionalCount() = %d, want 1", p.PositionalCount())
				}
				if p.Positional(5) != "" {
					t.Error("Positional out of range should be empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			if got := p.Subcommand(); got != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", got, tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestParseIntWithValidation(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseIntWithValidation(tt.in, "count")
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseIntWithValidation(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseIntWithValidation(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// =============================================================================
// COMMAND PARSING TESTS (cli.go)
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
		wantErr bool
		check   func(*testing.T, Args)
	}{
		{name: "no args opens the inbox", argv: nil, wantCmd: CmdTUI},
		{name: "explicit tui", argv: []string{"tui"}, wantCmd: CmdTUI},
		{
			name:    "global flags anywhere",
			argv:    []string{"--debug", "tui", "--no-mouse"},
			wantCmd: CmdTUI,
			check: func(t *testing.T, a Args) {
				if !a.Debug || !a.NoMouse {
					t.Errorf("Debug=%t NoMouse=%t, want both true", a.Debug, a.NoMouse)
				}
			},
		},
		{
			name:    "config dir flag",
			argv:    []string{"--config-dir", "/tmp/x", "config", "path"},
			wantCmd: CmdConfig,
			check: func(t *testing.T, a Args) {
				if a.ConfigDir != "/tmp/x" || a.Subcommand != "path" {
					t.Errorf("ConfigDir=%q Subcommand=%q", a.ConfigDir, a.Subcommand)
				}
			},
		},
		{
			name:    "config dir equals form",
			argv:    []string{"--config-dir=/tmp/y"},
			wantCmd: CmdTUI,
			check: func(t *testing.T, a Args) {
				if a.ConfigDir != "/tmp/y" {
					t.Errorf("ConfigDir = %q, want /tmp/y", a.ConfigDir)
				}
			},
		},
		{
			name:    "seed defaults",
			argv:    []string{"seed"},
			wantCmd: CmdSeed,
			check: func(t *testing.T, a Args) {
				if a.Count != DefaultSeedCount || a.Reset {
					t.Errorf("Count=%d Reset=%t", a.Count, a.Reset)
				}
			},
		},
		{
			name:    "seed count flag and reset",
			argv:    []string{"seed", "--count", "40", "--reset"},
			wantCmd: CmdSeed,
			check: func(t *testing.T, a Args) {
				if a.Count != 40 || !a.Reset {
					t.Errorf("Count=%d Reset=%t", a.Count, a.Reset)
				}
			},
		},
		{
			name:    "seed positional count",
			argv:    []string{"seed", "5"},
			wantCmd: CmdSeed,
			check: func(t *testing.T, a Args) {
				if a.Count != 5 {
					t.Errorf("Count = %d, want 5", a.Count)
				}
			},
		},
		{name: "seed bad count", argv: []string{"seed", "--count", "zero"}, wantCmd: CmdSeed, wantErr: true},
		{name: "seed too many args", argv: []string{"seed", "1", "2"}, wantCmd: CmdSeed, wantErr: true},
		{
			name:    "config defaults to show",
			argv:    []string{"config"},
			wantCmd: CmdConfig,
			check: func(t *testing.T, a Args) {
				if a.Subcommand != "show" {
					t.Errorf("Subcommand = %q, want show", a.Subcommand)
				}
			},
		},
		{
			name:    "config init force",
			argv:    []string{"config", "init", "--force"},
			wantCmd: CmdConfig,
			check: func(t *testing.T, a Args) {
				if a.Subcommand != "init" || !a.Force {
					t.Errorf("Subcommand=%q Force=%t", a.Subcommand, a.Force)
				}
			},
		},
		{name: "config unknown", argv: []string{"config", "edit"}, wantCmd: CmdConfig, wantErr: true},
		{name: "config path takes no args", argv: []string{"config", "path", "extra"}, wantCmd: CmdConfig, wantErr: true},
		{
			name:    "config get key",
			argv:    []string{"config", "get", "Swipe.Speed_MS"},
			wantCmd: CmdConfig,
			check: func(t *testing.T, a Args) {
				if a.Subcommand != "get" || a.Key != "swipe.speed_ms" {
					t.Errorf("Subcommand=%q Key=%q", a.Subcommand, a.Key)
				}
			},
		},
		{
			name:    "config set key value",
			argv:    []string{"config", "set", "ui.theme", "Light"},
			wantCmd: CmdConfig,
			check: func(t *testing.T, a Args) {
				if a.Key != "ui.theme" || a.Value != "Light" {
					t.Errorf("Key=%q Value=%q", a.Key, a.Value)
				}
			},
		},
		{name: "config get without key", argv: []string{"config", "get"}, wantCmd: CmdConfig, wantErr: true},
		{name: "config set without value", argv: []string{"config", "set", "ui.theme"}, wantCmd: CmdConfig, wantErr: true},
		{name: "version", argv: []string{"version"}, wantCmd: CmdVersion},
		{name: "version flag", argv: []string{"--version"}, wantCmd: CmdVersion},
		{name: "help", argv: []string{"-h"}, wantCmd: CmdHelp},
		{name: "unknown command", argv: []string{"frobnicate"}, wantCmd: CmdHelp, wantErr: true},
		{name: "case insensitive", argv: []string{"SEED"}, wantCmd: CmdSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Parse(tt.argv)
			if cmd != tt.wantCmd {
				t.Errorf("Parse() cmd = %v, want %v", cmd, tt.wantCmd)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, args)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	names := map[Command]string{
		CmdTUI:      "tui",
		CmdSeed:     "seed",
		CmdConfig:   "config",
		CmdVersion:  "version",
		CmdHelp:     "help",
		Command(99): "unknown",
	}
	for cmd, want := range names {
		if got := cmd.String(); got != want {
			t.Errorf("Command(%d).String() = %q, want %q", int(cmd), got, want)
		}
	}
}

// =============================================================================
// ERROR AND TERMINAL TESTS
// =============================================================================

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", NewUsageError("nope"), ExitUsageError},
		{"validation", &ValidationError{Field: "count"}, ExitUsageError},
		{"tty", &TTYRequiredError{Operation: "open the inbox"}, ExitTTYError},
		{"config", fmt.Errorf("load: %w", config.ValidateErrors{{Field: "swipe.speed_ms", Message: "bad"}}), ExitConfigError},
		{"storage", NewCommandError("seed", "open", "x", storage.ErrInvalidPath), ExitStorageError},
		{"other", errors.New("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommandError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewCommandError("seed", "insert", "stopped", inner)
	if !errors.Is(err, inner) {
		t.Error("CommandError should unwrap to its cause")
	}
	if got := err.Error(); got != "seed insert failed: stopped: disk full" {
		t.Errorf("Error() = %q", got)
	}
	if got := NewCommandError("config", "init", "exists", nil).Error(); got != "config init failed: exists" {
		t.Errorf("Error() = %q", got)
	}
}

func TestColorDecision(t *testing.T) {
	tests := []struct {
		noColor, force string
		tty            bool
		want           bool
	}{
		{"", "", true, true},
		{"", "", false, false},
		{"1", "1", true, false},
		{"", "1", false, true},
	}
	for _, tt := range tests {
		if got := colorDecision(tt.noColor, tt.force, tt.tty); got != tt.want {
			t.Errorf("colorDecision(%q, %q, %t) = %t, want %t", tt.noColor, tt.force, tt.tty, got, tt.want)
		}
	}
}

func TestTTYRequiredError(t *testing.T) {
	err := &TTYRequiredError{Operation: "open the inbox"}
	if !strings.Contains(err.Error(), "open the inbox") {
		t.Errorf("Error() = %q", err.Error())
	}
	if (&TTYRequiredError{}).Error() == "" {
		t.Error("empty operation should still produce a message")
	}
}

// =============================================================================
// COMMAND HANDLER TESTS (commands.go)
// =============================================================================

// useConfigDir points the config directory at a temp dir and clears the
// global config and env overrides around the test.
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SWIPE_HOME", dir)
	for _, k := range []string{"SWIPE_RATIO", "SWIPE_SPEED", "SWIPE_ANIMATION", "SWIPE_DISABLED", "SWIPE_DB", "SWIPE_THEME", "SWIPE_DEBUG"} {
		t.Setenv(k, "")
	}
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)
	return dir
}

func TestHandleConfig(t *testing.T) {
	dir := useConfigDir(t)
	cfg := config.Default()

	var out bytes.Buffer
	if err := HandleConfig(&out, Args{Subcommand: "path"}); err != nil {
		t.Fatalf("path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != filepath.Join(dir, "config.toml") {
		t.Errorf("path = %q", got)
	}

	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "show"}); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out.String(), "(defaults)") {
		t.Errorf("show without a file should say defaults, got %q", out.String())
	}

	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "init"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if config.ActivePath() != filepath.Join(dir, "config.toml") {
		t.Errorf("ActivePath() = %q", config.ActivePath())
	}

	if err := HandleConfig(&out, Args{Subcommand: "init"}); err == nil {
		t.Error("init over an existing file without --force should fail")
	}
	if err := HandleConfig(&out, Args{Subcommand: "init", Force: true}); err != nil {
		t.Errorf("init --force: %v", err)
	}

	loaded, err := config.LoadFromPath(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Swipe.MoveDistanceRatio != cfg.Swipe.MoveDistanceRatio {
		t.Errorf("ratio = %v, want %v", loaded.Swipe.MoveDistanceRatio, cfg.Swipe.MoveDistanceRatio)
	}

	if err := HandleConfig(&out, Args{Subcommand: "edit"}); ExitCodeFor(err) != ExitUsageError {
		t.Errorf("unknown subcommand err = %v", err)
	}
}

func TestHandleSeed(t *testing.T) {
	useConfigDir(t)
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "inbox.db")
	config.SetGlobal(cfg)
	ctx := context.Background()

	var out bytes.Buffer
	if err := HandleSeed(ctx, &out, Args{Count: 4}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out.String(), "Seeded 4 messages") {
		t.Errorf("output = %q", out.String())
	}
	if err := HandleSeed(ctx, &out, Args{Count: 3}); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		t.Fatal(err)
	}
	msgs, err := store.List(ctx, true)
	store.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 7 {
		t.Errorf("len = %d, want 7", len(msgs))
	}

	out.Reset()
	if err := HandleSeed(ctx, &out, Args{Count: 2, Reset: true}); err != nil {
		t.Fatalf("reset seed: %v", err)
	}
	if !strings.Contains(out.String(), "7 messages") {
		t.Errorf("reset should report removed count, got %q", out.String())
	}

	store, err = storage.Open(cfg.Storage.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	msgs, _ = store.List(ctx, true)
	if len(msgs) != 2 {
		t.Errorf("len after reset = %d, want 2", len(msgs))
	}
}

func TestHandleConfig_GetSet(t *testing.T) {
	dir := useConfigDir(t)
	path := filepath.Join(dir, "config.toml")

	var out bytes.Buffer
	if err := HandleConfig(&out, Args{Subcommand: "get", Key: "swipe.speed_ms"}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != fmt.Sprint(config.Default().Swipe.SpeedMs) {
		t.Errorf("get speed = %q", got)
	}

	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "set", Key: "swipe.speed_ms", Value: "90"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(out.String(), "-> 90") {
		t.Errorf("set output = %q", out.String())
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("set should write a loadable file: %v", err)
	}
	if loaded.Swipe.SpeedMs != 90 {
		t.Errorf("stored speed = %d, want 90", loaded.Swipe.SpeedMs)
	}
	if config.Global().Swipe.SpeedMs != 90 {
		t.Errorf("global speed = %d, want 90 after set", config.Global().Swipe.SpeedMs)
	}

	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "get", Key: "swipe.speed_ms"}); err != nil {
		t.Fatalf("get after set: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "90" {
		t.Errorf("get after set = %q, want 90", got)
	}

	// Environment overrides are reported but never written to the file.
	t.Setenv("SWIPE_THEME", "dark")
	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "set", Key: "ui.theme", Value: "light"}); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if !strings.Contains(out.String(), "environment override") {
		t.Errorf("set should warn about the override, got %q", out.String())
	}
	loaded, err = config.LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Swipe.SpeedMs != 90 {
		t.Errorf("second set lost the first: speed = %d", loaded.Swipe.SpeedMs)
	}
	stored, _, err := config.LoadForEdit()
	if err != nil {
		t.Fatal(err)
	}
	if stored.UI.Theme != "light" {
		t.Errorf("stored theme = %q, want light", stored.UI.Theme)
	}
	t.Setenv("SWIPE_THEME", "")

	tests := []struct {
		name string
		args Args
		code int
	}{
		{"unknown key", Args{Subcommand: "get", Key: "swipe.nope"}, ExitUsageError},
		{"struct key", Args{Subcommand: "set", Key: "swipe", Value: "x"}, ExitUsageError},
		{"not a number", Args{Subcommand: "set", Key: "swipe.speed_ms", Value: "fast"}, ExitUsageError},
		{"not a boolean", Args{Subcommand: "set", Key: "swipe.disabled", Value: "maybe"}, ExitUsageError},
		{"out of range", Args{Subcommand: "set", Key: "swipe.move_distance_ratio", Value: "7"}, ExitConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleConfig(&out, tt.args)
			if got := ExitCodeFor(err); got != tt.code {
				t.Errorf("exit code = %d, want %d (err = %v)", got, tt.code, err)
			}
		})
	}

	loaded, err = config.LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Swipe.SpeedMs != 90 || loaded.Swipe.MoveDistanceRatio != config.Default().Swipe.MoveDistanceRatio {
		t.Error("rejected values must not reach the file")
	}

	out.Reset()
	if err := HandleConfig(&out, Args{Subcommand: "keys"}); err != nil {
		t.Fatalf("keys: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != len(config.GetAllKeys()) {
		t.Errorf("keys printed %d lines, want %d", got, len(config.GetAllKeys()))
	}
}

func TestShowVersionAndHelp(t *testing.T) {
	var out bytes.Buffer
	ShowVersion(&out)
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	ShowHelp(&out)
	for _, want := range []string{"seed", "config init", "config set", "--debug"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help is missing %q", want)
		}
	}
	if Usage() != out.String() {
		t.Error("Usage() and ShowHelp should print the same text")
	}
}
