// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
)

// Version information (set by build flags).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command represents a CLI command.
type Command int

const (
	CmdTUI Command = iota
	CmdSeed
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdSeed:
		return "seed"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DefaultSeedCount is how many messages "seed" inserts without --count.
const DefaultSeedCount = 25

// Args holds parsed command-line arguments.
type Args struct {
	// Global flags
	Debug     bool
	NoMouse   bool
	ConfigDir string

	// Command-specific
	Subcommand string
	Count      int
	Reset      bool
	Force      bool
	Key        string // config get/set
	Value      string // config set

	// Raw holds everything after the command name.
	Raw []string
}

const usageText = `swipe - a terminal inbox with swipeable rows

Usage:
  swipe [flags] [command]

Commands:
  tui                Open the inbox (default)
  seed [N|--count N] Insert N sample messages (default 25)
       [--reset]     Delete every message first
  config show        Print the active configuration
  config path        Print the config file path
  config init        Write a default config file (--force to overwrite)
  config keys        List the keys accepted by get and set
  config get KEY     Print one setting, e.g. swipe.speed_ms
  config set KEY VAL Change one setting in the config file
  version            Print version information
  help               Show this help

Flags:
  -d, --debug        Write a debug log to the configured log file
  --no-mouse         Disable mouse capture (keyboard only)
  --config-dir DIR   Read config and data from DIR instead of ~/.swipe

Keys:
  j/k move  h/l swipe  1-9 press button  esc close  a archived  q quit
`

// Usage returns the help text.
func Usage() string {
	return usageText
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses argv (without the program name) into a command and its
// arguments.
func Parse(argv []string) (Command, Args, error) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args, nil

	case "seed":
		if err := parseSeedArgs(&args, remaining); err != nil {
			return CmdSeed, args, err
		}
		return CmdSeed, args, nil

	case "config":
		if err := parseConfigArgs(&args, remaining); err != nil {
			return CmdConfig, args, err
		}
		return CmdConfig, args, nil

	case "version", "--version", "-V":
		return CmdVersion, args, nil

	case "help", "--help", "-h":
		return CmdHelp, args, nil

	default:
		return CmdHelp, args, NewUsageError(fmt.Sprintf("unknown command %q", cmd))
	}
}

// parseGlobalFlags strips flags that apply to every command.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-d", "--debug":
			args.Debug = true
		case "--no-mouse":
			args.NoMouse = true
		case "--config-dir":
			if i+1 < len(argv) {
				i++
				args.ConfigDir = argv[i]
			}
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				args.ConfigDir = strings.TrimPrefix(arg, "--config-dir=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}
	return remaining, args
}

func parseSeedArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining)
	args.Count = DefaultSeedCount
	if p.PositionalCount() > 1 {
		return NewUsageError("seed takes at most one count argument")
	}
	if p.HasFlag("count") || p.HasFlag("n") || p.PositionalCount() == 1 {
		raw := p.Flag("count")
		if raw == "" {
			raw = p.Flag("n")
		}
		if raw == "" {
			raw = p.Positional(0)
		}
		n, err := ParseIntWithValidation(raw, "count")
		if err != nil {
			return &ValidationError{Field: "count", Value: raw, Reason: err.Error(), Example: "swipe seed --count 50"}
		}
		args.Count = n
	}
	args.Reset = p.BoolFlag("reset")
	return nil
}

func parseConfigArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	if args.Subcommand == "" {
		args.Subcommand = "show"
	}
	args.Force = p.BoolFlag("force")

	// Positional 0 is the subcommand itself.
	want := 1
	switch args.Subcommand {
	case "show", "path", "init", "keys":
	case "get":
		want = 2
	case "set":
		want = 3
	default:
		return NewUsageError(fmt.Sprintf("unknown config subcommand %q (want show, path, init, keys, get or set)", args.Subcommand))
	}
	if n := p.PositionalCount(); n != want && !(n == 0 && args.Subcommand == "show") {
		switch args.Subcommand {
		case "get":
			return NewUsageError("usage: swipe config get KEY")
		case "set":
			return NewUsageError("usage: swipe config set KEY VALUE")
		default:
			return NewUsageError("config " + args.Subcommand + " takes no arguments")
		}
	}
	if want > 1 {
		args.Key = strings.ToLower(p.Positional(1))
	}
	if want > 2 {
		args.Value = p.Positional(2)
	}
	return nil
}
