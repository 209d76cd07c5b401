// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the swipe command line and runs the non-interactive
// commands.
//
// # Key Types
//
//   - Command: the command selected by argv (tui, seed, config, version, help)
//   - Args: global flags plus command-specific options
//   - ArgParser: flag and positional splitting for subcommands
//   - CommandError, UsageError, ValidationError: errors mapped to exit codes
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    cli.PrintError(err)
//	    os.Exit(cli.ExitCodeFor(err))
//	}
//	switch cmd {
//	case cli.CmdSeed:
//	    err = cli.HandleSeed(ctx, os.Stdout, args)
//	case cli.CmdConfig:
//	    err = cli.HandleConfig(os.Stdout, args)
//	}
//
// Handlers read the settings from config.Global(), which main sets after
// loading. The interactive inbox (CmdTUI) is started by main, which owns the
// bubbletea program.
package cli
