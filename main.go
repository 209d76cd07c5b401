// swipe - a terminal inbox whose rows swipe open to reveal action buttons.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swipe-tui/internal/cli"
	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/inbox"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		cli.PrintError(err)
		return cli.ExitCodeFor(err)
	}

	if args.ConfigDir != "" {
		os.Setenv("SWIPE_HOME", args.ConfigDir)
	}

	switch cmd {
	case cli.CmdVersion:
		cli.ShowVersion(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdHelp:
		cli.ShowHelp(os.Stdout)
		return cli.ExitSuccess
	}

	// Non-interactive commands never write the debug log to the terminal.
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		if cmd != cli.CmdTUI {
			cli.PrintError(err)
			return cli.ExitCodeFor(err)
		}
		fmt.Fprintln(os.Stderr, styles.RenderWarning(err.Error()+"; using defaults"))
		cfg = config.Default()
	}
	config.SetGlobal(cfg)

	switch cmd {
	case cli.CmdSeed:
		err = cli.HandleSeed(context.Background(), os.Stdout, args)
	case cli.CmdConfig:
		err = cli.HandleConfig(os.Stdout, args)
	default:
		err = runTUI(args)
	}
	if err != nil {
		cli.PrintError(err)
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

// runTUI opens the inbox and blocks until the user quits.
func runTUI(args cli.Args) error {
	cfg := config.Global()
	if err := cli.RequiresTTY("open the inbox"); err != nil {
		return err
	}

	if args.Debug || cfg.Log.Debug {
		logPath, err := cfg.ResolvedLogPath()
		if err != nil {
			return cli.NewCommandError("tui", "log", "could not resolve log path", err)
		}
		if err := config.EnsureConfigDir(); err != nil {
			return cli.NewCommandError("tui", "log", "could not create config directory", err)
		}
		f, err := tea.LogToFile(logPath, "swipe")
		if err != nil {
			return cli.NewCommandError("tui", "log", logPath, err)
		}
		defer f.Close()
		log.Printf("STARTUP | version=%s debug_log=%s", Version, logPath)
	}

	dbPath, err := cfg.ResolvedStoragePath()
	if err != nil {
		return cli.NewCommandError("tui", "open", "could not resolve database path", err)
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return cli.NewCommandError("tui", "open", dbPath, err)
	}
	defer store.Close()

	var watcher *config.Watcher
	if path := config.ActivePath(); path != "" {
		watcher, err = config.NewWatcher(path, config.DefaultDebounce)
		if err == nil {
			err = watcher.Watch()
		}
		if err != nil {
			// Hot reload is optional.
			log.Printf("CONFIG_WATCH_FAILED | path=%s err=%v", path, err)
			if watcher != nil {
				watcher.Close()
			}
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	model, err := inbox.New(cfg, store, inbox.Options{Watcher: watcher})
	if err != nil {
		return cli.NewCommandError("tui", "start", "invalid swipe settings", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !args.NoMouse {
		// Drags keep reporting after the pointer leaves its row.
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return cli.NewCommandError("tui", "run", "program exited", err)
	}
	log.Printf("SHUTDOWN | clean")
	return nil
}
