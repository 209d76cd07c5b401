// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// =============================================================================
// SEED
// =============================================================================

// HandleSeed fills the message database with sample messages.
func HandleSeed(ctx context.Context, w io.Writer, args Args) error {
	cfg := config.Global()
	path, err := cfg.ResolvedStoragePath()
	if err != nil {
		return NewCommandError("seed", "open", "could not resolve database path", err)
	}
	store, err := storage.Open(path)
	if err != nil {
		return NewCommandError("seed", "open", path, err)
	}
	defer store.Close()

	if args.Reset {
		removed, err := store.Clear(ctx)
		if err != nil {
			return NewCommandError("seed", "reset", path, err)
		}
		fmt.Fprintln(w, styles.RenderInfo(fmt.Sprintf("Removed %d messages", removed)))
	}

	n, err := store.Seed(ctx, args.Count, time.Now(), nil)
	if err != nil {
		return NewCommandError("seed", "insert", fmt.Sprintf("stopped after %d messages", n), err)
	}
	log.Printf("CLI_SEED | path=%s count=%d reset=%t", path, n, args.Reset)

	fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf("Seeded %d messages", n)))
	fmt.Fprintln(w, labelValue("Database", path))
	return nil
}

// =============================================================================
// CONFIG
// =============================================================================

// HandleConfig runs "config show|path|init|keys|get|set".
func HandleConfig(w io.Writer, args Args) error {
	cfg := config.Global()
	switch args.Subcommand {
	case "", "show":
		source := config.ActivePath()
		if source == "" {
			source = "(defaults)"
		}
		fmt.Fprintln(w, labelValue("Source", source))
		fmt.Fprintln(w, cfg.String())
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return NewCommandError("config", "path", "could not resolve config directory", err)
		}
		if active := config.ActivePath(); active != "" {
			path = active
		}
		fmt.Fprintln(w, path)
		return nil

	case "init":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return NewCommandError("config", "init", "could not resolve config directory", err)
		}
		if _, statErr := os.Stat(path); statErr == nil && !args.Force {
			return NewCommandError("config", "init", path+" already exists (use --force to overwrite)", nil)
		} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return NewCommandError("config", "init", "could not check "+path, statErr)
		}
		if err := config.EnsureConfigDir(); err != nil {
			return NewCommandError("config", "init", "could not create config directory", err)
		}
		if err := config.Save(config.Default()); err != nil {
			return NewCommandError("config", "init", "could not write "+path, err)
		}
		log.Printf("CLI_CONFIG_INIT | path=%s force=%t", path, args.Force)
		fmt.Fprintln(w, styles.RenderSuccess("Wrote "+path))
		return nil

	case "keys":
		for _, key := range config.GetAllKeys() {
			fmt.Fprintln(w, key)
		}
		return nil

	case "get":
		if err := checkKey(args.Key); err != nil {
			return err
		}
		val, err := cfg.Get(args.Key)
		if err != nil {
			return NewCommandError("config", "get", args.Key, err)
		}
		fmt.Fprintln(w, val)
		return nil

	case "set":
		return setConfigValue(w, args.Key, args.Value)

	default:
		return NewUsageError(fmt.Sprintf("unknown config subcommand %q", args.Subcommand))
	}
}

// setConfigValue edits one key in the config file, leaving environment
// overrides out of what gets written.
func setConfigValue(w io.Writer, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	stored, path, err := config.LoadForEdit()
	if err != nil {
		return NewCommandError("config", "set", "could not read "+path, err)
	}
	before, err := stored.Get(key)
	if err != nil {
		return NewCommandError("config", "set", key, err)
	}

	next := stored.Clone()
	if err := next.Set(key, value); err != nil {
		return &ValidationError{Field: key, Value: value, Reason: err.Error(), Example: "swipe config set swipe.speed_ms 200"}
	}
	if err := next.Validate(); err != nil {
		return NewCommandError("config", "set", "value rejected", err)
	}
	if err := config.SaveTo(next, path); err != nil {
		return NewCommandError("config", "set", "could not write "+path, err)
	}
	if err := config.ReloadGlobal(); err != nil {
		return NewCommandError("config", "set", "saved but could not reload "+path, err)
	}

	after, _ := next.Get(key)
	log.Printf("CLI_CONFIG_SET | key=%s old=%v new=%v path=%s", key, before, after, path)
	fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf("%s: %v -> %v", key, before, after)))
	fmt.Fprintln(w, labelValue("File", path))

	if effective, err := config.Global().Get(key); err == nil && fmt.Sprint(effective) != fmt.Sprint(after) {
		fmt.Fprintln(w, styles.RenderWarning(fmt.Sprintf("an environment override keeps %s at %v", key, effective)))
	}
	return nil
}

// checkKey rejects keys that are not plain settings.
func checkKey(key string) error {
	if slices.Contains(config.GetAllKeys(), key) {
		return nil
	}
	return &ValidationError{Field: "key", Value: key, Reason: "unknown setting", Example: "swipe config keys"}
}

// =============================================================================
// VERSION AND HELP
// =============================================================================

// ShowVersion prints version information.
func ShowVersion(w io.Writer) {
	fmt.Fprintln(w, TitleStyle.Render("swipe "+Version))
	fmt.Fprintln(w, labelValue("Commit", GitCommit))
	fmt.Fprintln(w, labelValue("Built", BuildDate))
	fmt.Fprintln(w, labelValue("Go", runtime.Version()))
	fmt.Fprintln(w, labelValue("Platform", runtime.GOOS+"/"+runtime.GOARCH))
}

// ShowHelp prints the usage text.
func ShowHelp(w io.Writer) {
	fmt.Fprint(w, usageText)
}
