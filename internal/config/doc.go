// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for swipe.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - SwipeConfig: Gesture tuning and the button groups behind each row
//   - ButtonConfig: One action button (text, theme, action)
//   - Watcher: fsnotify-based reloader for the active config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SWIPE_*)
//   - ~/.swipe/config.toml
//   - ~/.swipe/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Convert gesture settings for the swipe core:
//
//	panel, err := swipe.NewPanel(swipe.Options{Config: cfg.SwipeOptions()})
package config
