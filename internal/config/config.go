// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for swipe.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.swipe/config.toml
//   - ~/.swipe/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete swipe configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Swipe gesture tuning and the action buttons behind each row
	Swipe SwipeConfig `toml:"swipe" json:"swipe"`

	// Storage configuration (inbox database)
	Storage StorageConfig `toml:"storage" json:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Log configuration
	Log LogConfig `toml:"log" json:"log"`
}

// SwipeConfig tunes the swipe gesture. Distances are terminal cells.
type SwipeConfig struct {
	// MoveDistanceRatio is the share of a panel a drag must cover to open it (0 < r <= 1)
	MoveDistanceRatio float64 `toml:"move_distance_ratio" json:"move_distance_ratio"`
	// MoveTimeSpanMs is the longest gesture that still counts as a flick
	MoveTimeSpanMs int `toml:"move_time_span_ms" json:"move_time_span_ms"`
	// SpeedMs is the settle animation duration
	SpeedMs int `toml:"speed_ms" json:"speed_ms"`
	// Slack is the overshoot allowed past a panel while dragging
	Slack float64 `toml:"slack" json:"slack"`
	// Disabled turns every row into plain content
	Disabled bool `toml:"disabled" json:"disabled"`
	// AutoClose closes a row after one of its buttons is pressed
	AutoClose bool `toml:"auto_close" json:"auto_close"`
	// Animation is the settle style: "ease", "spring", "none"
	Animation string `toml:"animation" json:"animation"`

	// Left and Right are the ordered button groups revealed by swiping right and left
	Left  []ButtonConfig `toml:"left" json:"left"`
	Right []ButtonConfig `toml:"right" json:"right"`
}

// ButtonConfig describes one action button.
type ButtonConfig struct {
	Text      string `toml:"text" json:"text"`
	Theme     string `toml:"theme" json:"theme"`
	ClassName string `toml:"class_name" json:"class_name,omitempty"`
	// Action is what the button does to an inbox item: "toggle_read", "flag", "archive", "delete", "none"
	Action string `toml:"action" json:"action"`
}

// StorageConfig contains inbox storage configuration.
type StorageConfig struct {
	// Path is the SQLite database path (empty = ~/.swipe/inbox.db)
	Path string `toml:"path" json:"path"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// PrefixCls names the parts of every row (naming only)
	PrefixCls string `toml:"prefix_cls" json:"prefix_cls"`
	// ShowStatus displays the status bar
	ShowStatus bool `toml:"show_status" json:"show_status"`
	// ShowHelp displays the key help line
	ShowHelp bool `toml:"show_help" json:"show_help"`
}

// LogConfig contains debug log configuration.
type LogConfig struct {
	// Debug writes gesture logs to Path while the TUI runs
	Debug bool `toml:"debug" json:"debug"`
	// Path is the debug log file (empty = ~/.swipe/debug.log)
	Path string `toml:"path" json:"path"`
}

// Button themes and actions recognized by the UI.
var (
	ValidThemes     = []string{"default", "primary", "success", "warning", "danger"}
	ValidActions    = []string{"toggle_read", "flag", "archive", "delete", "none"}
	ValidAnimations = []string{"ease", "spring", "none"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Swipe: SwipeConfig{
			MoveDistanceRatio: swipe.DefaultMoveDistanceRatio,
			MoveTimeSpanMs:    int(swipe.DefaultMoveTimeSpan / time.Millisecond),
			SpeedMs:           int(swipe.DefaultSpeed / time.Millisecond),
			Slack:             2, // cells, not pixels
			AutoClose:         true,
			Animation:         "ease",
			Left:              defaultLeftButtons(),
			Right:             defaultRightButtons(),
		},

		Storage: StorageConfig{
			Path: "",
		},

		UI: UIConfig{
			Theme:      "dark",
			PrefixCls:  swipe.DefaultPrefixCls,
			ShowStatus: true,
			ShowHelp:   true,
		},

		Log: LogConfig{
			Debug: false,
		},
	}
}

func defaultLeftButtons() []ButtonConfig {
	return []ButtonConfig{
		{Text: "Read", Theme: "primary", Action: "toggle_read"},
		{Text: "Flag", Theme: "success", Action: "flag"},
	}
}

func defaultRightButtons() []ButtonConfig {
	return []ButtonConfig{
		{Text: "Archive", Theme: "warning", Action: "archive"},
		{Text: "Delete", Theme: "danger", Action: "delete"},
	}
}

// SwipeOptions converts the gesture tuning into the core's Config.
func (c *Config) SwipeOptions() swipe.Config {
	return swipe.Config{
		MoveDistanceRatio: c.Swipe.MoveDistanceRatio,
		MoveTimeSpan:      time.Duration(c.Swipe.MoveTimeSpanMs) * time.Millisecond,
		Speed:             time.Duration(c.Swipe.SpeedMs) * time.Millisecond,
		Slack:             c.Swipe.Slack,
		Disabled:          c.Swipe.Disabled,
		AutoClose:         c.Swipe.AutoClose,
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the swipe configuration directory path. SWIPE_HOME
// replaces the default ~/.swipe.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SWIPE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".swipe"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ResolvedStoragePath returns the database path, defaulting to ~/.swipe/inbox.db.
func (c *Config) ResolvedStoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inbox.db"), nil
}

// ResolvedLogPath returns the debug log path, defaulting to ~/.swipe/debug.log.
func (c *Config) ResolvedLogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// ActivePath returns the config file Load would read, or "" when only
// defaults apply.
func ActivePath() string {
	if p, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return p
		}
	}
	if p, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return p
		}
	}
	return ""
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path := ActivePath(); path != "" {
		cfg, err := LoadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		// Broken file: fall back to defaults but surface the error.
		def, defErr := finish(Default())
		if defErr != nil {
			return nil, defErr
		}
		return def, err
	}
	return finish(Default())
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies env overrides, defaults and validation in the order every
// loader uses.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadForEdit returns the settings stored on disk with defaults filled in but
// no environment overrides, together with the file they belong in. Without a
// config file it returns defaults and the TOML path.
func LoadForEdit() (*Config, string, error) {
	path := ActivePath()
	if path == "" {
		p, err := ConfigPathTOML()
		if err != nil {
			return nil, "", err
		}
		return Default(), p, nil
	}

	cfg := &Config{}
	var err error
	if strings.HasSuffix(path, ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, path, err
	}
	cfg.SetDefaults()
	return cfg, path, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTo writes cfg to path, as JSON for a .json path and TOML otherwise.
func SaveTo(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# swipe configuration file\n")
	sb.WriteString("# Distances are terminal cells, times are milliseconds.\n")
	sb.WriteString("\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFileWithDir(path, []byte(sb.String()), 0644, 0755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFileWithDir(path, data, 0644, 0755); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Swipe Settings Validation
	// ==========================================================================

	if c.Swipe.MoveDistanceRatio <= 0 || c.Swipe.MoveDistanceRatio > 1 {
		errs = append(errs, ValidationError{
			Field:   "swipe.move_distance_ratio",
			Message: fmt.Sprintf("must be in (0, 1], got %g", c.Swipe.MoveDistanceRatio),
		})
	}
	if c.Swipe.MoveTimeSpanMs < 0 || c.Swipe.MoveTimeSpanMs > 5000 {
		errs = append(errs, ValidationError{
			Field:   "swipe.move_time_span_ms",
			Message: fmt.Sprintf("must be 0-5000, got %d", c.Swipe.MoveTimeSpanMs),
		})
	}
	if c.Swipe.SpeedMs < 0 || c.Swipe.SpeedMs > 5000 {
		errs = append(errs, ValidationError{
			Field:   "swipe.speed_ms",
			Message: fmt.Sprintf("must be 0-5000, got %d", c.Swipe.SpeedMs),
		})
	}
	if c.Swipe.Slack < 0 {
		errs = append(errs, ValidationError{
			Field:   "swipe.slack",
			Message: "must be non-negative",
		})
	}
	if !oneOf(c.Swipe.Animation, ValidAnimations) {
		errs = append(errs, ValidationError{
			Field:   "swipe.animation",
			Message: fmt.Sprintf("invalid animation '%s', must be one of: %s", c.Swipe.Animation, strings.Join(ValidAnimations, ", ")),
		})
	}
	errs = append(errs, validateButtons("swipe.left", c.Swipe.Left)...)
	errs = append(errs, validateButtons("swipe.right", c.Swipe.Right)...)

	// ==========================================================================
	// UI Settings Validation
	// ==========================================================================

	if !oneOf(c.UI.Theme, []string{"dark", "light", "auto"}) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateButtons(field string, buttons []ButtonConfig) ValidateErrors {
	var errs ValidateErrors
	if len(buttons) > 9 {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("at most 9 buttons per side, got %d", len(buttons)),
		})
	}
	for i, b := range buttons {
		name := field + "[" + strconv.Itoa(i) + "]"
		if b.Theme != "" && !oneOf(b.Theme, ValidThemes) {
			errs = append(errs, ValidationError{
				Field:   name + ".theme",
				Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", b.Theme, strings.Join(ValidThemes, ", ")),
			})
		}
		if b.Action != "" && !oneOf(b.Action, ValidActions) {
			errs = append(errs, ValidationError{
				Field:   name + ".action",
				Message: fmt.Sprintf("invalid action '%s', must be one of: %s", b.Action, strings.Join(ValidActions, ", ")),
			})
		}
	}
	return errs
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	// Swipe defaults
	if c.Swipe.MoveDistanceRatio == 0 {
		c.Swipe.MoveDistanceRatio = defaults.Swipe.MoveDistanceRatio
	}
	if c.Swipe.MoveTimeSpanMs == 0 {
		c.Swipe.MoveTimeSpanMs = defaults.Swipe.MoveTimeSpanMs
	}
	if c.Swipe.SpeedMs == 0 {
		c.Swipe.SpeedMs = defaults.Swipe.SpeedMs
	}
	if c.Swipe.Animation == "" {
		c.Swipe.Animation = defaults.Swipe.Animation
	}
	// nil means "not configured"; an explicit empty list removes the side
	if c.Swipe.Left == nil {
		c.Swipe.Left = defaults.Swipe.Left
	}
	if c.Swipe.Right == nil {
		c.Swipe.Right = defaults.Swipe.Right
	}
	for _, group := range [][]ButtonConfig{c.Swipe.Left, c.Swipe.Right} {
		for i := range group {
			if group[i].Theme == "" {
				group[i].Theme = "default"
			}
			if group[i].Action == "" {
				group[i].Action = "none"
			}
		}
	}

	// UI defaults
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.PrefixCls == "" {
		c.UI.PrefixCls = defaults.UI.PrefixCls
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SWIPE_RATIO: overrides swipe.move_distance_ratio
//   - SWIPE_SPEED: overrides swipe.speed_ms
//   - SWIPE_ANIMATION: overrides swipe.animation
//   - SWIPE_DISABLED: set to "1" or "true" to disable swiping
//   - SWIPE_DB: overrides storage.path
//   - SWIPE_THEME: overrides ui.theme
//   - SWIPE_DEBUG: set to "1" or "true" to enable the debug log
func (c *Config) ApplyEnvOverrides() {
	if ratio := os.Getenv("SWIPE_RATIO"); ratio != "" {
		if v, err := strconv.ParseFloat(ratio, 64); err == nil {
			c.Swipe.MoveDistanceRatio = v
		}
	}

	if speed := os.Getenv("SWIPE_SPEED"); speed != "" {
		if v, err := strconv.Atoi(speed); err == nil {
			c.Swipe.SpeedMs = v
		}
	}

	if anim := os.Getenv("SWIPE_ANIMATION"); anim != "" {
		c.Swipe.Animation = strings.ToLower(anim)
	}

	if disabled := os.Getenv("SWIPE_DISABLED"); disabled != "" {
		c.Swipe.Disabled = disabled == "1" || strings.ToLower(disabled) == "true"
	}

	if db := os.Getenv("SWIPE_DB"); db != "" {
		c.Storage.Path = db
	}

	if theme := os.Getenv("SWIPE_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if debug := os.Getenv("SWIPE_DEBUG"); debug != "" {
		c.Log.Debug = debug == "1" || strings.ToLower(debug) == "true"
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "swipe.speed_ms").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "swipe.speed_ms").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			switch strings.ToLower(strVal) {
			case "1", "true", "yes", "on":
				field.SetBool(true)
			case "0", "false", "no", "off":
				field.SetBool(false)
			default:
				return fmt.Errorf("invalid boolean value: %q", strVal)
			}
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all scalar configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"swipe.move_distance_ratio",
		"swipe.move_time_span_ms",
		"swipe.speed_ms",
		"swipe.slack",
		"swipe.disabled",
		"swipe.auto_close",
		"swipe.animation",
		"storage.path",
		"ui.theme",
		"ui.prefix_cls",
		"ui.show_status",
		"ui.show_help",
		"log.debug",
		"log.path",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Swipe.Left = append([]ButtonConfig(nil), c.Swipe.Left...)
	clone.Swipe.Right = append([]ButtonConfig(nil), c.Swipe.Right...)
	if c.Swipe.Left != nil && clone.Swipe.Left == nil {
		clone.Swipe.Left = []ButtonConfig{}
	}
	if c.Swipe.Right != nil && clone.Swipe.Right == nil {
		clone.Swipe.Right = []ButtonConfig{}
	}
	return &clone
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
// A later Global call returns cfg instead of loading from disk.
func SetGlobal(cfg *Config) {
	first := false
	globalConfigOnce.Do(func() {
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
		first = true
	})
	if first {
		return
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
