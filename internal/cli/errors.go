// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes shared by the CLI commands.
//
// Commands always return errors; main decides how to print them and
// which exit code to use.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitStorageError indicates the message database could not be used
	ExitStorageError = 4
	// ExitTTYError indicates an interactive command ran without a terminal
	ExitTTYError = 5
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "seed", "config")
	Action  string // Action being performed (e.g., "init", "open")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string
	Value   string
	Reason  string
	Example string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// UsageError is returned for unknown commands and subcommands.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error.
func NewUsageError(msg string) error {
	return &UsageError{Message: msg}
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	var validation *ValidationError
	var tty *TTYRequiredError
	var cfgErr config.ValidationError
	var cfgErrs config.ValidateErrors

	switch {
	case errors.As(err, &usage), errors.As(err, &validation):
		return ExitUsageError
	case errors.As(err, &tty):
		return ExitTTYError
	case errors.As(err, &cfgErr), errors.As(err, &cfgErrs):
		return ExitConfigError
	case errors.Is(err, storage.ErrDatabaseError), errors.Is(err, storage.ErrInvalidPath):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}

// PrintError writes err to stderr in the error style.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr, "Run 'swipe help' for usage.")
	}
}
