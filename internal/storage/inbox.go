// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound      = errors.New("message not found")
	ErrDatabaseError = errors.New("database error")
	ErrInvalidPath   = errors.New("invalid path")
)

// =============================================================================
// MESSAGE
// =============================================================================

// Message is one inbox item.
type Message struct {
	ID         string
	Sender     string
	Subject    string
	Preview    string
	ReceivedAt time.Time
	Read       bool
	Flagged    bool
	Archived   bool
}

// =============================================================================
// INBOX STORE
// =============================================================================

// Store is a SQLite-backed inbox.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the inbox database at path.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time; one connection also keeps
	// an in-memory database alive and shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Printf("STORAGE_OPEN | path=%s", path)
	return s, nil
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return err
	}
	_, err := s.db.Exec(InitMetadata)
	return err
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// =============================================================================
// QUERIES
// =============================================================================

const messageColumns = "id, sender, subject, preview, received_at, read, flagged, archived"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(r rowScanner) (Message, error) {
	var (
		m                       Message
		receivedMs              int64
		read, flagged, archived int
	)
	if err := r.Scan(&m.ID, &m.Sender, &m.Subject, &m.Preview, &receivedMs, &read, &flagged, &archived); err != nil {
		return Message{}, err
	}
	m.ReceivedAt = time.UnixMilli(receivedMs)
	m.Read = read != 0
	m.Flagged = flagged != 0
	m.Archived = archived != 0
	return m, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Insert stores m, generating an ID when it has none, and returns the stored message.
func (s *Store) Insert(ctx context.Context, m Message) (Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.ReceivedAt.IsZero() {
		m.ReceivedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages ("+messageColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.Sender, m.Subject, m.Preview, m.ReceivedAt.UnixMilli(),
		boolInt(m.Read), boolInt(m.Flagged), boolInt(m.Archived))
	if err != nil {
		return Message{}, fmt.Errorf("%w: insert %s: %v", ErrDatabaseError, m.ID, err)
	}
	return m, nil
}

// List returns messages newest first. Archived messages are skipped unless
// includeArchived is set.
func (s *Store) List(ctx context.Context, includeArchived bool) ([]Message, error) {
	query := "SELECT " + messageColumns + " FROM messages"
	if !includeArchived {
		query += " WHERE archived = 0"
	}
	query += " ORDER BY received_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrDatabaseError, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrDatabaseError, err)
	}
	return out, nil
}

// Get returns one message.
func (s *Store) Get(ctx context.Context, id string) (Message, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+messageColumns+" FROM messages WHERE id = ?", id)
	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Message{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Message{}, fmt.Errorf("%w: get %s: %v", ErrDatabaseError, id, err)
	}
	return m, nil
}

// Counts returns the number of visible (unarchived) and unread messages.
func (s *Store) Counts(ctx context.Context) (total, unread int, err error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN read = 0 THEN 1 ELSE 0 END), 0) FROM messages WHERE archived = 0")
	if err := row.Scan(&total, &unread); err != nil {
		return 0, 0, fmt.Errorf("%w: counts: %v", ErrDatabaseError, err)
	}
	return total, unread, nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// update runs a single-row statement and reports ErrNotFound when no row matched.
func (s *Store) update(ctx context.Context, id, op, stmt string) error {
	res, err := s.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDatabaseError, op, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDatabaseError, op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	log.Printf("STORAGE_%s | id=%s", op, id)
	return nil
}

// ToggleRead flips the read flag and returns the updated message.
func (s *Store) ToggleRead(ctx context.Context, id string) (Message, error) {
	if err := s.update(ctx, id, "TOGGLE_READ", "UPDATE messages SET read = 1 - read WHERE id = ?"); err != nil {
		return Message{}, err
	}
	return s.Get(ctx, id)
}

// ToggleFlag flips the flagged mark and returns the updated message.
func (s *Store) ToggleFlag(ctx context.Context, id string) (Message, error) {
	if err := s.update(ctx, id, "TOGGLE_FLAG", "UPDATE messages SET flagged = 1 - flagged WHERE id = ?"); err != nil {
		return Message{}, err
	}
	return s.Get(ctx, id)
}

// Archive hides a message from the default listing.
func (s *Store) Archive(ctx context.Context, id string) error {
	return s.update(ctx, id, "ARCHIVE", "UPDATE messages SET archived = 1 WHERE id = ?")
}

// Unarchive returns an archived message to the inbox.
func (s *Store) Unarchive(ctx context.Context, id string) error {
	return s.update(ctx, id, "UNARCHIVE", "UPDATE messages SET archived = 0 WHERE id = ?")
}

// Delete removes a message permanently.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.update(ctx, id, "DELETE", "DELETE FROM messages WHERE id = ?")
}

// Clear removes every message, archived or not, and returns how many were
// deleted.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM messages")
	if err != nil {
		return 0, fmt.Errorf("%w: clear: %v", ErrDatabaseError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: clear: %v", ErrDatabaseError, err)
	}
	log.Printf("STORAGE_CLEAR | removed=%d", n)
	return int(n), nil
}
