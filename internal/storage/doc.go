// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the inbox shown behind the swipe rows.
//
// Messages live in a SQLite database (modernc.org/sqlite, no cgo) at
// ~/.swipe/inbox.db unless configured otherwise. Every row action a button
// can trigger maps to one Store method.
//
// # Usage
//
//	store, err := storage.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	msgs, err := store.List(ctx, false)
//	updated, err := store.ToggleRead(ctx, msgs[0].ID)
package storage
