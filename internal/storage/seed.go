// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

var (
	seedSenders = []string{
		"Ada Lovelace", "Grace Hopper", "Ken Thompson", "Barbara Liskov",
		"Dennis Ritchie", "Margaret Hamilton", "Rob Pike", "Frances Allen",
	}
	seedSubjects = []string{
		"Quarterly planning notes", "Re: build is red again", "Lunch on Friday?",
		"Design review: swipe gestures", "Your invoice is ready", "Weekly digest",
		"Oncall handoff", "Re: flaky test in CI", "Offsite agenda", "Draft for comments",
	}
	seedPreviews = []string{
		"Attached are the numbers we talked about yesterday.",
		"Looks like the last merge broke the release job, can you take a look?",
		"There is a new place around the corner that does great noodles.",
		"Please leave comments inline before Thursday.",
		"No action needed, this is just a summary.",
		"I pushed a fix but would like a second pair of eyes.",
	}
)

// Seed inserts n generated messages received before now, spaced a few
// minutes apart. rng may be nil.
func (s *Store) Seed(ctx context.Context, n int, now time.Time, rng *rand.Rand) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("seed count must be non-negative, got %d", n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	at := now
	for i := 0; i < n; i++ {
		at = at.Add(-time.Duration(1+rng.Intn(90)) * time.Minute)
		m := Message{
			Sender:     seedSenders[rng.Intn(len(seedSenders))],
			Subject:    seedSubjects[rng.Intn(len(seedSubjects))],
			Preview:    seedPreviews[rng.Intn(len(seedPreviews))],
			ReceivedAt: at,
			Read:       rng.Intn(3) == 0,
			Flagged:    rng.Intn(8) == 0,
		}
		if _, err := s.Insert(ctx, m); err != nil {
			return i, err
		}
	}
	return n, nil
}
