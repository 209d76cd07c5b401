// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

// Activation is a press somewhere in the host, in host coordinates.
type Activation struct {
	X, Y float64
}

// Subscriber receives outside activations from an ActivationBus.
type Subscriber interface {
	// Contains reports whether the activation landed inside the subscriber's
	// own region. The host supplies this; the bus never walks a tree.
	Contains(Activation) bool
	// OutsideActivation handles a press outside the region and reports
	// whether the press was consumed.
	OutsideActivation() bool
}

type subscriberEntry struct {
	id  uint32
	sub Subscriber
}

// ActivationBus fans host-wide presses out to panels, skipping the panel the
// press landed in. It has a single writer, like the panels it serves.
type ActivationBus struct {
	subs   []subscriberEntry
	nextID uint32
}

// NewActivationBus creates an empty bus.
func NewActivationBus() *ActivationBus {
	return &ActivationBus{}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id  uint32
	bus *ActivationBus
}

// Subscribe registers s until the returned Subscription is released.
func (b *ActivationBus) Subscribe(s Subscriber) Subscription {
	b.nextID++
	b.subs = append(b.subs, subscriberEntry{id: b.nextID, sub: s})
	return Subscription{id: b.nextID, bus: b}
}

// Unsubscribe removes the subscriber. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	subs := s.bus.subs
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriberEntry{}
			s.bus.subs = subs[:len(subs)-1]
			return
		}
	}
}

// Active reports whether the subscription is still registered.
func (s Subscription) Active() bool {
	if s.bus == nil {
		return false
	}
	for _, e := range s.bus.subs {
		if e.id == s.id {
			return true
		}
	}
	return false
}

// Publish delivers a press to every subscriber it landed outside of and
// reports whether any of them consumed it.
func (b *ActivationBus) Publish(a Activation) bool {
	// Subscribers may unsubscribe while handling the press.
	snapshot := make([]subscriberEntry, len(b.subs))
	copy(snapshot, b.subs)

	consumed := false
	for _, e := range snapshot {
		if e.sub.Contains(a) {
			continue
		}
		if e.sub.OutsideActivation() {
			consumed = true
		}
	}
	return consumed
}

// Len returns the number of registered subscribers.
func (b *ActivationBus) Len() int {
	return len(b.subs)
}
