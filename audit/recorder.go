// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"context"
	"sync"

	"github.com/danielhkuo/quickly-vote/session"
)

// Recorder keeps the last capacity events in memory.
type Recorder struct {
	mu       sync.Mutex
	capacity int
	events   []session.Event
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 256
	}
	return &Recorder{capacity: capacity}
}

func (r *Recorder) Notify(_ context.Context, e session.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	if over := len(r.events) - r.capacity; over > 0 {
		r.events = append([]session.Event(nil), r.events[over:]...)
	}
}

func (r *Recorder) Recent(_ context.Context, limit int) ([]session.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := 0
	if limit > 0 && len(r.events) > limit {
		start = len(r.events) - limit
	}
	return append([]session.Event(nil), r.events[start:]...), nil
}
