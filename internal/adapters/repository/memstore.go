// Package repository defines the activity directory interface and errors.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mergington/signups/internal/domain/model"
	"github.com/mergington/signups/pkg/metrics"
)

// Map-backed, in-memory Directory implementation.
//
// Activity names are exact keys: no trimming, no case folding. Participant
// lists keep insertion order, so signup order is the order served back.
// Every operation is a single check-then-mutate step under one lock.
type MemDirectory struct {
	mu         sync.RWMutex
	activities model.Roster
}

var _ Directory = (*MemDirectory)(nil)

// NewMemDirectory creates an in-memory directory. Without a WithRoster
// option it starts empty.
func NewMemDirectory(_ context.Context, opts ...Option) *MemDirectory {
	d := &MemDirectory{
		activities: model.Roster{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// List returns a deep copy of the full activity mapping.
func (d *MemDirectory) List(_ context.Context) model.Roster {
	start := time.Now()
	d.mu.RLock()
	defer d.mu.RUnlock()
	defer observeQuery(start)

	return d.activities.Clone()
}

// Get returns a copy of one activity.
func (d *MemDirectory) Get(_ context.Context, name string) (model.Activity, error) {
	start := time.Now()
	d.mu.RLock()
	defer d.mu.RUnlock()
	defer observeQuery(start)

	a, ok := d.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's participant list.
func (d *MemDirectory) Signup(_ context.Context, name, email string) error {
	start := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()
	defer observeUpdate(start)

	a, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	d.activities[name] = a
	return nil
}

// Remove deletes email from the named activity's participant list.
func (d *MemDirectory) Remove(_ context.Context, name, email string) error {
	start := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()
	defer observeUpdate(start)

	a, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			d.activities[name] = a
			return nil
		}
	}
	return ErrNotSignedUp
}

// Count returns the number of activities in the directory.
func (d *MemDirectory) Count(_ context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.activities)
}

// ParticipantCount returns the number of participants across all activities.
func (d *MemDirectory) ParticipantCount(_ context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.activities.ParticipantCount()
}

func observeQuery(start time.Time) {
	metrics.RecordDirectoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)
}

func observeUpdate(start time.Time) {
	metrics.RecordDirectoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000.0)
}
