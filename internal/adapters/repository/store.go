// Package repository defines the activity directory interface and errors.
package repository

import (
	"context"

	"github.com/mergington/signups/internal/domain/model"
)

// Directory provides read/write access to the activity mapping.
type Directory interface {
	// List returns a deep copy of the full activity mapping.
	List(ctx context.Context) model.Roster

	// Get returns a copy of one activity.
	// Returns ErrActivityNotFound for an unknown name.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the named activity's participant list.
	// Returns ErrActivityNotFound for an unknown name and ErrAlreadySignedUp
	// when the email is already registered. The check and the append happen
	// atomically; a failed call leaves the directory unchanged.
	Signup(ctx context.Context, name, email string) error

	// Remove deletes email from the named activity's participant list.
	// Returns ErrActivityNotFound for an unknown name and ErrNotSignedUp
	// when the email is not registered.
	Remove(ctx context.Context, name, email string) error

	// Count returns the number of activities in the directory.
	Count(ctx context.Context) int

	// ParticipantCount returns the number of participants across all activities.
	ParticipantCount(ctx context.Context) int
}
