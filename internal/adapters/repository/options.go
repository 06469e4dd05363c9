// Package repository defines the activity directory interface and errors.
package repository

import "github.com/mergington/signups/internal/domain/model"

// Option applies a configuration option to the MemDirectory.
type Option func(*MemDirectory)

// WithRoster seeds the directory with a copy of the given roster.
func WithRoster(roster model.Roster) Option {
	return func(d *MemDirectory) {
		if roster != nil {
			d.activities = roster.Clone()
		}
	}
}
