// Package model contains domain models passed between layers.
package model

// Activity represents an extracurricular offering students can join.
// JSON tags mirror the payload served by GET /activities.
type Activity struct {
	Description     string   `json:"description" koanf:"description"`
	Schedule        string   `json:"schedule" koanf:"schedule"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants"`
	Participants    []string `json:"participants" koanf:"participants"`
}

// HasParticipant reports whether email is already on the participant list.
// Matching is exact: no trimming, no case folding.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SpotsLeft returns the remaining capacity. The value is informational only;
// signups are not rejected when it reaches zero.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Clone returns a deep copy so callers cannot alias the participant slice.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}

// Roster is the mapping from activity name to activity record.
type Roster map[string]Activity

// Clone deep-copies the roster.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for name, a := range r {
		out[name] = a.Clone()
	}
	return out
}

// ParticipantCount returns the number of participants across all activities.
func (r Roster) ParticipantCount() int {
	total := 0
	for _, a := range r {
		total += len(a.Participants)
	}
	return total
}
