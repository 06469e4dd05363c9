// Package smoke drives a running signup service through its HTTP contract
// and verifies the observable behavior end to end.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Students int           // Number of students to sign up
	Timeout  time.Duration // HTTP request timeout
	Cleanup  bool          // Remove signed-up students at the end
}

// messageResponse mirrors the success envelope of mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse mirrors the error envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// activity mirrors one record of the GET /activities payload.
type activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Stats holds smoke run statistics.
type Stats struct {
	Signups    int
	Duplicates int
	Removals   int
	Failures   int
	StartTime  time.Time
	Duration   time.Duration
}
