package smoke

import (
	"fmt"

	"github.com/google/uuid"
)

// emailDomain is appended to generated student names.
const emailDomain = "mergington.edu"

// generateEmails produces n unique student emails for a smoke run. UUIDs keep
// reruns against a long-lived server from colliding with earlier signups.
func generateEmails(n int) []string {
	emails := make([]string, n)
	for i := range emails {
		emails[i] = fmt.Sprintf("smoke-%s@%s", uuid.New().String()[:8], emailDomain)
	}
	return emails
}

// pickActivity cycles deterministically through the activity names so every
// activity gets traffic when students outnumber activities.
func pickActivity(names []string, i int) string {
	return names[i%len(names)]
}
