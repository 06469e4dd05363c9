package smoke

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mergington/signups/pkg/logger"
)

// Run executes the complete smoke test against a running service.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	defer func() { stats.Duration = time.Since(stats.StartTime) }()

	log := logger.Get()
	log.Info(ctx, "starting signup smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.Students),
		logger.String("timeout", config.Timeout.String()),
		logger.Bool("cleanup", config.Cleanup),
	)

	c := newClient(config.BaseURL, config.Timeout)

	// Step 1: list activities and check their shape.
	listing, err := c.listActivities(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing activities failed: %w", err)
	}
	if len(listing) == 0 {
		return stats, fmt.Errorf("service has no activities to sign up for")
	}
	names := make([]string, 0, len(listing))
	for name, a := range listing {
		if a.Participants == nil {
			return stats, fmt.Errorf("activity %q has no participants field", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	log.Info(ctx, "activities listed", logger.Int("count", len(names)))

	// Step 2: sign every student up and verify duplicates are rejected.
	emails := generateEmails(config.Students)
	signedUp := make(map[string]string, len(emails))
	for i, email := range emails {
		name := pickActivity(names, i)

		status, msg, err := c.signup(ctx, name, email)
		if err != nil {
			return stats, fmt.Errorf("signup request failed: %w", err)
		}
		if status != http.StatusOK || !strings.Contains(msg, "Signed up") {
			stats.Failures++
			return stats, fmt.Errorf("signup of %s for %q: got status %d, message %q", email, name, status, msg)
		}
		stats.Signups++
		signedUp[email] = name

		status, detail, err := c.signup(ctx, name, email)
		if err != nil {
			return stats, fmt.Errorf("duplicate signup request failed: %w", err)
		}
		if status != http.StatusBadRequest || !strings.Contains(detail, "already signed up") {
			stats.Failures++
			return stats, fmt.Errorf("duplicate signup of %s: got status %d, detail %q", email, status, detail)
		}
		stats.Duplicates++
	}

	// Step 3: verify every student appears exactly once in the listing.
	listing, err = c.listActivities(ctx)
	if err != nil {
		return stats, fmt.Errorf("relisting activities failed: %w", err)
	}
	for email, name := range signedUp {
		count := 0
		for _, p := range listing[name].Participants {
			if p == email {
				count++
			}
		}
		if count != 1 {
			stats.Failures++
			return stats, fmt.Errorf("%s appears %d times in %q, want exactly once", email, count, name)
		}
	}

	// Step 4: an unknown activity must 404 without side effects.
	status, detail, err := c.signup(ctx, "No Such Activity", "ghost@mergington.edu")
	if err != nil {
		return stats, fmt.Errorf("unknown-activity request failed: %w", err)
	}
	if status != http.StatusNotFound || !strings.Contains(detail, "not found") {
		stats.Failures++
		return stats, fmt.Errorf("unknown activity: got status %d, detail %q", status, detail)
	}

	// Step 5: optionally remove the smoke students again.
	if config.Cleanup {
		for email, name := range signedUp {
			status, msg, err := c.remove(ctx, name, email)
			if err != nil {
				return stats, fmt.Errorf("removal request failed: %w", err)
			}
			if status != http.StatusOK || !strings.Contains(msg, "Removed") {
				stats.Failures++
				return stats, fmt.Errorf("removal of %s from %q: got status %d, message %q", email, name, status, msg)
			}
			stats.Removals++

			status, detail, err := c.remove(ctx, name, email)
			if err != nil {
				return stats, fmt.Errorf("repeat removal request failed: %w", err)
			}
			if status != http.StatusBadRequest || !strings.Contains(detail, "not signed up") {
				stats.Failures++
				return stats, fmt.Errorf("repeat removal of %s: got status %d, detail %q", email, status, detail)
			}
		}
	}

	log.Info(ctx, "smoke test passed",
		logger.Int("signups", stats.Signups),
		logger.Int("duplicatesRejected", stats.Duplicates),
		logger.Int("removals", stats.Removals),
	)
	return stats, nil
}
