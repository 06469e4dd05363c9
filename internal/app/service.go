// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	repository "github.com/mergington/signups/internal/adapters/repository"
	"github.com/mergington/signups/internal/domain/model"
	"github.com/mergington/signups/pkg/logger"
	"github.com/mergington/signups/pkg/metrics"
)

// Service owns the activity directory and exposes the operations the HTTP
// layer depends on: list, signup, remove, and stats.
type Service struct {
	mu sync.RWMutex

	directory repository.Directory
	roster    model.Roster

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRoster sets the roster the directory is seeded with on Start.
func WithRoster(roster model.Roster) Option {
	return func(s *Service) {
		if roster != nil {
			s.roster = roster
		}
	}
}

// WithDirectory injects a pre-built directory, bypassing roster seeding.
func WithDirectory(d repository.Directory) Option {
	return func(s *Service) {
		if d != nil {
			s.directory = d
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		roster: model.DefaultRoster(),
		logger: nil, // resolved on Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start seeds the directory and marks the service ready. Safe to call twice.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.directory == nil {
		s.directory = repository.NewMemDirectory(ctx, repository.WithRoster(s.roster))
	}

	s.started = true
	s.startedAt = time.Now()

	metrics.UpdateActivitiesTotal(s.directory.Count(ctx))
	metrics.UpdateParticipantsTotal(s.directory.ParticipantCount(ctx))

	s.logger.Info(ctx, "activity directory ready",
		logger.Int("activities", s.directory.Count(ctx)),
		logger.Int("participants", s.directory.ParticipantCount(ctx)),
	)

	return nil
}

// Stop marks the service stopped. The directory is process-local; there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activity directory stopped")
}

// List returns the full activity mapping.
func (s *Service) List(ctx context.Context) model.Roster {
	return s.directory.List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	err := s.directory.Signup(ctx, activity, email)
	switch {
	case err == nil:
		metrics.RecordSignup()
		metrics.UpdateParticipantsTotal(s.directory.ParticipantCount(ctx))
		s.logger.Info(ctx, "signed up participant",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	case errors.Is(err, repository.ErrAlreadySignedUp):
		metrics.RecordSignupConflict()
	}
	return err
}

// Remove unregisters email from the named activity.
func (s *Service) Remove(ctx context.Context, activity, email string) error {
	err := s.directory.Remove(ctx, activity, email)
	switch {
	case err == nil:
		metrics.RecordRemoval()
		metrics.UpdateParticipantsTotal(s.directory.ParticipantCount(ctx))
		s.logger.Info(ctx, "removed participant",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	case errors.Is(err, repository.ErrNotSignedUp):
		metrics.RecordRemoveConflict()
	}
	return err
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	startedAt := s.startedAt
	s.mu.RUnlock()

	ctx := context.Background()

	stats := map[string]interface{}{
		"started": started,
	}
	if !started {
		return stats
	}

	roster := s.directory.List(ctx)
	spotsLeft := 0
	for _, a := range roster {
		spotsLeft += a.SpotsLeft()
	}

	stats["activities"] = s.directory.Count(ctx)
	stats["participants"] = s.directory.ParticipantCount(ctx)
	stats["spotsLeft"] = spotsLeft
	stats["uptimeSeconds"] = int(time.Since(startedAt).Seconds())

	metrics.UpdateActivitiesTotal(s.directory.Count(ctx))
	metrics.UpdateParticipantsTotal(s.directory.ParticipantCount(ctx))

	return stats
}
