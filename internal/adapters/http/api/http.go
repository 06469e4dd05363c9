// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/mergington/signups/internal/adapters/repository"
	"github.com/mergington/signups/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns the full activity mapping.
	List(ctx context.Context) model.Roster

	// Signup registers email for the named activity.
	Signup(ctx context.Context, activity, email string) error

	// Remove unregisters email from the named activity.
	Remove(ctx context.Context, activity, email string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	removeHandler     *RemoveHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		removeHandler:     NewRemoveHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /activities", MetricsMiddleware(RequestIDMiddleware(s.activitiesHandler.HandleGetActivities), "activities"))
	mux.HandleFunc("POST /activities/{activity}/signup", MetricsMiddleware(RequestIDMiddleware(s.signupHandler.HandleSignup), "signup"))
	mux.HandleFunc("DELETE /activities/{activity}/remove", MetricsMiddleware(RequestIDMiddleware(s.removeHandler.HandleRemove), "remove"))
}

// messageResponse is the success envelope for mutating operations.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the error envelope; the detail field carries a
// human-readable description.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeDirectoryError translates directory errors to the wire contract.
func writeDirectoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
	case errors.Is(err, repository.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
