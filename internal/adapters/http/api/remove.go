// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
)

// RemoveDependencies defines the interface for removal operations.
type RemoveDependencies interface {
	Remove(ctx context.Context, activity, email string) error
}

// RemoveHandler handles participant removal requests.
type RemoveHandler struct {
	deps RemoveDependencies
}

// NewRemoveHandler creates a new remove handler.
func NewRemoveHandler(deps RemoveDependencies) *RemoveHandler {
	return &RemoveHandler{deps: deps}
}

// HandleRemove handles DELETE /activities/{activity}/remove?email= requests.
// Same input constraints as signup: exact activity match, email as-is.
func (h *RemoveHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	if err := h.deps.Remove(r.Context(), activity, email); err != nil {
		writeDirectoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, activity),
	})
}
