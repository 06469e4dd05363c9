// Package site handles the embedded signup web page.
package site

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

// indexPath is the redirect target for requests to the service root.
const indexPath = "/static/index.html"

// Register attaches the embedded site routes to mux.
// GET / redirects to the signup page; /static/ serves the embedded assets.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	handler := NewRootHandler()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("GET "+indexPath, handler.HandleIndex)
	mux.HandleFunc("GET /{$}", handler.HandleRoot)
}

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests with a temporary redirect to the
// signup page.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}

// HandleIndex serves the signup page itself. The file server canonicalizes
// paths ending in index.html to a 301, so the redirect target gets its own
// route served straight from the embedded bytes.
func (h *RootHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(indexHTML))
}
