// ABOUTME: Landing page handler
// ABOUTME: Serves the embedded index.html byte for byte at the site root

package handlers

import (
	"net/http"

	"fale-proxy-api/public"
	"github.com/go-chi/chi/v5"
)

// LandingHandler serves the static landing page
type LandingHandler struct {
	page []byte
}

// NewLandingHandler creates a landing handler for the packaged page
func NewLandingHandler() *LandingHandler {
	return &LandingHandler{page: public.IndexHTML}
}

// RegisterRoutes mounts the landing page on the router
func (h *LandingHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.ServeHTTP)
	router.Get("/index.html", h.ServeHTTP)
}

// ServeHTTP writes the landing page
func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.page)
}
