package handler

import "net/http"

// Root welcomes clients to the API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]string{"message": "Welcome to the Habits API!"})
}

// Health reports the API is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]string{"status": "healthy", "version": Version})
}
