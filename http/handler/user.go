package handler

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/habits/http/resp"
)

type profileUpdate struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// Profile responds with the current User.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.Me(w, r)
}

// UpdateProfile renames the current User.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(profileUpdate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	updated, err := h.users.UpdateName(r.Context(), u.ID, strings.TrimSpace(body.Name))
	if err != nil {
		h.Err(w, r, notFound(err, "user"))
		return
	}

	h.respond(w, r, http.StatusOK, updated, resp.User(updated))
}
