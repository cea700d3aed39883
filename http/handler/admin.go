package handler

import (
	"net/http"

	"github.com/xy-planning-network/habits/http/resp"
)

const defaultPerPage = 20

type userPage struct {
	Page    int64 `schema:"page" validate:"gte=0"`
	PerPage int64 `schema:"perPage" validate:"gte=0,lte=100"`
}

// Stats responds with how many Users and Habits there are, listing every User newest first.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.Err(w, r, err)
		return
	}

	total, err := h.habits.Count(r.Context())
	if err != nil {
		h.Err(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, map[string]any{
		"totalUsers":  len(users),
		"totalHabits": total,
		"users":       users,
	}, resp.Authed())
}

// Users responds with a page of Users, newest first.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	q := new(userPage)
	if err := h.ParseQueryParams(r.URL.Query(), q); err != nil {
		h.Err(w, r, err)
		return
	}

	if q.PerPage == 0 {
		q.PerPage = defaultPerPage
	}

	pd, err := h.users.Paged(r.Context(), q.Page, q.PerPage)
	if err != nil {
		h.Err(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, pd, resp.Authed())
}
