package handler

import (
	"net/http"

	"github.com/xy-planning-network/habits"
)

type templateFilter struct {
	Category habits.HabitCategory `schema:"category"`
}

// ListTemplates responds with the catalog of HabitTemplates.
// A known category query param narrows it to that category.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	q := new(templateFilter)
	if err := h.ParseQueryParams(r.URL.Query(), q); err != nil {
		h.Err(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, habits.TemplatesByCategory(q.Category))
}

// GetTemplate responds with the HabitTemplate identified in the path.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := habits.TemplateByID(vars(r, "id"))
	if err != nil {
		h.Err(w, r, notFound(err, "habit template"))
		return
	}

	h.respond(w, r, http.StatusOK, tmpl)
}
