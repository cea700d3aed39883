package handler

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/postgres"
)

type habitCreate struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Type          habits.HabitType `json:"type" validate:"required,enum"`
	TargetCount   *int             `json:"targetCount" validate:"omitempty,gte=1"`
	PreferredTime *string          `json:"preferredTime" validate:"omitempty,max=50"`
	Icon          *string          `json:"icon" validate:"omitempty,max=50"`
	Order         int              `json:"order" validate:"gte=0"`
	TemplateID    *string          `json:"templateId" validate:"omitempty,max=100"`
}

type habitUpdate struct {
	Name          *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Type          *habits.HabitType `json:"type" validate:"omitempty,enum"`
	TargetCount   *int              `json:"targetCount" validate:"omitempty,gte=1"`
	PreferredTime *string           `json:"preferredTime" validate:"omitempty,max=50"`
	Icon          *string           `json:"icon" validate:"omitempty,max=50"`
	Order         *int              `json:"order" validate:"omitempty,gte=0"`
	IsActive      *bool             `json:"isActive"`
}

// updates lists the columns hu sets.
func (hu habitUpdate) updates() postgres.Updates {
	u := postgres.Updates{
		"name":           hu.Name,
		"target_count":   hu.TargetCount,
		"preferred_time": hu.PreferredTime,
		"icon":           hu.Icon,
		"sort_order":     hu.Order,
		"is_active":      hu.IsActive,
	}

	if hu.Type != nil {
		u["type"] = *hu.Type
	}

	return u
}

// ListHabits responds with the Habits of one of the current User's Challenges in order,
// archived ones included.
func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	list, err := h.habits.ListForChallenge(r.Context(), u.ID, vars(r, "id"))
	if err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusOK, list, resp.Authed())
}

// CreateHabit adds a Habit to one of the current User's Challenges.
//
// A Habit created from a HabitTemplate takes the template's icon unless one is given.
func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(habitCreate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	hb := habits.Habit{
		ChallengeID:   vars(r, "id"),
		Name:          body.Name,
		Type:          body.Type,
		TargetCount:   body.TargetCount,
		PreferredTime: body.PreferredTime,
		Icon:          body.Icon,
		Order:         body.Order,
		TemplateID:    body.TemplateID,
	}

	if hb.Icon == nil && hb.TemplateID != nil {
		if tmpl, err := habits.TemplateByID(*hb.TemplateID); err == nil {
			hb.Icon = &tmpl.Icon
		}
	}

	if err := h.habits.Create(r.Context(), u.ID, &hb); err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusCreated, hb, resp.Authed())
}

// GetHabit responds with one of the current User's Habits.
func (h *Handler) GetHabit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	hb, err := h.habits.FindForUser(r.Context(), u.ID, vars(r, "id"))
	if err != nil {
		h.Err(w, r, notFound(err, "habit"))
		return
	}

	h.respond(w, r, http.StatusOK, hb, resp.Authed())
}

// UpdateHabit applies the fields set in the request body to one of the current User's Habits.
func (h *Handler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(habitUpdate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	hb, err := h.habits.Update(r.Context(), u.ID, vars(r, "id"), body.updates())
	if err != nil {
		h.Err(w, r, notFound(err, "habit"))
		return
	}

	h.respond(w, r, http.StatusOK, hb, resp.Authed())
}

// ArchiveHabit deactivates one of the current User's Habits, keeping its DailyEntries.
func (h *Handler) ArchiveHabit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	if err := h.habits.Archive(r.Context(), u.ID, vars(r, "id")); err != nil {
		h.Err(w, r, notFound(err, "habit"))
		return
	}

	h.respond(w, r, http.StatusNoContent, nil)
}
