package handler

import (
	"net/http"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/resp"
)

type challengeCreate struct {
	StartDate string `json:"startDate" validate:"required"`
}

type challengeUpdate struct {
	Status habits.ChallengeStatus `json:"status" validate:"required,enum"`
}

// ListChallenges responds with the current User's Challenges, newest first.
func (h *Handler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	list, err := h.challenges.ListForUser(r.Context(), u.ID)
	if err != nil {
		h.Err(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, list, resp.Authed())
}

// CreateChallenge starts a Challenge lasting habits.ChallengeDays for the current User.
func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(challengeCreate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	start, err := habits.ParseDate(body.StartDate)
	if err != nil {
		h.Err(w, r, err)
		return
	}

	c := habits.NewChallenge(u.ID, start)
	if err := h.challenges.Create(r.Context(), &c); err != nil {
		h.Err(w, r, err)
		return
	}

	c.Habits = make([]habits.Habit, 0)
	h.respond(w, r, http.StatusCreated, c, resp.Authed())
}

// GetChallenge responds with one of the current User's Challenges.
func (h *Handler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	c, err := h.challenges.FindForUser(r.Context(), u.ID, vars(r, "id"))
	if err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusOK, c, resp.Authed())
}

// UpdateChallenge sets the status of one of the current User's Challenges.
func (h *Handler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(challengeUpdate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	c, err := h.challenges.UpdateStatus(r.Context(), u.ID, vars(r, "id"), body.Status)
	if err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusOK, c, resp.Authed())
}

// DeleteChallenge deletes one of the current User's Challenges
// along with its Habits and their DailyEntries.
func (h *Handler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	if err := h.challenges.DeleteForUser(r.Context(), u.ID, vars(r, "id")); err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusNoContent, nil)
}
