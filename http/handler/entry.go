package handler

import (
	"net/http"
	"time"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/resp"
	"github.com/xy-planning-network/habits/postgres"
)

type entryRange struct {
	StartDate time.Time `schema:"startDate"`
	EndDate   time.Time `schema:"endDate"`
}

type entryUpsert struct {
	Date      string `json:"date" validate:"required"`
	Completed bool   `json:"completed"`
	Count     *int   `json:"count" validate:"omitempty,gte=0"`
}

type entryUpdate struct {
	Completed *bool `json:"completed"`
	Count     *int  `json:"count" validate:"omitempty,gte=0"`
}

// ListEntries responds with the DailyEntries of one of the current User's Habits, newest first,
// optionally bounded by the startDate and endDate query params.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	q := new(entryRange)
	if err := h.ParseQueryParams(r.URL.Query(), q); err != nil {
		h.Err(w, r, err)
		return
	}

	list, err := h.entries.ListForHabit(r.Context(), u.ID, vars(r, "id"), q.StartDate, q.EndDate)
	if err != nil {
		h.Err(w, r, notFound(err, "habit"))
		return
	}

	h.respond(w, r, http.StatusOK, list, resp.Authed())
}

// UpsertEntry records the progress on one of the current User's Habits for a day,
// replacing what was recorded that day before.
//
// The day cannot be in the future nor outside the Habit's Challenge.
func (h *Handler) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(entryUpsert)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	date, err := habits.ParseDate(body.Date)
	if err != nil {
		h.Err(w, r, err)
		return
	}

	hb, err := h.habits.FindForUser(r.Context(), u.ID, vars(r, "id"))
	if err != nil {
		h.Err(w, r, notFound(err, "habit"))
		return
	}

	c, err := h.challenges.FindForUser(r.Context(), u.ID, hb.ChallengeID)
	if err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	if err := habits.ValidateEntryDate(date, c, h.now()); err != nil {
		h.Err(w, r, err)
		return
	}

	e := habits.DailyEntry{HabitID: hb.ID, Date: date, Completed: body.Completed, Count: body.Count}
	if err := h.entries.Upsert(r.Context(), &e); err != nil {
		h.Err(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, e, resp.Authed())
}

// ListChallengeEntries responds with the DailyEntries recorded on the day in the path
// for the active Habits of one of the current User's Challenges.
func (h *Handler) ListChallengeEntries(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	date, err := habits.ParseDate(vars(r, "date"))
	if err != nil {
		h.Err(w, r, err)
		return
	}

	list, err := h.entries.ListForChallengeDate(r.Context(), u.ID, vars(r, "id"), date)
	if err != nil {
		h.Err(w, r, notFound(err, "challenge"))
		return
	}

	h.respond(w, r, http.StatusOK, list, resp.Authed())
}

// UpdateEntry applies the fields set in the request body to one of the current User's DailyEntries.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	body := new(entryUpdate)
	if err := h.ParseBody(r.Body, body); err != nil {
		h.Err(w, r, err)
		return
	}

	updates := postgres.Updates{"completed": body.Completed, "count": body.Count}
	e, err := h.entries.Update(r.Context(), u.ID, vars(r, "id"), updates)
	if err != nil {
		h.Err(w, r, notFound(err, "entry"))
		return
	}

	h.respond(w, r, http.StatusOK, e, resp.Authed())
}

// DeleteEntry deletes one of the current User's DailyEntries.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.user(w, r)
	if !ok {
		return
	}

	if err := h.entries.DeleteForUser(r.Context(), u.ID, vars(r, "id")); err != nil {
		h.Err(w, r, notFound(err, "entry"))
		return
	}

	h.respond(w, r, http.StatusNoContent, nil)
}
