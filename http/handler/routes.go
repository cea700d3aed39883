package handler

import (
	"net/http"

	"github.com/xy-planning-network/habits/http/middleware"
	"github.com/xy-planning-network/habits/http/router"
)

// Register binds every route of the habits API to its handler on rt.
// limiter guards the login routes.
func (h *Handler) Register(rt *router.Router, limiter middleware.Adapter) {
	if limiter == nil {
		limiter = middleware.NoopAdapter
	}

	rt.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.Root},
		{Path: "/health", Method: http.MethodGet, Handler: h.Health},
	})

	authAPI := rt.Subrouter("/api/auth")
	authAPI.HandleRoutes([]router.Route{
		{Path: "/google", Method: http.MethodPost, Handler: h.GoogleLogin},
		{Path: "/google/callback", Method: http.MethodGet, Handler: h.GoogleCallback},
	}, limiter)
	authAPI.Handle(router.Route{Path: "/logout", Method: http.MethodPost, Handler: h.Logout})
	authAPI.AuthedRoutes([]router.Route{
		{Path: "/me", Method: http.MethodGet, Handler: h.Me},
	})

	api := rt.Subrouter("/api")
	api.HandleRoutes([]router.Route{
		{Path: "/habit-templates", Method: http.MethodGet, Handler: h.ListTemplates},
		{Path: "/habit-templates/{id}", Method: http.MethodGet, Handler: h.GetTemplate},
	})

	api.AuthedRoutes([]router.Route{
		{Path: "/users/profile", Method: http.MethodGet, Handler: h.Profile},
		{Path: "/users/profile", Method: http.MethodPut, Handler: h.UpdateProfile},

		{Path: "/challenges", Method: http.MethodGet, Handler: h.ListChallenges},
		{Path: "/challenges", Method: http.MethodPost, Handler: h.CreateChallenge},
		{Path: "/challenges/{id}", Method: http.MethodGet, Handler: h.GetChallenge},
		{Path: "/challenges/{id}", Method: http.MethodPut, Handler: h.UpdateChallenge},
		{Path: "/challenges/{id}", Method: http.MethodDelete, Handler: h.DeleteChallenge},
		{Path: "/challenges/{id}/habits", Method: http.MethodGet, Handler: h.ListHabits},
		{Path: "/challenges/{id}/habits", Method: http.MethodPost, Handler: h.CreateHabit},
		{Path: "/challenges/{id}/entries/{date}", Method: http.MethodGet, Handler: h.ListChallengeEntries},

		{Path: "/habits/{id}", Method: http.MethodGet, Handler: h.GetHabit},
		{Path: "/habits/{id}", Method: http.MethodPut, Handler: h.UpdateHabit},
		{Path: "/habits/{id}", Method: http.MethodDelete, Handler: h.ArchiveHabit},
		{Path: "/habits/{id}/entries", Method: http.MethodGet, Handler: h.ListEntries},
		{Path: "/habits/{id}/entries", Method: http.MethodPost, Handler: h.UpsertEntry},

		{Path: "/entries/{id}", Method: http.MethodPut, Handler: h.UpdateEntry},
		{Path: "/entries/{id}", Method: http.MethodDelete, Handler: h.DeleteEntry},
	})

	api.AuthedRoutes([]router.Route{
		{Path: "/admin/stats", Method: http.MethodGet, Handler: h.Stats},
		{Path: "/admin/users", Method: http.MethodGet, Handler: h.Users},
	}, middleware.RequireAdmin(h.Responder, h.admins))
}
