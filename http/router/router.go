package router

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/xy-planning-network/habits"
	"github.com/xy-planning-network/habits/http/middleware"
)

// A Route is an endpoint: the method and path it answers,
// its handler and middlewares only it runs.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router registers the endpoints of the habits API on a *mux.Router.
type Router struct {
	Env         habits.Environment
	currentUser middleware.Adapter
	prefixMws   []middleware.Adapter
	shared      *shared
	mux         *mux.Router
}

// shared is common to a Router and all its Subrouters.
type shared struct {
	once      sync.Once
	globalMws []middleware.Adapter
	top       *mux.Router
	handler   http.Handler
}

// New constructs a *Router for env.
// currentUser guards the Routes registered with AuthedRoutes.
// Unmatched requests get a JSON 404, or 405 for a known path.
func New(env habits.Environment, currentUser middleware.Adapter) *Router {
	if currentUser == nil {
		currentUser = middleware.NoopAdapter
	}

	top := mux.NewRouter()
	top.NotFoundHandler = statusHandler(http.StatusNotFound)
	top.MethodNotAllowedHandler = statusHandler(http.StatusMethodNotAllowed)

	return &Router{Env: env, currentUser: currentUser, shared: &shared{top: top}, mux: top}
}

// Subrouter serves the Routes registered on it below prefix, e.g. "/api/auth",
// running mws on each of them.
func (r *Router) Subrouter(prefix string, mws ...middleware.Adapter) *Router {
	sub := *r
	sub.prefixMws = r.stack(mws)
	sub.mux = r.mux.PathPrefix(prefix).Subrouter()
	return &sub
}

// OnEveryRequest runs mws on all requests, even those matching no Route.
// Only calls made before the Router first serves take effect.
func (r *Router) OnEveryRequest(mws ...middleware.Adapter) {
	r.shared.globalMws = append(r.shared.globalMws, mws...)
}

func (r *Router) Handle(route Route) { r.HandleRoutes([]Route{route}) }

// HandleRoutes registers routes, each behind, in order:
// the Subrouter's middlewares, mws and the Route's own Middlewares.
// Panics in a Route's handler are recovered.
func (r *Router) HandleRoutes(routes []Route, mws ...middleware.Adapter) {
	outer := r.stack(mws)
	for _, route := range routes {
		h := middleware.ReportPanic(r.Env)(route.Handler)
		h = middleware.Chain(h, append(outer, route.Middlewares...)...)
		r.mux.Handle(route.Path, h).Methods(route.Method)
	}
}

// AuthedRoutes is HandleRoutes for Routes requiring a signed-in user.
// The user is resolved ahead of mws so they may authorize on it.
func (r *Router) AuthedRoutes(routes []Route, mws ...middleware.Adapter) {
	r.HandleRoutes(routes, append([]middleware.Adapter{r.currentUser}, mws...)...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s := r.shared
	s.once.Do(func() { s.handler = middleware.Chain(s.top, s.globalMws...) })
	s.handler.ServeHTTP(w, req)
}

// stack is r's prefix middlewares followed by mws, in a fresh slice.
func (r *Router) stack(mws []middleware.Adapter) []middleware.Adapter {
	out := make([]middleware.Adapter, 0, len(r.prefixMws)+len(mws))
	return append(append(out, r.prefixMws...), mws...)
}

// Vars returns the path variables of req, e.g. "id" for /api/challenges/{id}.
func Vars(req *http.Request) map[string]string { return mux.Vars(req) }

func statusHandler(code int) http.Handler {
	body, _ := json.Marshal(map[string]any{"data": map[string]string{"error": http.StatusText(code)}})
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(code)
		w.Write(body)
	})
}
