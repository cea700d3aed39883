/*
Package router maps the habits API's endpoints to handlers on top of gorilla/mux.

Endpoints are declared as [Route] values and registered in groups,
so related endpoints share one middleware stack.
[Router.AuthedRoutes] puts CurrentUser in front of a group;
[Router.Subrouter] adds middlewares, such as rate limiting, to everything below a path prefix.
*/
package router
