/*
Package handler implements the HTTP endpoints of the habits API.

A [*Handler] embeds the [resp.Responder] and [req.Parser] so each endpoint
parses its payload, calls a postgres store scoped to the current User,
and responds through the same JSON envelope:

	{
		"data": {},
		"currentUser": {}
	}

[Handler.Register] binds every endpoint to a [router.Router].
Routes serving a User's own data are registered with router.AuthedRoutes,
so a handler can always retrieve the current User from the request context.
A record belonging to another User is indistinguishable from one that does not exist.
*/
package handler
