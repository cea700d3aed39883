/*
Package auth authenticates people using the habits API.

# Login

A client sends the authorization code it received from Google's consent screen.
[*GoogleExchanger.Exchange] trades that code for the person's [Profile].
[*Issuer.Login] then creates or refreshes the matching habits.User
and issues a session token for them.

# Session tokens

[*TokenCodec] issues and verifies HS256-signed JWTs carrying the User's ID as the subject.
Tokens are stateless: nothing about them is stored and they cannot be revoked before they expire.

# Guarding requests

[*Guard.Authenticate] resolves the Authorization header of a request into the habits.User it identifies.
The User is looked up on every call, so a deleted User's tokens stop working immediately.
*/
package auth
