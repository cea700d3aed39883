package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/xy-planning-network/habits"
)

// A GoogleExchanger is an Exchanger backed by Google's OAuth 2.0 and userinfo APIs.
type GoogleExchanger struct {
	config      oauth2.Config
	userinfoURL string
}

// An ExchangerOptFn configures a GoogleExchanger when constructing a new one.
type ExchangerOptFn func(*GoogleExchanger)

// WithOAuthEndpoint replaces Google's OAuth 2.0 endpoint.
func WithOAuthEndpoint(endpoint oauth2.Endpoint) ExchangerOptFn {
	return func(g *GoogleExchanger) {
		g.config.Endpoint = endpoint
	}
}

// WithUserinfoURL replaces the base URL of Google's userinfo API.
func WithUserinfoURL(url string) ExchangerOptFn {
	return func(g *GoogleExchanger) {
		g.userinfoURL = url
	}
}

// NewGoogleExchanger constructs a GoogleExchanger for the Google OAuth client identified by clientID.
func NewGoogleExchanger(clientID, clientSecret string, opts ...ExchangerOptFn) (*GoogleExchanger, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf(`%w: google client config cannot be ""`, habits.ErrBadConfig)
	}

	g := &GoogleExchanger{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes: []string{
				goauth2.OpenIDScope,
				goauth2.UserinfoEmailScope,
				goauth2.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Exchange trades code for an access token and uses it to fetch the granting person's Profile.
// redirectURI must match the one the client sent the person to Google's consent screen with.
//
// Exchange returns ErrOAuthCodeInvalid if Google rejects code,
// ErrOAuthExchangeFailed if either call to Google otherwise fails
// and ErrProfileIncomplete if Google's profile lacks a subject or email.
func (g *GoogleExchanger) Exchange(ctx context.Context, code, redirectURI string) (Profile, error) {
	cfg := g.config
	cfg.RedirectURL = redirectURI

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil && isClientError(rErr.Response.StatusCode) {
			return Profile{}, fmt.Errorf("%w: %s", ErrOAuthCodeInvalid, err)
		}

		return Profile{}, fmt.Errorf("%w: %s", ErrOAuthExchangeFailed, err)
	}

	opts := []option.ClientOption{option.WithTokenSource(cfg.TokenSource(ctx, tok))}
	if g.userinfoURL != "" {
		opts = append(opts, option.WithEndpoint(g.userinfoURL))
	}

	service, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrOAuthExchangeFailed, err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrOAuthExchangeFailed, err)
	}

	p := Profile{
		Subject: info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}

	if err := p.Valid(); err != nil {
		return Profile{}, err
	}

	if p.Name == "" {
		p.Name = p.Email
	}

	return p, nil
}

func isClientError(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
