// Package guard provides routing middleware that sends visitors to the page
// matching their authentication state: pending flows to the flow's page,
// anonymous visitors to login, authenticated visitors away from auth pages.
package guard

import (
	"net/http"

	allauth "github.com/goliatone/go-allauth"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// ErrUnknownFlow is returned when a pending flow has no route mapping.
// Unknown flow ids are a programming error, not a fallback case.
var ErrUnknownFlow = goerrors.New("no route for pending flow", goerrors.CategoryInternal).
	WithTextCode("UNKNOWN_FLOW").
	WithCode(goerrors.CodeInternal)

// DefaultFlowPaths maps each pending flow to the page that resolves it.
var DefaultFlowPaths = map[allauth.FlowID]string{
	allauth.FlowLogin:             "/account/login",
	allauth.FlowLoginByCode:       "/account/login/confirm",
	allauth.FlowSignup:            "/account/signup",
	allauth.FlowVerifyEmail:       "/account/verify-email",
	allauth.FlowProviderSignup:    "/account/provider/signup",
	allauth.FlowMFAAuthenticate:   "/account/2fa/authenticate",
	allauth.FlowReauthenticate:    "/account/reauthenticate",
	allauth.FlowMFAReauthenticate: "/account/2fa/reauthenticate",
}

// Config drives the middleware.
type Config struct {
	// Resolve yields the authentication state for the request. Required.
	Resolve func(router.Context) allauth.AuthInfo

	// FlowPaths overrides DefaultFlowPaths when set.
	FlowPaths map[allauth.FlowID]string

	// LoginPath is where anonymous visitors without a pending flow go.
	// Defaults to the login flow path.
	LoginPath string

	// NextPath is where RequireAnonymous sends authenticated visitors.
	// Defaults to "/".
	NextPath string

	// Skip short-circuits the guard for matching requests.
	Skip func(router.Context) bool
}

func (c Config) flowPaths() map[allauth.FlowID]string {
	if c.FlowPaths != nil {
		return c.FlowPaths
	}
	return DefaultFlowPaths
}

func (c Config) loginPath() string {
	if c.LoginPath != "" {
		return c.LoginPath
	}
	return c.flowPaths()[allauth.FlowLogin]
}

// PathForFlow resolves the page for a pending flow using the configured
// mapping.
func (c Config) PathForFlow(id allauth.FlowID) (string, error) {
	if path, ok := c.flowPaths()[id]; ok {
		return path, nil
	}
	return "", ErrUnknownFlow.WithMetadata(map[string]any{"flow": string(id)})
}

// RequireAuthenticated redirects visitors who are not fully authenticated.
// A pending flow wins over the login fallback; a reauthentication
// requirement goes to the reauthenticate page. Requests made while state is
// still loading pass through so the page can resolve it client-side.
func RequireAuthenticated(cfg Config) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			info := cfg.Resolve(ctx)
			if info.IsLoading {
				return next(ctx)
			}

			if info.RequiresReauthentication {
				path, err := cfg.PathForFlow(allauth.FlowReauthenticate)
				if err != nil {
					return err
				}
				return ctx.Redirect(path, http.StatusFound)
			}

			if info.IsAuthenticated {
				return next(ctx)
			}

			if info.PendingFlow != nil {
				path, err := cfg.PathForFlow(info.PendingFlow.ID)
				if err != nil {
					return err
				}
				return ctx.Redirect(path, http.StatusFound)
			}

			return ctx.Redirect(cfg.loginPath(), http.StatusFound)
		}
	}
}

// RequireAnonymous redirects authenticated visitors away from pages meant
// for anonymous users, such as login and signup forms.
func RequireAnonymous(cfg Config) router.MiddlewareFunc {
	next := cfg.NextPath
	if next == "" {
		next = "/"
	}
	return func(handler router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return handler(ctx)
			}

			info := cfg.Resolve(ctx)
			if info.IsLoading {
				return handler(ctx)
			}

			if info.IsAuthenticated && !info.RequiresReauthentication {
				return ctx.Redirect(next, http.StatusFound)
			}

			return handler(ctx)
		}
	}
}
