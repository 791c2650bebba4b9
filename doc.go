// Package allauth is a client for the django-allauth headless browser API.
//
// The package has two halves. The HTTP client covers the full endpoint
// surface: login, signup, session, password reset, email management, social
// providers, MFA, and session listing. Every response is classified into a
// typed Result whose Kind is derived purely from the envelope status code,
// per endpoint, so callers switch on semantics instead of raw HTTP statuses.
//
// The second half is the state engine. Responses that carry authentication
// information (status 401 or 410, or 200 with an authenticated meta) feed a
// ChangeNotifier, which resolves each snapshot into an AuthInfo and compares
// consecutive snapshots to detect transitions: LOGGED_IN, LOGGED_OUT,
// REAUTHENTICATED, REAUTHENTICATION_REQUIRED, and FLOW_UPDATED. Subscribers
// receive the resolved state and the transition kind; the last transition is
// also retained for single-shot consumption via ConsumeEvent.
//
// The store subpackage persists session tokens for app-mode clients, and the
// guard subpackage provides routing middleware that redirects visitors to
// the page matching their pending authentication flow.
package allauth
