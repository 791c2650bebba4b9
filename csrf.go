package allauth

import (
	"net/http"
	"net/url"
)

// DefaultCSRFCookieName is the cookie the backend issues its CSRF token in.
const DefaultCSRFCookieName = "csrftoken"

// CSRFTokenSource supplies the CSRF token attached to mutating requests.
// Token acquisition itself (how the cookie got set) is outside this
// library's concern.
type CSRFTokenSource interface {
	CSRFToken() string
}

// StaticCSRFToken is a fixed token, useful in tests and app-mode clients
// that do not use cookie CSRF at all.
type StaticCSRFToken string

func (t StaticCSRFToken) CSRFToken() string { return string(t) }

// CookieCSRFTokenSource reads the CSRF cookie out of a cookie jar, typically
// the jar shared with the HTTP client performing the calls.
type CookieCSRFTokenSource struct {
	Jar        http.CookieJar
	BaseURL    *url.URL
	CookieName string
}

// NewCookieCSRFTokenSource builds a source over the given jar and base URL.
func NewCookieCSRFTokenSource(jar http.CookieJar, baseURL string) (*CookieCSRFTokenSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &CookieCSRFTokenSource{Jar: jar, BaseURL: u, CookieName: DefaultCSRFCookieName}, nil
}

func (s *CookieCSRFTokenSource) CSRFToken() string {
	if s == nil || s.Jar == nil || s.BaseURL == nil {
		return ""
	}
	name := s.CookieName
	if name == "" {
		name = DefaultCSRFCookieName
	}
	for _, cookie := range s.Jar.Cookies(s.BaseURL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
