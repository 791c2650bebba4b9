package allauth

import (
	"encoding/json"
	"fmt"
)

// Logger is the minimal logging contract used across the package.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ErrorItem is a single backend validation or error entry. Param is set for
// field-level errors and empty for root-level messages.
type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// UserID normalizes the backend user id, which may arrive as either a JSON
// string or number. Two snapshots describe the same logical session only when
// their UserIDs compare equal.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id is neither string nor number: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// User is the authenticated principal as reported by the backend.
type User struct {
	ID                UserID `json:"id,omitempty"`
	Display           string `json:"display,omitempty"`
	Email             string `json:"email,omitempty"`
	Username          string `json:"username,omitempty"`
	HasUsablePassword bool   `json:"has_usable_password,omitempty"`
}

// Provider describes a social provider advertised by the backend.
type Provider struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name,omitempty"`
	ClientID               string   `json:"client_id,omitempty"`
	OpenIDConfigurationURL string   `json:"openid_configuration_url,omitempty"`
	Flows                  []string `json:"flows,omitempty"`
}

// Flow is a pending authentication requirement inside a snapshot. At most one
// flow is treated as "the" pending flow by the resolver.
type Flow struct {
	ID        FlowID              `json:"id"`
	Provider  *Provider           `json:"provider,omitempty"`
	IsPending bool                `json:"is_pending,omitempty"`
	Types     []AuthenticatorKind `json:"types,omitempty"`
}

// AuthenticationMethod records one completed authentication step on the
// current session. The Method field discriminates which of the optional
// fields are meaningful.
type AuthenticationMethod struct {
	Method          string            `json:"method"`
	At              int64             `json:"at,omitempty"`
	Email           string            `json:"email,omitempty"`
	Username        string            `json:"username,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	ID              int               `json:"id,omitempty"`
	Type            AuthenticatorKind `json:"type,omitempty"`
	Provider        string            `json:"provider,omitempty"`
	UID             string            `json:"uid,omitempty"`
	Reauthenticated bool              `json:"reauthenticated,omitempty"`
}

// AuthenticationMeta rides on authentication responses. App-mode clients also
// receive session/access tokens here; browser-mode clients rely on cookies.
type AuthenticationMeta struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	SessionToken    string `json:"session_token,omitempty"`
	AccessToken     string `json:"access_token,omitempty"`
}

// AuthData is the payload of authentication endpoint responses.
//
// Methods distinguishes absent (nil) from empty: the reauthentication
// heuristic in DetermineAuthChange only applies when both sides carry a
// methods list.
type AuthData struct {
	User    *User                  `json:"user,omitempty"`
	Flows   []Flow                 `json:"flows,omitempty"`
	Methods []AuthenticationMethod `json:"methods,omitempty"`
}

// AuthResponse is an immutable point-in-time authentication snapshot: the raw
// envelope every authentication-related call yields. It is superseded, never
// mutated, by the next snapshot.
type AuthResponse struct {
	Status int                 `json:"status"`
	Data   *AuthData           `json:"data,omitempty"`
	Meta   *AuthenticationMeta `json:"meta,omitempty"`
	Errors []ErrorItem         `json:"errors,omitempty"`
}

// ConfigurationData is the server-advertised capability document, keyed by
// subsystem. Contents are opaque feature maps.
type ConfigurationData struct {
	Account       map[string]any `json:"account,omitempty"`
	SocialAccount map[string]any `json:"socialaccount,omitempty"`
	MFA           map[string]any `json:"mfa,omitempty"`
	UserSessions  map[string]any `json:"usersessions,omitempty"`
}

// LoginByCodeEnabled reports whether the backend advertises login-by-code.
func (c ConfigurationData) LoginByCodeEnabled() bool {
	return subsystemFlag(c.Account, "login_by_code_enabled")
}

// MFAEnabled reports whether any second-factor types are advertised.
func (c ConfigurationData) MFAEnabled() bool {
	if c.MFA == nil {
		return false
	}
	types, ok := c.MFA["supported_types"].([]any)
	return ok && len(types) > 0
}

// SessionTrackingEnabled reports whether the sessions subsystem is advertised.
func (c ConfigurationData) SessionTrackingEnabled() bool {
	return subsystemFlag(c.UserSessions, "track_activity") || c.UserSessions != nil
}

func subsystemFlag(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, ok := m[key].(bool)
	return ok && v
}

// ConfigurationResponse is the configuration envelope. The resolver treats
// the system as not yet initialised until one with Status 200 is available.
type ConfigurationResponse struct {
	Status int               `json:"status"`
	Data   ConfigurationData `json:"data,omitempty"`
}

// EmailAddress is one address on the account.
type EmailAddress struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// ProviderAccount is a third-party account linked to the user.
type ProviderAccount struct {
	UID      string   `json:"uid"`
	Display  string   `json:"display"`
	Provider Provider `json:"provider"`
}

// Session describes one of the user's active sessions.
type Session struct {
	ID         any    `json:"id"`
	UserAgent  string `json:"user_agent"`
	IP         string `json:"ip"`
	CreatedAt  int64  `json:"created_at"`
	LastSeenAt int64  `json:"last_seen_at,omitempty"`
	IsCurrent  bool   `json:"is_current"`
}

// Authenticator is a registered second-factor authenticator. Fields beyond
// Type/CreatedAt/LastUsedAt apply only to some kinds.
type Authenticator struct {
	Type           AuthenticatorKind `json:"type"`
	CreatedAt      int64             `json:"created_at"`
	LastUsedAt     *int64            `json:"last_used_at,omitempty"`
	ID             int               `json:"id,omitempty"`
	Name           string            `json:"name,omitempty"`
	IsPasswordless bool              `json:"is_passwordless,omitempty"`

	// recovery codes only
	TotalCodeCount  int `json:"total_code_count,omitempty"`
	UnusedCodeCount int `json:"unused_code_count,omitempty"`
}

// RecoveryCodes is the sensitive recovery-codes view, including the unused
// codes themselves. Only returned by the dedicated endpoints.
type RecoveryCodes struct {
	Type            AuthenticatorKind `json:"type"`
	CreatedAt       int64             `json:"created_at"`
	LastUsedAt      *int64            `json:"last_used_at,omitempty"`
	TotalCodeCount  int               `json:"total_code_count"`
	UnusedCodeCount int               `json:"unused_code_count"`
	UnusedCodes     []string          `json:"unused_codes,omitempty"`
}

// EmailVerificationInfo describes the address behind a verification key.
type EmailVerificationInfo struct {
	Email string `json:"email"`
	User  User   `json:"user"`
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] ALLAUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] ALLAUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] ALLAUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] ALLAUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
