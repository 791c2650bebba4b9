package allauth

// FlowID identifies a pending, possibly multi-step authentication requirement
// advertised by the backend. The set is closed; the backend never sends ids
// outside of it.
type FlowID string

const (
	FlowVerifyEmail       FlowID = "verify_email"
	FlowLogin             FlowID = "login"
	FlowLoginByCode       FlowID = "login_by_code"
	FlowSignup            FlowID = "signup"
	FlowProviderRedirect  FlowID = "provider_redirect"
	FlowProviderSignup    FlowID = "provider_signup"
	FlowMFAAuthenticate   FlowID = "mfa_authenticate"
	FlowReauthenticate    FlowID = "reauthenticate"
	FlowMFAReauthenticate FlowID = "mfa_reauthenticate"
)

// AuthenticatorKind is the kind of a second-factor authenticator.
type AuthenticatorKind string

const (
	AuthenticatorTOTP          AuthenticatorKind = "totp"
	AuthenticatorRecoveryCodes AuthenticatorKind = "recovery_codes"
	AuthenticatorWebAuthn      AuthenticatorKind = "webauthn"
)

// AuthProcess selects how a social provider interaction is applied to the
// current session: authenticate, or connect to the already logged-in account.
type AuthProcess string

const (
	ProcessLogin   AuthProcess = "login"
	ProcessConnect AuthProcess = "connect"
)

// AuthChangeKind names the semantic transition between two successive auth
// snapshots. AuthChangeNone means the pair carries no discernible transition.
type AuthChangeKind string

const (
	AuthChangeNone                     AuthChangeKind = ""
	AuthChangeLoggedIn                 AuthChangeKind = "LOGGED_IN"
	AuthChangeLoggedOut                AuthChangeKind = "LOGGED_OUT"
	AuthChangeReauthenticated          AuthChangeKind = "REAUTHENTICATED"
	AuthChangeReauthenticationRequired AuthChangeKind = "REAUTHENTICATION_REQUIRED"
	AuthChangeFlowUpdated              AuthChangeKind = "FLOW_UPDATED"
)

// Status codes the browser API uses as envelope discriminants. The envelope
// status, not the payload shape, decides how a response is interpreted.
const (
	StatusOK               = 200
	StatusInvalid          = 400
	StatusNotAuthenticated = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusConflict         = 409
	StatusSessionGone      = 410
	StatusTooManyRequests  = 429
)
