package allauth

// Endpoint paths relative to the browser API base
// (e.g. https://example.com/auth/api/browser/v1).
const (
	pathConfig = "/config"

	pathChangePassword = "/account/password/change"
	pathEmail          = "/account/email"
	pathProviders      = "/account/providers"

	pathAuthenticators = "/account/authenticators"
	pathRecoveryCodes  = "/account/authenticators/recovery-codes"
	pathTOTP           = "/account/authenticators/totp"

	pathLogin                = "/auth/login"
	pathRequestLoginCode     = "/auth/code/request"
	pathConfirmLoginCode     = "/auth/code/confirm"
	pathSession              = "/auth/session"
	pathReauthenticate       = "/auth/reauthenticate"
	pathRequestPasswordReset = "/auth/password/request"
	pathResetPassword        = "/auth/password/reset"
	pathSignup               = "/auth/signup"
	pathVerifyEmail          = "/auth/email/verify"

	pathMFAAuthenticate   = "/auth/2fa/authenticate"
	pathMFAReauthenticate = "/auth/2fa/reauthenticate"

	pathProviderSignup   = "/auth/provider/signup"
	pathProviderRedirect = "/auth/provider/redirect"
	pathProviderToken    = "/auth/provider/token"

	pathSessions = "/auth/sessions"
)

// Custom headers the browser API consumes.
const (
	headerEmailVerificationKey = "X-Email-Verification-Key"
	headerPasswordResetKey     = "X-Password-Reset-Key"
	headerSessionToken         = "X-Session-Token"
	headerCSRFToken            = "X-CSRFToken"
	headerRequestID            = "X-Request-Id"
)
