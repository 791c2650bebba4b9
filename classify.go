package allauth

// Envelope is a decoded response envelope whose data payload has type T.
// Everything the browser API returns, success or failure, arrives in this
// shape; the status field alone decides how the rest is interpreted.
type Envelope[T any] struct {
	Status int            `json:"status"`
	Data   T              `json:"data,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
	Errors []ErrorItem    `json:"errors,omitempty"`
}

// Classification is a pure, stateless mapping: no classifier below performs
// I/O, mutates its input, or returns an error. Unexpected statuses degrade to
// the validation-error shape with a synthetic "unknown" item so the result
// set stays closed. Each function reproduces the status vocabulary of one
// endpoint; the vocabulary is fixed per endpoint, never inferred from the
// payload.

func okResult[T any](status int, data T) Result[T] {
	return Result[T]{Kind: ResultOK, Status: status, Data: data}
}

func reasonResult[T any](status int, kind ResultKind) Result[T] {
	return Result[T]{Kind: kind, Status: status}
}

func validationResult[T any](errs []ErrorItem) Result[T] {
	if errs == nil {
		errs = []ErrorItem{}
	}
	return Result[T]{Kind: ResultValidationError, Status: StatusInvalid, Errors: errs}
}

// degradeResult keeps the discriminated set exhaustive: a status outside the
// endpoint's vocabulary becomes a validation error with a synthetic item
// embedding the offending status.
func degradeResult[T any](status int, errs []ErrorItem) Result[T] {
	if errs == nil {
		errs = []ErrorItem{unknownStatusItem(status)}
	}
	return Result[T]{Kind: ResultValidationError, Status: StatusInvalid, Errors: errs}
}

func authData(resp *AuthResponse) AuthData {
	if resp == nil || resp.Data == nil {
		return AuthData{}
	}
	return *resp.Data
}

func okAuthResult(resp *AuthResponse) AuthResult {
	return AuthResult{Kind: ResultOK, Status: StatusOK, Data: authData(resp), Meta: resp.Meta}
}

func pendingFlowResult(resp *AuthResponse) AuthResult {
	meta := resp.Meta
	if meta == nil {
		meta = &AuthenticationMeta{}
	}
	return AuthResult{
		Kind:   ResultPendingFlow,
		Status: StatusNotAuthenticated,
		Data:   authData(resp),
		Meta:   meta,
	}
}

// ClassifyLogin maps POST /auth/login (200, 400, 401, 409).
func ClassifyLogin(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifySignup maps POST /auth/signup (200, 400, 401, 403, 409).
func ClassifySignup(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusForbidden:
		return reasonResult[AuthData](StatusForbidden, ResultForbidden)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifySession maps GET /auth/session (200, 401, 410). The 410 is the only
// place the API signals that the session object itself is gone. An unexpected
// status is treated as an anonymous 401 with empty data, matching the
// endpoint's terminal role in session checking.
func ClassifySession(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusSessionGone:
		return reasonResult[AuthData](StatusSessionGone, ResultSessionExpired)
	default:
		return pendingFlowResult(resp)
	}
}

// ClassifyLogout maps DELETE /auth/session, which always answers 401: the
// response is the anonymous snapshot that replaces the destroyed session.
func ClassifyLogout(resp *AuthResponse) AuthResult {
	return pendingFlowResult(resp)
}

// ClassifyReauthenticate maps POST /auth/reauthenticate (200, 400).
func ClassifyReauthenticate(resp *AuthResponse) AuthResult {
	if resp.Status == StatusOK {
		return okAuthResult(resp)
	}
	return validationResult[AuthData](resp.Errors)
}

// ClassifyRequestPasswordReset maps POST /auth/password/request (200, 400, 401).
func ClassifyRequestPasswordReset(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyResetPassword maps POST /auth/password/reset (200, 400, 401, 409).
func ClassifyResetPassword(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyRequestLoginCode maps POST /auth/code/request (400, 401). A 401 is
// the expected outcome: the login_by_code flow is now pending.
func ClassifyRequestLoginCode(resp *AuthResponse) AuthResult {
	if resp.Status == StatusNotAuthenticated {
		return pendingFlowResult(resp)
	}
	return validationResult[AuthData](resp.Errors)
}

// ClassifyConfirmLoginCode maps POST /auth/code/confirm (200, 400, 401, 409).
func ClassifyConfirmLoginCode(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyVerifyEmail maps POST /auth/email/verify (200, 400, 401, 409).
func ClassifyVerifyEmail(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyAuthenticateByToken maps POST /auth/provider/token (200, 400, 401, 403).
func ClassifyAuthenticateByToken(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusForbidden:
		return reasonResult[AuthData](StatusForbidden, ResultForbidden)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyProviderSignup maps POST /auth/provider/signup (200, 400, 401, 403, 409).
func ClassifyProviderSignup(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	case StatusForbidden:
		return reasonResult[AuthData](StatusForbidden, ResultForbidden)
	case StatusConflict:
		return reasonResult[AuthData](StatusConflict, ResultConflict)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyMFAAuthenticate maps POST /auth/2fa/authenticate (200, 400, 401).
func ClassifyMFAAuthenticate(resp *AuthResponse) AuthResult {
	switch resp.Status {
	case StatusOK:
		return okAuthResult(resp)
	case StatusInvalid:
		return validationResult[AuthData](resp.Errors)
	case StatusNotAuthenticated:
		return pendingFlowResult(resp)
	default:
		return degradeResult[AuthData](resp.Status, resp.Errors)
	}
}

// ClassifyMFAReauthenticate maps POST /auth/2fa/reauthenticate (200, 400).
func ClassifyMFAReauthenticate(resp *AuthResponse) AuthResult {
	if resp.Status == StatusOK {
		return okAuthResult(resp)
	}
	return validationResult[AuthData](resp.Errors)
}

// ClassifyChangePassword maps POST /account/password/change (200, 400, 401).
// The 401 here is terminal: the operation requires authentication, there is
// no flow to inspect.
func ClassifyChangePassword(resp Envelope[struct{}]) EmptyResult {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, struct{}{})
	case StatusInvalid:
		return validationResult[struct{}](resp.Errors)
	case StatusNotAuthenticated:
		return reasonResult[struct{}](StatusNotAuthenticated, ResultAuthenticationRequired)
	default:
		return degradeResult[struct{}](resp.Status, resp.Errors)
	}
}

// ClassifyRequestEmailVerification maps PUT /account/email (200, 400, 403, 429).
// The 403 on this endpoint means rate limited, not forbidden.
func ClassifyRequestEmailVerification(resp Envelope[struct{}]) EmptyResult {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, struct{}{})
	case StatusInvalid:
		return validationResult[struct{}](resp.Errors)
	case StatusForbidden:
		return reasonResult[struct{}](StatusForbidden, ResultRateLimited)
	case StatusTooManyRequests:
		return reasonResult[struct{}](StatusTooManyRequests, ResultTooManyRequests)
	default:
		return degradeResult[struct{}](resp.Status, resp.Errors)
	}
}

// ClassifyGetPasswordReset maps GET /auth/password/reset (200, 400, 409).
func ClassifyGetPasswordReset(resp Envelope[struct{}]) EmptyResult {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, struct{}{})
	case StatusInvalid:
		return validationResult[struct{}](resp.Errors)
	case StatusConflict:
		return reasonResult[struct{}](StatusConflict, ResultConflict)
	default:
		return degradeResult[struct{}](resp.Status, resp.Errors)
	}
}

// ClassifyEmailVerificationInfo maps GET /auth/email/verify (200, 400, 409).
func ClassifyEmailVerificationInfo(resp Envelope[EmailVerificationInfo]) Result[EmailVerificationInfo] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, resp.Data)
	case StatusInvalid:
		return validationResult[EmailVerificationInfo](resp.Errors)
	case StatusConflict:
		return reasonResult[EmailVerificationInfo](StatusConflict, ResultConflict)
	default:
		return degradeResult[EmailVerificationInfo](resp.Status, resp.Errors)
	}
}

// ClassifyEmailAddresses maps GET /account/email (200).
func ClassifyEmailAddresses(resp Envelope[[]EmailAddress]) Result[[]EmailAddress] {
	return okResult(StatusOK, emptyIfNil(resp.Data))
}

// ClassifyAddEmail maps POST /account/email (200, 400, 401, 409, 429).
func ClassifyAddEmail(resp Envelope[[]EmailAddress]) Result[[]EmailAddress] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, emptyIfNil(resp.Data))
	case StatusInvalid:
		return validationResult[[]EmailAddress](resp.Errors)
	case StatusNotAuthenticated:
		return reasonResult[[]EmailAddress](StatusNotAuthenticated, ResultAuthenticationRequired)
	case StatusConflict:
		return reasonResult[[]EmailAddress](StatusConflict, ResultConflict)
	case StatusTooManyRequests:
		return reasonResult[[]EmailAddress](StatusTooManyRequests, ResultTooManyRequests)
	default:
		return degradeResult[[]EmailAddress](resp.Status, resp.Errors)
	}
}

// ClassifyDeleteEmail maps DELETE /account/email (200, 400, 429).
func ClassifyDeleteEmail(resp Envelope[[]EmailAddress]) Result[[]EmailAddress] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, emptyIfNil(resp.Data))
	case StatusInvalid:
		return validationResult[[]EmailAddress](resp.Errors)
	case StatusTooManyRequests:
		return reasonResult[[]EmailAddress](StatusTooManyRequests, ResultTooManyRequests)
	default:
		return degradeResult[[]EmailAddress](resp.Status, resp.Errors)
	}
}

// ClassifyMarkPrimary maps PATCH /account/email (200, 400, 429).
func ClassifyMarkPrimary(resp Envelope[[]EmailAddress]) Result[[]EmailAddress] {
	return ClassifyDeleteEmail(resp)
}

// ClassifyProviderAccounts maps GET /account/providers (200).
func ClassifyProviderAccounts(resp Envelope[[]ProviderAccount]) Result[[]ProviderAccount] {
	return okResult(StatusOK, emptyIfNil(resp.Data))
}

// ClassifyDisconnectProvider maps DELETE /account/providers (200, 400).
func ClassifyDisconnectProvider(resp Envelope[[]ProviderAccount]) Result[[]ProviderAccount] {
	if resp.Status == StatusOK {
		return okResult(StatusOK, emptyIfNil(resp.Data))
	}
	return validationResult[[]ProviderAccount](resp.Errors)
}

// ClassifySessions maps GET /auth/sessions (200).
func ClassifySessions(resp Envelope[[]Session]) Result[[]Session] {
	return okResult(StatusOK, emptyIfNil(resp.Data))
}

// ClassifyEndSessions maps DELETE /auth/sessions (200, 401).
func ClassifyEndSessions(resp Envelope[[]Session]) Result[[]Session] {
	if resp.Status == StatusOK {
		return okResult(StatusOK, emptyIfNil(resp.Data))
	}
	return reasonResult[[]Session](StatusNotAuthenticated, ResultAuthenticationRequired)
}

// ClassifyAuthenticators maps GET /account/authenticators (200, 401, 410).
func ClassifyAuthenticators(resp Envelope[[]Authenticator]) Result[[]Authenticator] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, emptyIfNil(resp.Data))
	case StatusSessionGone:
		return reasonResult[[]Authenticator](StatusSessionGone, ResultSessionExpired)
	default:
		return reasonResult[[]Authenticator](StatusNotAuthenticated, ResultAuthenticationRequired)
	}
}

// ClassifyTOTPAuthenticator maps GET /account/authenticators/totp (200, 404, 409).
// A 404 means no TOTP authenticator is configured yet.
func ClassifyTOTPAuthenticator(resp Envelope[Authenticator]) Result[Authenticator] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, defaultAuthenticator(resp.Data, AuthenticatorTOTP))
	case StatusConflict:
		return reasonResult[Authenticator](StatusConflict, ResultConflict)
	default:
		return reasonResult[Authenticator](StatusNotFound, ResultNotFound)
	}
}

// ClassifyActivateTOTP maps POST /account/authenticators/totp (200, 400, 401, 409).
// The 401 here demands reauthentication: the session exists but is not fresh
// enough for a sensitive operation.
func ClassifyActivateTOTP(resp Envelope[Authenticator]) Result[Authenticator] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, defaultAuthenticator(resp.Data, AuthenticatorTOTP))
	case StatusInvalid:
		return validationResult[Authenticator](resp.Errors)
	case StatusNotAuthenticated:
		return reasonResult[Authenticator](StatusNotAuthenticated, ResultReauthenticationRequired)
	case StatusConflict:
		return reasonResult[Authenticator](StatusConflict, ResultConflict)
	default:
		return degradeResult[Authenticator](resp.Status, resp.Errors)
	}
}

// ClassifyDeactivateTOTP maps DELETE /account/authenticators/totp (200, 401).
func ClassifyDeactivateTOTP(resp Envelope[[]Authenticator]) Result[[]Authenticator] {
	if resp.Status == StatusOK {
		return okResult(StatusOK, emptyIfNil(resp.Data))
	}
	return reasonResult[[]Authenticator](StatusNotAuthenticated, ResultReauthenticationRequired)
}

// ClassifyRecoveryCodes maps GET /account/authenticators/recovery-codes
// (200, 401, 404).
func ClassifyRecoveryCodes(resp Envelope[RecoveryCodes]) Result[RecoveryCodes] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, defaultRecoveryCodes(resp.Data))
	case StatusNotFound:
		return reasonResult[RecoveryCodes](StatusNotFound, ResultNotFound)
	default:
		return reasonResult[RecoveryCodes](StatusNotAuthenticated, ResultReauthenticationRequired)
	}
}

// ClassifyGenerateRecoveryCodes maps POST /account/authenticators/recovery-codes
// (200, 400, 401).
func ClassifyGenerateRecoveryCodes(resp Envelope[RecoveryCodes]) Result[RecoveryCodes] {
	switch resp.Status {
	case StatusOK:
		return okResult(StatusOK, defaultRecoveryCodes(resp.Data))
	case StatusInvalid:
		return validationResult[RecoveryCodes](resp.Errors)
	default:
		return reasonResult[RecoveryCodes](StatusNotAuthenticated, ResultReauthenticationRequired)
	}
}

// ClassifyConfiguration maps GET /config (200).
func ClassifyConfiguration(resp Envelope[ConfigurationData]) Result[ConfigurationData] {
	return okResult(StatusOK, resp.Data)
}

func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func defaultAuthenticator(a Authenticator, kind AuthenticatorKind) Authenticator {
	if a.Type == "" {
		a.Type = kind
	}
	return a
}

func defaultRecoveryCodes(rc RecoveryCodes) RecoveryCodes {
	if rc.Type == "" {
		rc.Type = AuthenticatorRecoveryCodes
	}
	return rc
}
