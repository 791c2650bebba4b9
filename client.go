package allauth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-allauth/store"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Supply one with a
// cookie jar for browser-mode usage.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger overrides the client logger.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCSRFTokenSource overrides where the CSRF token for mutating requests
// comes from.
func WithCSRFTokenSource(src CSRFTokenSource) Option {
	return func(c *Client) {
		c.csrf = src
	}
}

// WithNotifier attaches an externally owned ChangeNotifier. Useful when the
// hosting application wants several clients feeding one notifier, or an
// independent notifier per test.
func WithNotifier(n *ChangeNotifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithTokenStore enables app-mode session persistence: captured session and
// access tokens are saved to the store and replayed on later requests.
func WithTokenStore(ts store.TokenStore) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Client talks to the headless browser API. All methods return the
// classified result for their endpoint plus a transport error; a non-nil
// error means no envelope was obtained and the result must be ignored.
//
// Every response whose status is 401 or 410, or 200 with an authenticated
// meta, is also fed to the attached ChangeNotifier as the new authentication
// snapshot.
type Client struct {
	baseURL   string
	http      *http.Client
	csrf      CSRFTokenSource
	notifier  *ChangeNotifier
	tokens    store.TokenStore
	logger    Logger
	userAgent string

	mu           sync.Mutex
	sessionToken string
	accessToken  string
	seq          atomic.Uint64
}

// New builds a client rooted at the browser API base URL, e.g.
// https://example.com/auth/api/browser/v1. The default HTTP client carries a
// cookie jar and the default CSRF source reads the backend's csrftoken
// cookie out of that jar.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:  baseURL,
		notifier: NewChangeNotifier(),
		logger:   defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.http == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, wrapTransport(err, "unable to initialize cookie jar")
		}
		c.http = &http.Client{Jar: jar}
	}

	if c.csrf == nil && c.http.Jar != nil {
		src, err := NewCookieCSRFTokenSource(c.http.Jar, baseURL)
		if err != nil {
			return nil, wrapTransport(err, "invalid base URL")
		}
		c.csrf = src
	}

	return c, nil
}

// Notifier exposes the change notifier driving subscriptions.
func (c *Client) Notifier() *ChangeNotifier {
	return c.notifier
}

// AuthStatus resolves the last observed snapshot against the configuration.
func (c *Client) AuthStatus() AuthInfo {
	return c.notifier.Current()
}

// RestoreSession loads persisted session tokens from the token store so a
// restarted app-mode client resumes where it left off. Call GetSession
// afterwards to learn whether the backend still honors them.
func (c *Client) RestoreSession(ctx context.Context) error {
	if c.tokens == nil {
		return nil
	}
	tok, err := c.tokens.Load(ctx)
	if err != nil {
		return ErrTokenStore.WithMetadata(map[string]any{"op": "load", "error": err.Error()})
	}
	if tok == nil {
		return nil
	}
	c.mu.Lock()
	c.sessionToken = tok.SessionToken
	c.accessToken = tok.AccessToken
	c.mu.Unlock()
	return nil
}

// envelope is the raw decoded response before per-endpoint typing.
type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Meta   json.RawMessage `json:"meta,omitempty"`
	Errors []ErrorItem     `json:"errors,omitempty"`
}

// authResponse projects the envelope onto the authentication snapshot shape.
// Unparseable fields default to absent rather than failing; the status code
// remains the sole discriminant.
func (e *envelope) authResponse() *AuthResponse {
	resp := &AuthResponse{Status: e.Status, Errors: e.Errors}
	if len(e.Data) > 0 {
		var data AuthData
		if err := json.Unmarshal(e.Data, &data); err == nil {
			resp.Data = &data
		}
	}
	if meta := e.authMeta(); meta != nil {
		resp.Meta = meta
	}
	return resp
}

func (e *envelope) authMeta() *AuthenticationMeta {
	if len(e.Meta) == 0 {
		return nil
	}
	var meta AuthenticationMeta
	if err := json.Unmarshal(e.Meta, &meta); err != nil {
		return nil
	}
	return &meta
}

func decodeData[T any](env *envelope) Envelope[T] {
	out := Envelope[T]{Status: env.Status, Errors: env.Errors}
	if len(env.Data) > 0 {
		// tolerant: a payload that fails to decode is defaulted, not rejected
		_ = json.Unmarshal(env.Data, &out.Data)
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, payload any, headers map[string]string) (*envelope, error) {
	// Sequence is assigned at issue time, so a slow earlier request that
	// resolves after a faster later one is recognized as stale downstream.
	seq := c.seq.Add(1)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, wrapTransport(err, "unable to encode request payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, wrapTransport(err, "unable to build request")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	// The config endpoint is capability discovery, independent of any
	// session; no authentication material travels with it.
	if path != pathConfig {
		if token := c.currentSessionToken(); token != "" {
			req.Header.Set(headerSessionToken, token)
		}
		if mutating(method) && c.csrf != nil {
			if token := c.csrf.CSRFToken(); token != "" {
				req.Header.Set(headerCSRFToken, token)
			}
		}
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, wrapTransport(err, "request failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, wrapTransport(err, "unable to read response body")
	}

	env := &envelope{}
	if err := json.Unmarshal(raw, env); err != nil {
		return nil, ErrMalformedEnvelope.WithMetadata(map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
	}

	c.logger.Debug("%s %s -> %d %s", method, path, env.Status, print.MaybePrettyJSON(env))

	c.captureTokens(ctx, env)
	c.maybeNotify(seq, env)

	return env, nil
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (c *Client) currentSessionToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionToken
}

// captureTokens persists session material in app-mode. A 410 invalidates
// whatever we held. Store writes are best-effort; failures are logged.
func (c *Client) captureTokens(ctx context.Context, env *envelope) {
	if env.Status == StatusSessionGone {
		c.mu.Lock()
		c.sessionToken = ""
		c.accessToken = ""
		c.mu.Unlock()
		if c.tokens != nil {
			if err := c.tokens.Clear(ctx); err != nil {
				c.logger.Warn("token store clear error: %v", err)
			}
		}
		return
	}

	meta := env.authMeta()
	if meta == nil || (meta.SessionToken == "" && meta.AccessToken == "") {
		return
	}

	c.mu.Lock()
	if meta.SessionToken != "" {
		c.sessionToken = meta.SessionToken
	}
	if meta.AccessToken != "" {
		c.accessToken = meta.AccessToken
	}
	session, access := c.sessionToken, c.accessToken
	c.mu.Unlock()

	if c.tokens != nil {
		err := c.tokens.Save(ctx, &store.Token{SessionToken: session, AccessToken: access})
		if err != nil {
			c.logger.Warn("token store save error: %v", err)
		}
	}
}

// maybeNotify feeds the notifier when the response is an authentication
// snapshot: status 401 or 410, or 200 with an authenticated meta.
func (c *Client) maybeNotify(seq uint64, env *envelope) {
	if c.notifier == nil {
		return
	}
	meta := env.authMeta()
	trigger := env.Status == StatusNotAuthenticated ||
		env.Status == StatusSessionGone ||
		(env.Status == StatusOK && meta != nil && meta.IsAuthenticated)
	if !trigger {
		return
	}
	c.notifier.ObserveSequenced(seq, env.authResponse())
}

// --- Configuration ---

// GetConfiguration fetches the server capability document and seeds the
// notifier with it. Until this succeeds once, resolved statuses stay in the
// loading state.
func (c *Client) GetConfiguration(ctx context.Context) (Result[ConfigurationData], error) {
	env, err := c.do(ctx, http.MethodGet, pathConfig, nil, nil)
	if err != nil {
		return Result[ConfigurationData]{}, err
	}
	decoded := decodeData[ConfigurationData](env)
	c.notifier.SetConfiguration(&ConfigurationResponse{Status: env.Status, Data: decoded.Data})
	return ClassifyConfiguration(decoded), nil
}

// --- Auth: basics ---

// Login authenticates with email/username and password.
func (c *Client) Login(ctx context.Context, payload LoginRequest) (AuthResult, error) {
	if err := payload.Validate(); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathLogin, payload, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyLogin(env.authResponse()), nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, payload SignupRequest) (AuthResult, error) {
	if err := payload.Validate(); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathSignup, payload, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifySignup(env.authResponse()), nil
}

// GetSession fetches the current authentication snapshot.
func (c *Client) GetSession(ctx context.Context) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodGet, pathSession, nil, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifySession(env.authResponse()), nil
}

// Logout destroys the current session. The returned snapshot is the
// anonymous state that replaces it.
func (c *Client) Logout(ctx context.Context) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodDelete, pathSession, nil, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyLogout(env.authResponse()), nil
}

// Reauthenticate re-proves identity with the account password while a
// session already exists.
func (c *Client) Reauthenticate(ctx context.Context, payload ReauthenticateRequest) (AuthResult, error) {
	if err := payload.Validate(); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathReauthenticate, payload, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyReauthenticate(env.authResponse()), nil
}

// --- Auth: login by code ---

// RequestLoginCode asks for a one-time login code by email. The expected
// outcome is a pending login_by_code flow.
func (c *Client) RequestLoginCode(ctx context.Context, email string) (AuthResult, error) {
	if err := validateEmail(email); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathRequestLoginCode, map[string]string{"email": email}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyRequestLoginCode(env.authResponse()), nil
}

// RequestLoginCodeByPhone asks for a one-time login code via SMS. The phone
// number must be E.164.
func (c *Client) RequestLoginCodeByPhone(ctx context.Context, phone string) (AuthResult, error) {
	if err := validatePhoneNumber(phone); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathRequestLoginCode, map[string]string{"phone": phone}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyRequestLoginCode(env.authResponse()), nil
}

// ConfirmLoginCode exchanges the received code for a session.
func (c *Client) ConfirmLoginCode(ctx context.Context, code string) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathConfirmLoginCode, map[string]string{"code": code}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyConfirmLoginCode(env.authResponse()), nil
}

// --- Auth: password reset ---

// RequestPasswordReset triggers the password reset email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (AuthResult, error) {
	if err := validateEmail(email); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathRequestPasswordReset, map[string]string{"email": email}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyRequestPasswordReset(env.authResponse()), nil
}

// GetPasswordReset checks whether a reset key is still usable.
func (c *Client) GetPasswordReset(ctx context.Context, key string) (EmptyResult, error) {
	env, err := c.do(ctx, http.MethodGet, pathResetPassword, nil, map[string]string{
		headerPasswordResetKey: key,
	})
	if err != nil {
		return EmptyResult{}, err
	}
	return ClassifyGetPasswordReset(decodeData[struct{}](env)), nil
}

// ResetPassword completes the reset using the emailed key.
func (c *Client) ResetPassword(ctx context.Context, password, key string) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathResetPassword,
		map[string]string{"password": password, "key": key},
		map[string]string{headerPasswordResetKey: key},
	)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyResetPassword(env.authResponse()), nil
}

// ChangePassword changes the password of the authenticated account.
func (c *Client) ChangePassword(ctx context.Context, payload ChangePasswordRequest) (EmptyResult, error) {
	if err := payload.Validate(); err != nil {
		return EmptyResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathChangePassword, payload, nil)
	if err != nil {
		return EmptyResult{}, err
	}
	return ClassifyChangePassword(decodeData[struct{}](env)), nil
}

// --- Auth: email verification ---

// GetEmailVerification describes the address behind a verification key.
func (c *Client) GetEmailVerification(ctx context.Context, key string) (Result[EmailVerificationInfo], error) {
	env, err := c.do(ctx, http.MethodGet, pathVerifyEmail, nil, map[string]string{
		headerEmailVerificationKey: key,
	})
	if err != nil {
		return Result[EmailVerificationInfo]{}, err
	}
	return ClassifyEmailVerificationInfo(decodeData[EmailVerificationInfo](env)), nil
}

// VerifyEmail confirms an address with the emailed key.
func (c *Client) VerifyEmail(ctx context.Context, key string) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathVerifyEmail, map[string]string{"key": key}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyVerifyEmail(env.authResponse()), nil
}

// --- Account: email management ---

// GetEmailAddresses lists the account's addresses.
func (c *Client) GetEmailAddresses(ctx context.Context) (Result[[]EmailAddress], error) {
	env, err := c.do(ctx, http.MethodGet, pathEmail, nil, nil)
	if err != nil {
		return Result[[]EmailAddress]{}, err
	}
	return ClassifyEmailAddresses(decodeData[[]EmailAddress](env)), nil
}

// AddEmail adds an address to the account.
func (c *Client) AddEmail(ctx context.Context, email string) (Result[[]EmailAddress], error) {
	if err := validateEmail(email); err != nil {
		return Result[[]EmailAddress]{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathEmail, map[string]string{"email": email}, nil)
	if err != nil {
		return Result[[]EmailAddress]{}, err
	}
	return ClassifyAddEmail(decodeData[[]EmailAddress](env)), nil
}

// DeleteEmail removes an address from the account.
func (c *Client) DeleteEmail(ctx context.Context, email string) (Result[[]EmailAddress], error) {
	env, err := c.do(ctx, http.MethodDelete, pathEmail, map[string]string{"email": email}, nil)
	if err != nil {
		return Result[[]EmailAddress]{}, err
	}
	return ClassifyDeleteEmail(decodeData[[]EmailAddress](env)), nil
}

// MarkEmailAsPrimary promotes an address to primary.
func (c *Client) MarkEmailAsPrimary(ctx context.Context, email string) (Result[[]EmailAddress], error) {
	env, err := c.do(ctx, http.MethodPatch, pathEmail,
		map[string]any{"email": email, "primary": true}, nil)
	if err != nil {
		return Result[[]EmailAddress]{}, err
	}
	return ClassifyMarkPrimary(decodeData[[]EmailAddress](env)), nil
}

// RequestEmailVerification re-sends the verification email for an address.
func (c *Client) RequestEmailVerification(ctx context.Context, email string) (EmptyResult, error) {
	env, err := c.do(ctx, http.MethodPut, pathEmail, map[string]string{"email": email}, nil)
	if err != nil {
		return EmptyResult{}, err
	}
	return ClassifyRequestEmailVerification(decodeData[struct{}](env)), nil
}

// --- Account: social providers ---

// GetProviderAccounts lists linked third-party accounts.
func (c *Client) GetProviderAccounts(ctx context.Context) (Result[[]ProviderAccount], error) {
	env, err := c.do(ctx, http.MethodGet, pathProviders, nil, nil)
	if err != nil {
		return Result[[]ProviderAccount]{}, err
	}
	return ClassifyProviderAccounts(decodeData[[]ProviderAccount](env)), nil
}

// DisconnectProviderAccount unlinks a third-party account.
func (c *Client) DisconnectProviderAccount(ctx context.Context, providerID, accountUID string) (Result[[]ProviderAccount], error) {
	env, err := c.do(ctx, http.MethodDelete, pathProviders,
		map[string]string{"provider": providerID, "account": accountUID}, nil)
	if err != nil {
		return Result[[]ProviderAccount]{}, err
	}
	return ClassifyDisconnectProvider(decodeData[[]ProviderAccount](env)), nil
}

// AuthenticateByToken authenticates with a provider-issued token (app flows
// where the provider SDK ran client-side).
func (c *Client) AuthenticateByToken(ctx context.Context, payload ProviderTokenRequest) (AuthResult, error) {
	if err := payload.Validate(); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	if payload.Process == "" {
		payload.Process = ProcessLogin
	}
	env, err := c.do(ctx, http.MethodPost, pathProviderToken, payload, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyAuthenticateByToken(env.authResponse()), nil
}

// ProviderSignup completes a signup started via a provider redirect that
// needs additional data (typically the email address).
func (c *Client) ProviderSignup(ctx context.Context, email string) (AuthResult, error) {
	if err := validateEmail(email); err != nil {
		return AuthResult{}, ErrInvalidPayload.WithMetadata(map[string]any{"error": err.Error()})
	}
	env, err := c.do(ctx, http.MethodPost, pathProviderSignup, map[string]string{"email": email}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyProviderSignup(env.authResponse()), nil
}

// ProviderRedirectForm returns the form action and fields for the
// provider-redirect flow, which must travel as a browser form POST rather
// than an XHR. The caller renders and submits the form.
func (c *Client) ProviderRedirectForm(providerID, callbackURL string, process AuthProcess) (string, map[string]string) {
	if process == "" {
		process = ProcessLogin
	}
	fields := map[string]string{
		"provider":     providerID,
		"process":      string(process),
		"callback_url": callbackURL,
	}
	if c.csrf != nil {
		if token := c.csrf.CSRFToken(); token != "" {
			fields["csrfmiddlewaretoken"] = token
		}
	}
	return c.baseURL + pathProviderRedirect, fields
}

// --- Auth: MFA ---

// MFAAuthenticate completes a pending mfa_authenticate flow with a code.
func (c *Client) MFAAuthenticate(ctx context.Context, code string) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathMFAAuthenticate, map[string]string{"code": code}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyMFAAuthenticate(env.authResponse()), nil
}

// MFAReauthenticate re-proves identity with a second factor.
func (c *Client) MFAReauthenticate(ctx context.Context, code string) (AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, pathMFAReauthenticate, map[string]string{"code": code}, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return ClassifyMFAReauthenticate(env.authResponse()), nil
}

// --- Account: authenticators ---

// GetAuthenticators lists registered second-factor authenticators.
func (c *Client) GetAuthenticators(ctx context.Context) (Result[[]Authenticator], error) {
	env, err := c.do(ctx, http.MethodGet, pathAuthenticators, nil, nil)
	if err != nil {
		return Result[[]Authenticator]{}, err
	}
	return ClassifyAuthenticators(decodeData[[]Authenticator](env)), nil
}

// GetTOTPAuthenticator fetches the TOTP authenticator, if configured.
func (c *Client) GetTOTPAuthenticator(ctx context.Context) (Result[Authenticator], error) {
	env, err := c.do(ctx, http.MethodGet, pathTOTP, nil, nil)
	if err != nil {
		return Result[Authenticator]{}, err
	}
	return ClassifyTOTPAuthenticator(decodeData[Authenticator](env)), nil
}

// ActivateTOTP turns on TOTP with a code from the authenticator app.
func (c *Client) ActivateTOTP(ctx context.Context, code string) (Result[Authenticator], error) {
	env, err := c.do(ctx, http.MethodPost, pathTOTP, map[string]string{"code": code}, nil)
	if err != nil {
		return Result[Authenticator]{}, err
	}
	return ClassifyActivateTOTP(decodeData[Authenticator](env)), nil
}

// DeactivateTOTP turns TOTP off.
func (c *Client) DeactivateTOTP(ctx context.Context) (Result[[]Authenticator], error) {
	env, err := c.do(ctx, http.MethodDelete, pathTOTP, nil, nil)
	if err != nil {
		return Result[[]Authenticator]{}, err
	}
	return ClassifyDeactivateTOTP(decodeData[[]Authenticator](env)), nil
}

// GetRecoveryCodes fetches the sensitive recovery-codes view.
func (c *Client) GetRecoveryCodes(ctx context.Context) (Result[RecoveryCodes], error) {
	env, err := c.do(ctx, http.MethodGet, pathRecoveryCodes, nil, nil)
	if err != nil {
		return Result[RecoveryCodes]{}, err
	}
	return ClassifyRecoveryCodes(decodeData[RecoveryCodes](env)), nil
}

// GenerateRecoveryCodes replaces the recovery code set.
func (c *Client) GenerateRecoveryCodes(ctx context.Context) (Result[RecoveryCodes], error) {
	env, err := c.do(ctx, http.MethodPost, pathRecoveryCodes, nil, nil)
	if err != nil {
		return Result[RecoveryCodes]{}, err
	}
	return ClassifyGenerateRecoveryCodes(decodeData[RecoveryCodes](env)), nil
}

// --- Auth: sessions ---

// GetSessions lists the user's active sessions.
func (c *Client) GetSessions(ctx context.Context) (Result[[]Session], error) {
	env, err := c.do(ctx, http.MethodGet, pathSessions, nil, nil)
	if err != nil {
		return Result[[]Session]{}, err
	}
	return ClassifySessions(decodeData[[]Session](env)), nil
}

// EndSessions terminates the sessions with the given ids.
func (c *Client) EndSessions(ctx context.Context, ids []any) (Result[[]Session], error) {
	env, err := c.do(ctx, http.MethodDelete, pathSessions, map[string]any{"sessions": ids}, nil)
	if err != nil {
		return Result[[]Session]{}, err
	}
	return ClassifyEndSessions(decodeData[[]Session](env)), nil
}
