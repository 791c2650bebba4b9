package allauth

import "fmt"

// ResultKind discriminates a classified endpoint result. Every endpoint maps
// each of its documented status codes onto exactly one kind; callers branch
// on Kind without guessing at payload shapes.
type ResultKind string

const (
	// ResultOK is the success variant carrying normalized data.
	ResultOK ResultKind = "ok"
	// ResultValidationError carries field and root level error items.
	ResultValidationError ResultKind = "validation_error"
	// ResultPendingFlow is a 401 that still carries data/meta: not fully
	// authenticated, a flow is in progress and can be inspected.
	ResultPendingFlow ResultKind = "pending_flow"
	// ResultAuthenticationRequired is a terminal 401: the call needs an
	// authenticated session and none is present.
	ResultAuthenticationRequired ResultKind = "authentication_required"
	// ResultReauthenticationRequired is a terminal 401 on sensitive
	// operations: authenticated, but identity must be re-proven first.
	ResultReauthenticationRequired ResultKind = "reauthentication_required"
	ResultForbidden                ResultKind = "forbidden"
	ResultRateLimited              ResultKind = "rate_limited"
	ResultNotFound                 ResultKind = "not_found"
	// ResultConflict means the operation is impossible or already satisfied
	// given the current state.
	ResultConflict ResultKind = "conflict"
	// ResultSessionExpired is the 410 terminal: the session object itself is
	// gone, distinct from merely not being authenticated.
	ResultSessionExpired  ResultKind = "session_expired"
	ResultTooManyRequests ResultKind = "too_many_requests"
)

// Result is a classified endpoint response.
//
// Data is populated for ResultOK (and, on authentication endpoints, for
// ResultPendingFlow); it is the zero value otherwise. Errors is non-nil
// whenever Kind is ResultValidationError so callers can iterate safely.
// Meta is set on authentication endpoints for ok and pending-flow results.
type Result[T any] struct {
	Kind   ResultKind
	Status int
	Data   T
	Meta   *AuthenticationMeta
	Errors []ErrorItem
}

// OK reports whether the result is the success variant.
func (r Result[T]) OK() bool {
	return r.Kind == ResultOK
}

// AuthResult is the classified result of authentication endpoints.
type AuthResult = Result[AuthData]

// EmptyResult is the classified result of endpoints with no structured data.
type EmptyResult = Result[struct{}]

// unknownStatusItem builds the synthetic error entry used when an endpoint
// answers with a status outside its documented set.
func unknownStatusItem(status int) ErrorItem {
	return ErrorItem{
		Code:    "unknown",
		Message: fmt.Sprintf("Unexpected status: %d", status),
	}
}
