package allauth

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeTransportFailure  = "TRANSPORT_FAILURE"
	textCodeMalformedEnvelope = "MALFORMED_ENVELOPE"
	textCodeInvalidPayload    = "INVALID_REQUEST_PAYLOAD"
	textCodeTokenStore        = "TOKEN_STORE_FAILURE"
)

// ErrTransportFailure covers failures to obtain an envelope at all:
// connectivity, timeouts, cancelled contexts. These are never coerced into a
// classified result; the discriminated taxonomy only describes responses the
// backend actually produced.
var ErrTransportFailure = goerrors.New("request could not be completed", goerrors.CategoryOperation).
	WithTextCode(textCodeTransportFailure).
	WithCode(goerrors.CodeInternal)

// ErrMalformedEnvelope is returned when the response body is not a decodable
// envelope. Missing or unparseable payload fields inside a well-formed
// envelope are defaulted instead, not rejected.
var ErrMalformedEnvelope = goerrors.New("unable to decode response envelope", goerrors.CategoryOperation).
	WithTextCode(textCodeMalformedEnvelope).
	WithCode(goerrors.CodeInternal)

// ErrInvalidPayload is returned when a request payload fails client-side
// validation before any network call is made.
var ErrInvalidPayload = goerrors.New("invalid request payload", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidPayload).
	WithCode(goerrors.CodeBadRequest)

// ErrTokenStore wraps failures loading or persisting session tokens.
var ErrTokenStore = goerrors.New("session token store failure", goerrors.CategoryInternal).
	WithTextCode(textCodeTokenStore).
	WithCode(goerrors.CodeInternal)

func wrapTransport(err error, msg string) error {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryOperation, msg).
		WithTextCode(textCodeTransportFailure).
		WithCode(goerrors.CodeInternal)
}
