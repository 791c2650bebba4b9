package allauth_test

import (
	"testing"

	allauth "github.com/goliatone/go-allauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLogin(t *testing.T) {
	t.Run("200 carries data and meta", func(t *testing.T) {
		res := allauth.ClassifyLogin(authedResponse("1"))

		assert.True(t, res.OK())
		assert.Equal(t, allauth.StatusOK, res.Status)
		require.NotNil(t, res.Data.User)
		require.NotNil(t, res.Meta)
		assert.True(t, res.Meta.IsAuthenticated)
	})

	t.Run("400 carries the error items", func(t *testing.T) {
		res := allauth.ClassifyLogin(&allauth.AuthResponse{
			Status: allauth.StatusInvalid,
			Errors: []allauth.ErrorItem{{Code: "invalid", Message: "nope", Param: "password"}},
		})

		assert.Equal(t, allauth.ResultValidationError, res.Kind)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "password", res.Errors[0].Param)
	})

	t.Run("400 without items still yields an iterable slice", func(t *testing.T) {
		res := allauth.ClassifyLogin(&allauth.AuthResponse{Status: allauth.StatusInvalid})

		assert.Equal(t, allauth.ResultValidationError, res.Kind)
		assert.NotNil(t, res.Errors)
		assert.Empty(t, res.Errors)
	})

	t.Run("401 is a pending flow with defaulted meta", func(t *testing.T) {
		res := allauth.ClassifyLogin(&allauth.AuthResponse{
			Status: allauth.StatusNotAuthenticated,
			Data: &allauth.AuthData{
				Flows: []allauth.Flow{{ID: allauth.FlowMFAAuthenticate, IsPending: true}},
			},
		})

		assert.Equal(t, allauth.ResultPendingFlow, res.Kind)
		require.NotNil(t, res.Meta)
		assert.False(t, res.Meta.IsAuthenticated)
		require.Len(t, res.Data.Flows, 1)
	})

	t.Run("409 is a conflict", func(t *testing.T) {
		res := allauth.ClassifyLogin(&allauth.AuthResponse{Status: allauth.StatusConflict})
		assert.Equal(t, allauth.ResultConflict, res.Kind)
	})

	t.Run("undocumented status degrades to a synthetic validation error", func(t *testing.T) {
		res := allauth.ClassifyLogin(&allauth.AuthResponse{Status: 503})

		assert.Equal(t, allauth.ResultValidationError, res.Kind)
		assert.Equal(t, allauth.StatusInvalid, res.Status)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "unknown", res.Errors[0].Code)
		assert.Contains(t, res.Errors[0].Message, "503")
	})
}

func TestClassifySession(t *testing.T) {
	t.Run("410 is session expired", func(t *testing.T) {
		res := allauth.ClassifySession(&allauth.AuthResponse{Status: allauth.StatusSessionGone})
		assert.Equal(t, allauth.ResultSessionExpired, res.Kind)
		assert.Equal(t, allauth.StatusSessionGone, res.Status)
	})

	t.Run("unexpected status falls back to anonymous", func(t *testing.T) {
		res := allauth.ClassifySession(&allauth.AuthResponse{Status: 500})
		assert.Equal(t, allauth.ResultPendingFlow, res.Kind)
		assert.Equal(t, allauth.StatusNotAuthenticated, res.Status)
	})
}

func TestClassifyLogout_AlwaysAnonymousSnapshot(t *testing.T) {
	res := allauth.ClassifyLogout(anonResponse(
		allauth.Flow{ID: allauth.FlowLogin, IsPending: true},
	))

	assert.Equal(t, allauth.ResultPendingFlow, res.Kind)
	require.Len(t, res.Data.Flows, 1)
}

func TestClassifyRequestLoginCode_PendingIsTheHappyPath(t *testing.T) {
	res := allauth.ClassifyRequestLoginCode(anonResponse(
		allauth.Flow{ID: allauth.FlowLoginByCode, IsPending: true},
	))

	assert.Equal(t, allauth.ResultPendingFlow, res.Kind)
}

func TestClassifyChangePassword_TerminalUnauthorized(t *testing.T) {
	res := allauth.ClassifyChangePassword(allauth.Envelope[struct{}]{
		Status: allauth.StatusNotAuthenticated,
	})

	assert.Equal(t, allauth.ResultAuthenticationRequired, res.Kind)
}

func TestClassifyRequestEmailVerification_ForbiddenMeansRateLimited(t *testing.T) {
	res := allauth.ClassifyRequestEmailVerification(allauth.Envelope[struct{}]{
		Status: allauth.StatusForbidden,
	})

	assert.Equal(t, allauth.ResultRateLimited, res.Kind)
}

func TestClassifyActivateTOTP_UnauthorizedDemandsReauth(t *testing.T) {
	res := allauth.ClassifyActivateTOTP(allauth.Envelope[allauth.Authenticator]{
		Status: allauth.StatusNotAuthenticated,
	})

	assert.Equal(t, allauth.ResultReauthenticationRequired, res.Kind)
}

func TestClassifyTOTPAuthenticator_NotFoundMeansUnconfigured(t *testing.T) {
	res := allauth.ClassifyTOTPAuthenticator(allauth.Envelope[allauth.Authenticator]{
		Status: allauth.StatusNotFound,
	})

	assert.Equal(t, allauth.ResultNotFound, res.Kind)
}

func TestClassifyListEndpoints_NilDataBecomesEmptySlice(t *testing.T) {
	emails := allauth.ClassifyEmailAddresses(allauth.Envelope[[]allauth.EmailAddress]{
		Status: allauth.StatusOK,
	})
	require.True(t, emails.OK())
	assert.NotNil(t, emails.Data)
	assert.Empty(t, emails.Data)

	sessions := allauth.ClassifySessions(allauth.Envelope[[]allauth.Session]{
		Status: allauth.StatusOK,
	})
	require.True(t, sessions.OK())
	assert.NotNil(t, sessions.Data)
}

func TestClassify_Idempotent(t *testing.T) {
	// classifiers are pure; same envelope, same result
	resp := &allauth.AuthResponse{Status: 503}

	first := allauth.ClassifyLogin(resp)
	second := allauth.ClassifyLogin(resp)

	assert.Equal(t, first, second)
}
