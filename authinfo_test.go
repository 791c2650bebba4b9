package allauth_test

import (
	"testing"

	allauth "github.com/goliatone/go-allauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configOK() *allauth.ConfigurationResponse {
	return &allauth.ConfigurationResponse{Status: allauth.StatusOK}
}

func authedResponse(id string) *allauth.AuthResponse {
	return &allauth.AuthResponse{
		Status: allauth.StatusOK,
		Data: &allauth.AuthData{
			User: &allauth.User{ID: allauth.UserID(id), Email: id + "@example.com"},
		},
		Meta: &allauth.AuthenticationMeta{IsAuthenticated: true},
	}
}

func anonResponse(flows ...allauth.Flow) *allauth.AuthResponse {
	return &allauth.AuthResponse{
		Status: allauth.StatusNotAuthenticated,
		Data:   &allauth.AuthData{Flows: flows},
		Meta:   &allauth.AuthenticationMeta{IsAuthenticated: false},
	}
}

func reauthResponse(id string) *allauth.AuthResponse {
	return &allauth.AuthResponse{
		Status: allauth.StatusNotAuthenticated,
		Data: &allauth.AuthData{
			User: &allauth.User{ID: allauth.UserID(id)},
			Flows: []allauth.Flow{
				{ID: allauth.FlowReauthenticate, IsPending: true},
			},
		},
		Meta: &allauth.AuthenticationMeta{IsAuthenticated: true},
	}
}

func TestResolve_Loading(t *testing.T) {
	tests := []struct {
		name   string
		auth   *allauth.AuthResponse
		config *allauth.ConfigurationResponse
	}{
		{"no snapshot yet", nil, configOK()},
		{"no configuration yet", authedResponse("1"), nil},
		{"configuration failed", authedResponse("1"), &allauth.ConfigurationResponse{Status: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := allauth.Resolve(tt.auth, tt.config)
			assert.True(t, info.IsLoading)
			assert.False(t, info.Initialised)
			assert.False(t, info.IsAuthenticated)
			assert.Nil(t, info.User)
			assert.Nil(t, info.PendingFlow)
		})
	}
}

func TestResolve_Authenticated(t *testing.T) {
	info := allauth.Resolve(authedResponse("42"), configOK())

	assert.True(t, info.Initialised)
	assert.False(t, info.IsLoading)
	assert.True(t, info.IsAuthenticated)
	assert.False(t, info.RequiresReauthentication)
	require.NotNil(t, info.User)
	assert.Equal(t, allauth.UserID("42"), info.User.ID)
}

func TestResolve_AnonymousWithPendingFlow(t *testing.T) {
	info := allauth.Resolve(anonResponse(
		allauth.Flow{ID: allauth.FlowLogin},
		allauth.Flow{ID: allauth.FlowMFAAuthenticate, IsPending: true},
	), configOK())

	assert.True(t, info.Initialised)
	assert.False(t, info.IsAuthenticated)
	assert.Nil(t, info.User)
	require.NotNil(t, info.PendingFlow)
	assert.Equal(t, allauth.FlowMFAAuthenticate, info.PendingFlow.ID)
}

func TestResolve_FirstPendingFlowWins(t *testing.T) {
	info := allauth.Resolve(anonResponse(
		allauth.Flow{ID: allauth.FlowVerifyEmail, IsPending: true},
		allauth.Flow{ID: allauth.FlowMFAAuthenticate, IsPending: true},
	), configOK())

	require.NotNil(t, info.PendingFlow)
	assert.Equal(t, allauth.FlowVerifyEmail, info.PendingFlow.ID)
}

func TestResolve_ReauthenticationRequired(t *testing.T) {
	info := allauth.Resolve(reauthResponse("42"), configOK())

	assert.True(t, info.IsAuthenticated)
	assert.True(t, info.RequiresReauthentication)
	require.NotNil(t, info.User)
	require.NotNil(t, info.PendingFlow)
	assert.Equal(t, allauth.FlowReauthenticate, info.PendingFlow.ID)
}

func TestResolve_SessionGone(t *testing.T) {
	// payload on a 410 is untrustworthy; nothing from it survives resolution
	resp := &allauth.AuthResponse{
		Status: allauth.StatusSessionGone,
		Data: &allauth.AuthData{
			User:  &allauth.User{ID: "42"},
			Flows: []allauth.Flow{{ID: allauth.FlowLogin, IsPending: true}},
		},
	}

	info := allauth.Resolve(resp, configOK())

	assert.True(t, info.Initialised)
	assert.False(t, info.IsLoading)
	assert.False(t, info.IsAuthenticated)
	assert.False(t, info.RequiresReauthentication)
	assert.Nil(t, info.User)
	assert.Nil(t, info.PendingFlow)
}

func TestResolve_NoUserWhenAnonymous(t *testing.T) {
	resp := anonResponse()
	resp.Data.User = &allauth.User{ID: "42"}

	info := allauth.Resolve(resp, configOK())

	assert.False(t, info.IsAuthenticated)
	assert.Nil(t, info.User)
}
