package allauth

// AuthInfo is the resolved, consumer-facing view of the current
// authentication state. It is a pure function of a snapshot and the server
// configuration; it is recomputed on demand and never cached, so it cannot
// go stale independently of its inputs.
type AuthInfo struct {
	// Initialised is false until a configuration with status 200 is known.
	// "Still loading" and "loaded but anonymous" are distinct states.
	Initialised bool
	IsLoading   bool

	IsAuthenticated bool
	// RequiresReauthentication is true when the session is authenticated but
	// the backend still answered 401: identity must be re-proven before
	// sensitive operations proceed.
	RequiresReauthentication bool
	User                     *User
	PendingFlow              *Flow
}

// Resolve derives the AuthInfo for a snapshot against the server
// configuration. It is total: every (auth, config) pair yields exactly one of
// the loading shape, the session-expired anonymous shape, or a fully
// populated status. It never panics.
func Resolve(auth *AuthResponse, config *ConfigurationResponse) AuthInfo {
	if auth == nil || config == nil || config.Status != StatusOK {
		return AuthInfo{IsLoading: true}
	}

	// 410: the session object itself is gone, nothing in the payload can be
	// trusted, including flows and methods.
	if auth.Status == StatusSessionGone {
		return AuthInfo{Initialised: true}
	}

	// A 401 can mean two things: not authenticated with a flow pending, or
	// authenticated but reauthentication required. Only the meta flag tells
	// them apart.
	isAuthenticated := auth.Status == StatusOK ||
		(auth.Status == StatusNotAuthenticated && auth.Meta != nil && auth.Meta.IsAuthenticated)
	requiresReauthentication := isAuthenticated && auth.Status == StatusNotAuthenticated

	info := AuthInfo{
		Initialised:              true,
		IsAuthenticated:          isAuthenticated,
		RequiresReauthentication: requiresReauthentication,
		PendingFlow:              pendingFlow(auth),
	}
	if isAuthenticated && auth.Data != nil {
		info.User = auth.Data.User
	}
	return info
}

func pendingFlow(auth *AuthResponse) *Flow {
	if auth.Data == nil {
		return nil
	}
	for i := range auth.Data.Flows {
		if auth.Data.Flows[i].IsPending {
			return &auth.Data.Flows[i]
		}
	}
	return nil
}
