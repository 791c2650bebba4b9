package allauth

// DetermineAuthChange classifies the transition between two successive
// snapshots into one of the AuthChange kinds, or AuthChangeNone. Rules are
// ordered; the first match wins. The function never panics: any combination
// not explicitly covered yields AuthChangeNone, the conservative default.
func DetermineAuthChange(fromAuth, toAuth *AuthResponse, config *ConfigurationResponse) AuthChangeKind {
	if toAuth == nil {
		return AuthChangeNone
	}

	// Session destruction dominates everything else.
	if toAuth.Status == StatusSessionGone {
		return AuthChangeLoggedOut
	}

	fromInfo := Resolve(fromAuth, config)
	toInfo := Resolve(toAuth, config)

	// Corner case: the user id changed between snapshots (impersonation,
	// multi-account swap). Treat the previous state as anonymous so the
	// switch surfaces as LOGGED_IN rather than a no-op.
	if fromInfo.User != nil && toInfo.User != nil && fromInfo.User.ID != toInfo.User.ID {
		fromInfo = AuthInfo{
			Initialised: fromInfo.Initialised,
			IsLoading:   fromInfo.IsLoading,
		}
	}

	switch {
	case !fromInfo.IsAuthenticated && toInfo.IsAuthenticated:
		// You don't transition from logged out straight to reauthentication
		// required; that state presupposes prior authentication.
		return AuthChangeLoggedIn

	case fromInfo.IsAuthenticated && !toInfo.IsAuthenticated:
		return AuthChangeLoggedOut

	case fromInfo.IsAuthenticated && toInfo.IsAuthenticated:
		if toInfo.RequiresReauthentication {
			return AuthChangeReauthenticationRequired
		}
		if fromInfo.RequiresReauthentication {
			return AuthChangeReauthenticated
		}
		// A page reload while sitting on the reauthentication screen yields
		// two authenticated snapshots with no reauth-required state between
		// them; growth of the methods list is the only observable signal that
		// a reauthentication step completed. This is a heuristic, not a
		// structural guarantee; keep an eye on it if the backend ever prunes
		// method entries.
		if methodsGrew(fromAuth, toAuth) {
			return AuthChangeReauthenticated
		}

	default:
		// Both anonymous: a new or different pending flow is worth reporting.
		toFlow := toInfo.PendingFlow
		if toFlow != nil && toFlow.ID != "" &&
			(fromInfo.PendingFlow == nil || fromInfo.PendingFlow.ID != toFlow.ID) {
			return AuthChangeFlowUpdated
		}
	}

	return AuthChangeNone
}

// methodsGrew requires a methods list on both sides; an absent list never
// participates in the comparison.
func methodsGrew(fromAuth, toAuth *AuthResponse) bool {
	if fromAuth == nil || fromAuth.Data == nil || toAuth.Data == nil {
		return false
	}
	if fromAuth.Data.Methods == nil || toAuth.Data.Methods == nil {
		return false
	}
	return len(fromAuth.Data.Methods) < len(toAuth.Data.Methods)
}
