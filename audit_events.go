package authclient

// Audit event types emitted by the Manager.
const (
	// EventSessionInitialize records a startup validation attempt, with a
	// "has_token" metadata key.
	EventSessionInitialize = "session_initialize"
	// EventSessionHydrated records a validation pass that settled
	// authenticated.
	EventSessionHydrated = "session_hydrated"
	// EventTokenRejected records a token dropped during validation; Error
	// names the rejection reason.
	EventTokenRejected = "token_rejected"
	// EventLoginSuccess and EventLoginFailure record credential exchanges.
	EventLoginSuccess = "login_success"
	EventLoginFailure = "login_failure"
	// EventSignup records a registration attempt.
	EventSignup = "signup"
	// EventLogout records an explicit sign-out.
	EventLogout = "logout"
	// EventPasswordResetRequest and EventPasswordResetConfirm record the
	// two stateless password-reset calls.
	EventPasswordResetRequest = "password_reset_request"
	EventPasswordResetConfirm = "password_reset_confirm"
	// EventStaleResultDiscarded records a validation result dropped because
	// a newer operation superseded it.
	EventStaleResultDiscarded = "stale_result_discarded"
)
