package internaldefs

import (
	"github.com/mockview/authclient"
)

// CounterDef binds a session counter to its exported metric name.
//
// CounterDef instances are intended to be configured during initialization
// and then treated as immutable.
type CounterDef struct {
	ID   authclient.MetricID
	Name string
	Help string
}

// CounterDefs lists every session counter in export order.
var CounterDefs = []CounterDef{
	{ID: authclient.MetricInitialize, Name: "authclient_initialize_total", Help: "Session initialization attempts."},
	{ID: authclient.MetricLoadUserSuccess, Name: "authclient_load_user_success_total", Help: "Token validation passes that settled authenticated."},
	{ID: authclient.MetricTokenMalformed, Name: "authclient_token_malformed_total", Help: "Tokens rejected as undecodable."},
	{ID: authclient.MetricTokenExpired, Name: "authclient_token_expired_total", Help: "Tokens rejected as expired."},
	{ID: authclient.MetricProfileFetchFailure, Name: "authclient_profile_fetch_failure_total", Help: "Profile fetches that failed during validation."},
	{ID: authclient.MetricRoleMissing, Name: "authclient_role_missing_total", Help: "Profiles rejected for a missing role."},
	{ID: authclient.MetricStorageFailure, Name: "authclient_storage_failure_total", Help: "Token store reads or writes that failed."},
	{ID: authclient.MetricLoginSuccess, Name: "authclient_login_success_total", Help: "Successful login attempts."},
	{ID: authclient.MetricLoginFailure, Name: "authclient_login_failure_total", Help: "Failed login attempts."},
	{ID: authclient.MetricSignupSuccess, Name: "authclient_signup_success_total", Help: "Successful signup attempts."},
	{ID: authclient.MetricSignupFailure, Name: "authclient_signup_failure_total", Help: "Failed signup attempts."},
	{ID: authclient.MetricLogout, Name: "authclient_logout_total", Help: "Logout operations."},
	{ID: authclient.MetricPasswordResetRequest, Name: "authclient_password_reset_request_total", Help: "Password reset requests."},
	{ID: authclient.MetricPasswordResetConfirm, Name: "authclient_password_reset_confirm_total", Help: "Password reset confirmations."},
	{ID: authclient.MetricStaleResultDiscarded, Name: "authclient_stale_result_discarded_total", Help: "Validation results discarded because a newer operation superseded them."},
}
