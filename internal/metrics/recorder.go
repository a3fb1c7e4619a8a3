package metrics

// Recorder is the interface the core calls at each state transition.
// The Prometheus implementation and NoopMetrics both satisfy it, so a
// missing metrics backend never affects correctness.
type Recorder interface {
	// RecordLogin records a login attempt outcome.
	// result: success, invalid_credentials, unknown_account,
	// blocked_origin, blocked_account, failed
	RecordLogin(result string)

	// RecordLogout records a logout call.
	RecordLogout()

	// RecordTokenValidation records a session token validation.
	// result: success, invalid
	RecordTokenValidation(result string)

	// RecordRateLimited records a limiter denial for a class.
	RecordRateLimited(class string)

	// RecordHTTPRequest records a completed HTTP request.
	RecordHTTPRequest(method, path, status string, durationSeconds float64)
}
