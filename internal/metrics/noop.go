package metrics

// NoopMetrics is a no-operation Recorder used when metrics are
// disabled.
type NoopMetrics struct{}

// Ensure NoopMetrics implements Recorder interface at compile time
var _ Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordLogin(result string)                                          {}
func (n *NoopMetrics) RecordLogout()                                                      {}
func (n *NoopMetrics) RecordTokenValidation(result string)                                {}
func (n *NoopMetrics) RecordRateLimited(class string)                                     {}
func (n *NoopMetrics) RecordHTTPRequest(method, path, status string, durationSec float64) {}
