package api

import "go.uber.org/zap"

// Diagnostics receives every failed request before the error is returned to
// the caller. status is 0 when no response was received.
type Diagnostics interface {
	RequestFailed(method, endpoint string, status int, err error)
}

// ZapDiagnostics writes failures as structured zap events.
type ZapDiagnostics struct {
	Logger *zap.SugaredLogger
}

// NewZapDiagnostics wraps logger; a nil logger yields a no-op sink.
func NewZapDiagnostics(logger *zap.SugaredLogger) ZapDiagnostics {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return ZapDiagnostics{Logger: logger}
}

func (d ZapDiagnostics) RequestFailed(method, endpoint string, status int, err error) {
	d.Logger.Errorw("API Error",
		"method", method,
		"endpoint", endpoint,
		"status", status,
		"error", err,
	)
}
