// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and writes the
// matching JSON error response.
type ErrorLogger struct {
	Log *zap.Logger
	// Dev enables logging of degraded reads (fallbacks the client never
	// sees as errors). Production keeps those quiet.
	Dev bool
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// WithDev returns a copy with degraded-read logging switched on or off.
func (e *ErrorLogger) WithDev(dev bool) *ErrorLogger {
	cp := *e
	cp.Dev = dev
	return &cp
}

func requestFields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
}

// LogServerError logs err and responds 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Error(logMsg, requestFields(r, err)...)
	RenderServerError(w, r, userMsg)
}

// LogBadRequest logs err at warn level and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Warn(logMsg, requestFields(r, err)...)
	RenderBadRequest(w, r, userMsg)
}

// Degraded records a failed optional read that was replaced by a default.
// Nothing is written to the response.
func (e *ErrorLogger) Degraded(r *http.Request, logMsg string, err error) {
	if !e.Dev {
		return
	}
	e.Log.Warn(logMsg, requestFields(r, err)...)
}
