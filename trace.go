package daylight

import (
	"io"

	kitlog "github.com/go-kit/kit/log"
)

// NewTracer returns a logfmt logger suitable for passing to
// DaylightHoursTraced. Tracing is purely observational: the computation
// never reads anything back from the logger.
func NewTracer(w io.Writer) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(klog, "calc", "daylight")
}

// trace logs keyvals if a logger is set.
func trace(logger kitlog.Logger, keyvals ...interface{}) {
	if logger != nil {
		logger.Log(keyvals...)
	}
}
