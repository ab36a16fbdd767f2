package sweep

import (
	"github.com/sirupsen/logrus"

	"github.com/clmould/PROCESS-clair/superconductors"
)

// LogReporter forwards out-of-range diagnostics to a logrus logger.
// The offending operating point is logged and evaluation continues.
type LogReporter struct {
	Log *logrus.Logger
}

func (r *LogReporter) Report(code int, v1, v2 float64) {
	r.Log.WithFields(logrus.Fields{
		"code":   code,
		"value1": v1,
		"value2": v2,
	}).Warn(superconductors.DiagMessage(code))
}
