package superconductors

import (
	"fmt"
	"strings"
)

/*
Reporter collects out-of-range diagnostics raised while evaluating a
critical surface. Each report carries a numeric code and the two scalar
values that violated the validity domain. Evaluation always continues
after a report; the reported operating point is outside the fitted
range and the returned result is an extrapolation.
*/
type Reporter interface {
	Report(code int, v1, v2 float64)
}

// Diagnostic codes passed to Reporter.Report.
const (
	DiagNegativeStrainFunction = iota + 1
	DiagReducedTemperature
	DiagReducedFieldZero
	DiagReducedField
	DiagInnerDiameter
)

// DiagMessage returns the short description of a diagnostic code.
func DiagMessage(code int) string {
	switch code {
	case DiagNegativeStrainFunction:
		return "strain function negative"
	case DiagReducedTemperature:
		return "reduced temperature above unity"
	case DiagReducedFieldZero:
		return "reduced zero-temperature field above unity"
	case DiagReducedField:
		return "reduced field above unity"
	case DiagInnerDiameter:
		return "tube inner diameter not positive"
	}
	return "unknown diagnostic"
}

func report(rep Reporter, code int, v1, v2 float64) {
	if rep != nil {
		rep.Report(code, v1, v2)
	}
}

// DiagnosticValue is one named scalar in a NaNError dump.
type DiagnosticValue struct {
	Name  string
	Value float64
}

/*
NaNError reports an unrecoverable numerical breakdown of a critical
surface evaluation: even the extrapolation branches produced a
not-a-number result. It carries every input and intermediate needed to
reproduce the failure. There is no recovery path; callers are expected
to treat it as fatal and fix the offending input domain.
*/
type NaNError struct {
	Quantity string // the quantity that came out NaN
	Context  []DiagnosticValue
}

func (e *NaNError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is NaN:", e.Quantity)
	for _, v := range e.Context {
		fmt.Fprintf(&b, " %s=%g", v.Name, v.Value)
	}
	return b.String()
}
