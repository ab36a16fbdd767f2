package superconductors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference CroCo geometry.
var testTape = TapeGeometry{
	RebcoThickness:     1.0e-6,
	CopperThickness:    100.0e-6,
	HastelloyThickness: 50.0e-6,
}

const (
	testOD    = 6.4e-3
	testThick = 0.5e-3
)

func conductorAreaSum(d CableAreaBreakdown) float64 {
	return d.ConductorCopperArea + d.ConductorHastelloyArea +
		d.ConductorHeliumArea + d.ConductorSolderArea + d.ConductorRebcoArea
}

func TestCrocoReferenceGeometry(t *testing.T) {
	// 6.4 mm OD with a 0.5 mm wall reproduces the 5.4 mm / 3.75 mm
	// baseline exactly
	d := CrocoCableDesign(2.0e10, testOD, testThick, 1.0, testTape, nil)

	assert.InDelta(t, 3.75e-3, d.TapeWidth, 1e-12)
	assert.InDelta(t, 151.0e-6, d.TapeThickness, 1e-12)
	assert.Greater(t, d.Tapes, 0.0)
	assert.Greater(t, d.StrandCriticalCurrent, 0.0)
	assert.InDelta(t, CrocoStrandsPerCable*d.StrandCriticalCurrent, d.ConductorCriticalCurrent, 1e-6)
}

func TestCrocoAreasNonNegative(t *testing.T) {
	for _, od := range []float64{3.0e-3, 5.0e-3, 6.4e-3, 9.0e-3} {
		d := CrocoCableDesign(2.0e10, od, 0.5e-3, 1.0, testTape, nil)
		for name, a := range map[string]float64{
			"copper":    d.CopperArea,
			"hastelloy": d.HastelloyArea,
			"solder":    d.SolderArea,
			"rebco":     d.RebcoArea,
			"strand":    d.StrandArea,
		} {
			assert.GreaterOrEqual(t, a, 0.0, "%s area at od %v", name, od)
		}
	}
}

func TestCrocoFractionsSumToOne(t *testing.T) {
	// with the conductor area set to the sum of the regional areas the
	// fractions must close to one
	first := CrocoCableDesign(2.0e10, testOD, testThick, 1.0, testTape, nil)
	d := CrocoCableDesign(2.0e10, testOD, testThick, conductorAreaSum(first), testTape, nil)

	sum := d.ConductorCopperFraction + d.ConductorHastelloyFraction +
		d.ConductorHeliumFraction + d.ConductorSolderFraction + d.ConductorRebcoFraction
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCrocoScaleInvariance(t *testing.T) {
	// doubling the cable at a fixed wall/OD ratio scales the tape
	// dimensions linearly and leaves the fractions untouched
	base := CrocoCableDesign(2.0e10, testOD, testThick, 1.0, testTape, nil)
	baseFrac := CrocoCableDesign(2.0e10, testOD, testThick, conductorAreaSum(base), testTape, nil)

	double := CrocoCableDesign(2.0e10, 2.0*testOD, 2.0*testThick, 1.0, testTape, nil)
	doubleFrac := CrocoCableDesign(2.0e10, 2.0*testOD, 2.0*testThick, conductorAreaSum(double), testTape, nil)

	assert.InEpsilon(t, 2.0*base.TapeWidth, double.TapeWidth, 1e-12)
	assert.InEpsilon(t, 2.0*base.StackThickness, double.StackThickness, 1e-12)

	assert.InDelta(t, baseFrac.ConductorCopperFraction, doubleFrac.ConductorCopperFraction, 1e-12)
	assert.InDelta(t, baseFrac.ConductorHastelloyFraction, doubleFrac.ConductorHastelloyFraction, 1e-12)
	assert.InDelta(t, baseFrac.ConductorHeliumFraction, doubleFrac.ConductorHeliumFraction, 1e-12)
	assert.InDelta(t, baseFrac.ConductorSolderFraction, doubleFrac.ConductorSolderFraction, 1e-12)
	assert.InDelta(t, baseFrac.ConductorRebcoFraction, doubleFrac.ConductorRebcoFraction, 1e-12)
}

func TestCrocoInvalidInnerDiameterIsReported(t *testing.T) {
	rep := &recordingReporter{}

	// wall thicker than the radius leaves no bore
	CrocoCableDesign(2.0e10, 1.0e-3, 1.0e-3, 1.0, testTape, rep)

	assert.Contains(t, rep.codes, DiagInnerDiameter)
}
