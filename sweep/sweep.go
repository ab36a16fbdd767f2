package sweep

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/clmould/PROCESS-clair/conductor"
	"github.com/clmould/PROCESS-clair/superconductors"
)

// DesignPoint is one row of the design-point input file: an operating
// temperature and strain, and the field range to sweep.
type DesignPoint struct {
	Name        string  `csv:"name"`
	Temperature float64 `csv:"temperature"` // K
	BMin        float64 `csv:"bmin"`        // T
	BMax        float64 `csv:"bmax"`        // T
	Strain      float64 `csv:"strain"`      // -
}

/*
ReadDesignPoints loads the design points from a CSV file.

    Args:
        path: design point CSV file (columns name, temperature, bmin,
            bmax, strain)
*/
func ReadDesignPoints(path string) ([]DesignPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var points []DesignPoint
	if err := gocsv.UnmarshalFile(file, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Runner evaluates the WST critical surface over field grids and the
// CroCo breakdown for the configured cable geometry.
type Runner struct {
	Cfg   conductor.Config
	Steps int // field steps per design point, at least 2
	Rep   superconductors.Reporter
}

/*
Run sweeps the critical surface for every design point over its field
range.

    Args:
        points: design points to evaluate

    Returns:
        surface: jcrit, A/m2, [point, field step]
        rec: one recorded row per evaluation
        err: the first unrecoverable *NaNError, or an invalid setup
*/
func (r *Runner) Run(points []DesignPoint) (*mat.Dense, *Recorder, error) {
	if r.Steps < 2 {
		return nil, nil, fmt.Errorf("sweep: need at least 2 field steps, got %d", r.Steps)
	}

	fields := make([]float64, r.Steps)
	surface := mat.NewDense(len(points), r.Steps, nil)
	rec := NewRecorder(len(points) * r.Steps)

	for i, pt := range points {
		floats.Span(fields, pt.BMin, pt.BMax)
		for j, b := range fields {
			jcrit, bcrit, tcrit, err := superconductors.CriticalSurfaceWST(
				pt.Temperature, b, pt.Strain, r.Cfg.Bc20max, r.Cfg.Tc0max, r.Rep)
			if err != nil {
				return nil, nil, err
			}
			surface.Set(i, j, jcrit)
			rec.Add(ResultRow{
				Name:        pt.Name,
				Temperature: pt.Temperature,
				Bmax:        b,
				Strain:      pt.Strain,
				Jcrit:       jcrit,
				Bcrit:       bcrit,
				Tcrit:       tcrit,
			})
		}
	}
	return surface, rec, nil
}

/*
CrocoBreakdown evaluates the CroCo cross-section for the configured
cable geometry. The conductor area is taken as the sum of the computed
regional areas, so the fractions sum to one.

    Args:
        jcritsc: critical current density of the REBCO layer, A/m2
*/
func (r *Runner) CrocoBreakdown(jcritsc float64) superconductors.CableAreaBreakdown {
	g := r.Cfg.TapeGeometry()

	// first pass with unit conductor area to obtain the regional areas
	d := superconductors.CrocoCableDesign(jcritsc, r.Cfg.CrocoOD, r.Cfg.CrocoThick, 1.0, g, r.Rep)
	total := d.ConductorCopperArea + d.ConductorHastelloyArea +
		d.ConductorHeliumArea + d.ConductorSolderArea + d.ConductorRebcoArea

	return superconductors.CrocoCableDesign(jcritsc, r.Cfg.CrocoOD, r.Cfg.CrocoThick, total, g, r.Rep)
}
