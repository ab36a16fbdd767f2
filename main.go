package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clmould/PROCESS-clair/conductor"
	"github.com/clmould/PROCESS-clair/sweep"
)

/*
Critical-surface sweep over a set of design points.

    Args:
        points_path: design point CSV (name, temperature, bmin, bmax, strain)
        config_path: conductor constants ini file ("" keeps the defaults)
        output_path: result CSV
        steps: field steps per design point
        jcritsc: REBCO critical current density for the CroCo breakdown, A/m2
*/
func run(log *logrus.Logger, points_path, config_path, output_path string, steps int, jcritsc float64) {
	cfg := conductor.Default()
	if config_path != "" {
		var err error
		cfg, err = conductor.Load(config_path)
		if err != nil {
			log.Warnf("conductor constants: %v (using defaults)", err)
		}
	}

	points, err := sweep.ReadDesignPoints(points_path)
	if err != nil {
		log.Fatalf("design points: %v", err)
	}

	runner := &sweep.Runner{
		Cfg:   cfg,
		Steps: steps,
		Rep:   &sweep.LogReporter{Log: log},
	}

	log.Infof("evaluating %d design points, %d field steps each", len(points), steps)
	start := time.Now()

	_, rec, err := runner.Run(points)
	if err != nil {
		// unrecoverable numerical breakdown; nothing to salvage
		log.Fatalf("critical surface: %v", err)
	}

	d := runner.CrocoBreakdown(jcritsc)
	log.WithFields(logrus.Fields{
		"tapes":              d.Tapes,
		"critical_current":   d.ConductorCriticalCurrent,
		"copper_fraction":    d.ConductorCopperFraction,
		"helium_fraction":    d.ConductorHeliumFraction,
		"hastelloy_fraction": d.ConductorHastelloyFraction,
		"solder_fraction":    d.ConductorSolderFraction,
		"rebco_fraction":     d.ConductorRebcoFraction,
	}).Info("croco cable breakdown")

	if err := rec.Save(output_path); err != nil {
		log.Fatalf("save results: %v", err)
	}

	log.Infof("wrote %d rows to %s in %v", len(rec.Rows()), output_path, time.Since(start))
}

func main() {
	var (
		points_path = flag.String("points", "design_points.csv", "design point CSV file")
		config_path = flag.String("config", "", "conductor constants ini file")
		output_path = flag.String("output", "jcrit.csv", "result CSV file")
		steps       = flag.Int("steps", 50, "field steps per design point")
		jcritsc     = flag.Float64("jcritsc", 2.0e10, "REBCO critical current density for the CroCo breakdown, A/m2")
	)
	flag.Parse()

	run(logrus.New(), *points_path, *config_path, *output_path, *steps, *jcritsc)
}
