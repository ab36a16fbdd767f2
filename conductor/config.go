package conductor

import (
	"gopkg.in/ini.v1"

	"github.com/clmould/PROCESS-clair/superconductors"
)

/*
Config holds the named material and geometry constants of the reference
conductors: the WST Nb3Sn strand critical-surface references, the REBCO
tape layer build, and the CroCo cable dimensions.
*/
type Config struct {
	Bc20max float64 // Nb3Sn upper critical field at zero temperature and strain, T
	Tc0max  float64 // Nb3Sn critical temperature at zero field and strain, K

	RebcoThickness     float64 // REBCO layer thickness, m
	CopperThickness    float64 // copper stabiliser layer thickness, m
	HastelloyThickness float64 // hastelloy substrate thickness, m

	CrocoOD    float64 // cable strand outer diameter, m
	CrocoThick float64 // tube wall thickness, m
}

// Default returns the reference machine constants.
func Default() Config {
	return Config{
		Bc20max:            32.97,
		Tc0max:             16.06,
		RebcoThickness:     1.0e-6,
		CopperThickness:    100.0e-6,
		HastelloyThickness: 50.0e-6,
		CrocoOD:            6.4e-3,
		CrocoThick:         0.5e-3,
	}
}

/*
Load reads conductor constants from an ini file with sections [nb3sn],
[rebco] and [croco]. Missing keys keep their defaults; on a read error
the defaults are returned together with the error.
*/
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := ini.Load(path)
	if err != nil {
		return cfg, err
	}

	nb := file.Section("nb3sn")
	cfg.Bc20max = nb.Key("bc20max").MustFloat64(cfg.Bc20max)
	cfg.Tc0max = nb.Key("tc0max").MustFloat64(cfg.Tc0max)

	rb := file.Section("rebco")
	cfg.RebcoThickness = rb.Key("rebco_thickness").MustFloat64(cfg.RebcoThickness)
	cfg.CopperThickness = rb.Key("copper_thickness").MustFloat64(cfg.CopperThickness)
	cfg.HastelloyThickness = rb.Key("hastelloy_thickness").MustFloat64(cfg.HastelloyThickness)

	cr := file.Section("croco")
	cfg.CrocoOD = cr.Key("croco_od").MustFloat64(cfg.CrocoOD)
	cfg.CrocoThick = cr.Key("croco_thick").MustFloat64(cfg.CrocoThick)

	return cfg, nil
}

// TapeGeometry returns the tape layer build as the evaluator expects it.
func (c Config) TapeGeometry() superconductors.TapeGeometry {
	return superconductors.TapeGeometry{
		RebcoThickness:     c.RebcoThickness,
		CopperThickness:    c.CopperThickness,
		HastelloyThickness: c.HastelloyThickness,
	}
}
