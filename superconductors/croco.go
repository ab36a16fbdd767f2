package superconductors

import "math"

// CrocoStrandsPerCable is the number of CroCo strands wound around the
// central copper bar of the cable.
const CrocoStrandsPerCable = 6

// Reference strand geometry the tape dimensions are scaled from.
const (
	croco_id_ref   = 5.4e-3  // tube inner diameter, m
	tape_width_ref = 3.75e-3 // tape width at the reference inner diameter, m
)

// TapeGeometry holds the layer thicknesses of one REBCO tape.
type TapeGeometry struct {
	RebcoThickness     float64 // REBCO layer, m
	CopperThickness    float64 // copper stabiliser layer, m
	HastelloyThickness float64 // hastelloy substrate, m
}

/*
CableAreaBreakdown is the cross-section decomposition of a CroCo cable:
six tape-stack strands wound around a central copper bar. Per-strand
quantities refer to one strand; conductor quantities aggregate the six
strands plus the bar. Fractions are relative to the conductor area
supplied by the caller.
*/
type CableAreaBreakdown struct {
	TapeWidth      float64 // m
	TapeThickness  float64 // m
	StackThickness float64 // m
	Tapes          float64 // tape count, continuous approximation

	CopperArea            float64 // per strand, m2
	HastelloyArea         float64 // per strand, m2
	SolderArea            float64 // per strand, m2
	RebcoArea             float64 // per strand, m2
	StrandArea            float64 // m2
	StrandCriticalCurrent float64 // A

	ConductorCriticalCurrent   float64 // A
	ConductorCopperBarArea     float64 // m2
	ConductorCopperArea        float64 // m2
	ConductorCopperFraction    float64
	ConductorHastelloyArea     float64 // m2
	ConductorHastelloyFraction float64
	ConductorHeliumArea        float64 // m2
	ConductorHeliumFraction    float64
	ConductorSolderArea        float64 // m2
	ConductorSolderFraction    float64
	ConductorRebcoArea         float64 // m2
	ConductorRebcoFraction     float64
}

/*
Cross-section decomposition of a CroCo cable.

    Args:
        jcritsc: critical current density of the REBCO layer, A/m2
        croco_od: cable strand outer diameter, m
        croco_thick: tube wall thickness, m
        conductor_area: total conductor cross-section the fractions
            refer to, m2 (supplied by the caller, not computed here)
        g: tape layer thicknesses
        rep: collector for invalid-geometry diagnostics (may be nil)

    Notes:
        The tape width scales with the tube inner diameter from the
        5.4 mm / 3.75 mm reference geometry. The helium channel is
        sized independently of the tape geometry; consistency of
        conductor_area with the computed regional areas is the
        caller's responsibility. A non-positive inner diameter is
        reported and evaluation continues with meaningless downstream
        values.
*/
func CrocoCableDesign(jcritsc, croco_od, croco_thick, conductor_area float64, g TapeGeometry, rep Reporter) CableAreaBreakdown {
	var d CableAreaBreakdown

	// tube inner diameter
	croco_id := croco_od - 2.0*croco_thick
	if croco_id <= 0.0 {
		report(rep, DiagInnerDiameter, croco_id, croco_od)
	}

	scaling := croco_id / croco_id_ref
	d.TapeWidth = scaling * tape_width_ref
	d.TapeThickness = g.RebcoThickness + g.CopperThickness + g.HastelloyThickness
	d.StackThickness = math.Sqrt(croco_id*croco_id - d.TapeWidth*d.TapeWidth)
	d.Tapes = d.StackThickness / d.TapeThickness

	// per-strand regional areas: tube wall plus tape layers, with the
	// solder filling the rest of the bore around the stack
	d.CopperArea = math.Pi*croco_thick*(croco_od-croco_thick) +
		g.CopperThickness*d.TapeWidth*d.Tapes
	d.HastelloyArea = g.HastelloyThickness * d.TapeWidth * d.Tapes
	d.SolderArea = math.Pi/4.0*croco_id*croco_id - d.StackThickness*d.TapeWidth
	d.RebcoArea = g.RebcoThickness * d.TapeWidth * d.Tapes

	d.StrandArea = math.Pi / 4.0 * croco_od * croco_od
	d.StrandCriticalCurrent = jcritsc * d.RebcoArea

	// cable level: six strands around one copper bar of strand size
	d.ConductorCriticalCurrent = CrocoStrandsPerCable * d.StrandCriticalCurrent
	d.ConductorCopperBarArea = d.StrandArea
	d.ConductorCopperArea = CrocoStrandsPerCable*d.CopperArea + d.ConductorCopperBarArea
	d.ConductorHeliumArea = math.Pi / 2.0 * croco_od * croco_od
	d.ConductorHastelloyArea = CrocoStrandsPerCable * d.HastelloyArea
	d.ConductorSolderArea = CrocoStrandsPerCable * d.SolderArea
	d.ConductorRebcoArea = CrocoStrandsPerCable * d.RebcoArea

	d.ConductorCopperFraction = d.ConductorCopperArea / conductor_area
	d.ConductorHeliumFraction = d.ConductorHeliumArea / conductor_area
	d.ConductorHastelloyFraction = d.ConductorHastelloyArea / conductor_area
	d.ConductorSolderFraction = d.ConductorSolderArea / conductor_area
	d.ConductorRebcoFraction = d.ConductorRebcoArea / conductor_area

	return d
}
