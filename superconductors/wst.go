package superconductors

import "math"

// Fit constants of the Bottura scaling for the WST Nb3Sn strand.
const (
	csc_wst = 83075.0 // scaling constant, A/mm2
	p_wst   = 0.593   // low field exponent of the pinning force
	q_wst   = 2.156   // high field exponent of the pinning force
	ca1_wst = 50.06   // strain fit parameter
	ca2_wst = 0.0     // strain fit parameter
	eps_0a  = 0.00312 // residual strain component
	t_exp   = 1.52    // temperature exponent of the critical field
)

/*
Strain function of the Bottura scaling.

    Args:
        strain: intrinsic strain in the superconductor, -

    Returns:
        strain function, -

    Notes:
        The fit is valid for strain in [-0.005, 0.005], where the
        value stays within [0.83, 1.0]. At zero strain (and the
        default ca2 = 0) the value is exactly 1.
*/
func strain_function(strain float64) float64 {
	// shear strain at which the strain function peaks
	epssh := ca2_wst * eps_0a / math.Sqrt(ca1_wst*ca1_wst-ca2_wst*ca2_wst)

	strfun := math.Sqrt(epssh*epssh+eps_0a*eps_0a) - math.Sqrt((strain-epssh)*(strain-epssh)+eps_0a*eps_0a)
	strfun = strfun*ca1_wst - ca2_wst*strain
	return 1.0 + strfun/(1.0-ca1_wst*eps_0a)
}

/*
Critical surface of the WST Nb3Sn strand.

    Args:
        temperature: operating temperature, K
        bmax: magnetic field at the conductor, T
        strain: intrinsic strain in the superconductor, -
        bc20max: upper critical field at zero temperature and strain, T
        tc0max: critical temperature at zero field and strain, K
        rep: collector for out-of-range diagnostics (may be nil)

    Returns:
        jcrit: critical current density in the superconductor, A/m2
        bcrit: critical field at the operating temperature, T
        tcrit: critical temperature at the operating field, K
        err: non-nil *NaNError when the scaling breaks down numerically

    Notes:
        Outside the validity domain (reduced temperature or field at or
        above unity) the violation is reported to rep and evaluation
        continues on a continuous extrapolation, so that a caller
        iterating towards the valid domain always receives a finite
        value. The extrapolation is not differentiable at the branch
        boundaries. A NaN result is unrecoverable and returned as
        *NaNError with a full dump of the inputs and intermediates.
*/
func CriticalSurfaceWST(temperature, bmax, strain, bc20max, tc0max float64, rep Reporter) (jcrit, bcrit, tcrit float64, err error) {
	strfun := strain_function(strain)
	if strfun < 0.0 {
		report(rep, DiagNegativeStrainFunction, strfun, strain)
	}

	// strain corrected upper critical field and critical temperature
	bc20eps := bc20max * strfun
	tc0eps := tc0max * math.Pow(strfun, 1.0/3.0)

	// reduced temperature
	t := temperature / tc0eps
	if t >= 1.0 {
		report(rep, DiagReducedTemperature, temperature, tc0eps)
	}

	// reduced field at zero temperature
	bzero := bmax / bc20eps
	if bzero >= 1.0 {
		report(rep, DiagReducedFieldZero, bmax, bc20eps)
	}

	// critical temperature; flat above bzero = 1 to keep the result real
	if bzero < 1.0 {
		tcrit = tc0eps * math.Pow(1.0-bzero, 1.0/t_exp)
	} else {
		tcrit = tc0eps
	}

	// critical field; linear below t = 0
	if t > 0.0 {
		bcrit = bc20eps * (1.0 - math.Pow(t, t_exp))
	} else {
		bcrit = bc20eps * (1.0 - t)
	}

	// reduced field at the operating temperature
	bred := bmax / bcrit
	if bred >= 1.0 {
		report(rep, DiagReducedField, bmax, bcrit)
	}

	// field shape of the pinning force
	var jc3 float64
	if bred > 0.0 && bred < 1.0 {
		jc3 = math.Pow(bred, p_wst) * math.Pow(1.0-bred, q_wst)
	} else {
		// a non-integer power of a negative base is undefined
		jc3 = bred * (1.0 - bred)
		if math.IsNaN(jc3) {
			return 0, bcrit, tcrit, &NaNError{
				Quantity: "jc3",
				Context: []DiagnosticValue{
					{"bred", bred},
					{"bmax", bmax},
					{"bcrit", bcrit},
					{"t", t},
				},
			}
		}
	}

	// temperature shape
	var jc2 float64
	if t > 0.0 {
		jc2 = (1.0 - math.Pow(t, t_exp)) * (1.0 - t*t)
	} else {
		jc2 = (1.0 - t) * (1.0 - t*t)
	}

	// field normalised prefactor
	jc1 := (csc_wst / bmax) * strfun

	// A/mm2 -> A/m2
	jcrit = jc1 * jc2 * jc3 * 1.0e6
	if math.IsNaN(jcrit) {
		return 0, bcrit, tcrit, &NaNError{
			Quantity: "jcrit",
			Context: []DiagnosticValue{
				{"jc1", jc1},
				{"jc2", jc2},
				{"jc3", jc3},
				{"t", t},
				{"temperature", temperature},
				{"bmax", bmax},
				{"strain", strain},
				{"bc20max", bc20max},
				{"tc0max", tc0max},
				{"jcrit", jcrit},
				{"bcrit", bcrit},
				{"tcrit", tcrit},
			},
		}
	}

	return jcrit, bcrit, tcrit, nil
}
