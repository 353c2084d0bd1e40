package validation

import "github.com/kwanzafolio/kwanzafolio-backend/internal/model"

// ValidateSimulationInput rejects inputs the simulator form would not submit.
// Negative rates are allowed; they model a shrinking position.
func ValidateSimulationInput(in model.SimulationInput) error {
	errors := make(map[string]string)

	if !finite(in.Principal) || in.Principal <= 0 {
		errors["principal"] = "principal must be positive"
	}
	if !finite(in.AnnualRatePercent) {
		errors["annualRatePercent"] = "annualRatePercent must be a number"
	}
	if !finite(in.HorizonYears) || in.HorizonYears < 0 {
		errors["horizonYears"] = "horizonYears cannot be negative"
	} else if in.HorizonYears > 100 {
		errors["horizonYears"] = "horizonYears must be 100 or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
