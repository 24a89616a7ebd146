// Package simulator estimates annual taxes and social charges for a
// planned company. The rates and schedules are simplified advisory
// approximations, kept verbatim for parity with the wizard's advisory
// content; they are not a tax computation reference.
package simulator

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/CharlesKoulier/incorporation-engine/pkg/mathutil"
)

// TaxDetails itemizes the estimated taxes, each rounded to the euro.
type TaxDetails struct {
	IS             float64 `json:"is"`
	IR             float64 `json:"ir"`
	CFE            float64 `json:"cfe"`
	CVAE           float64 `json:"cvae"`
	Apprenticeship float64 `json:"apprenticeship"`
	Training       float64 `json:"training"`
}

// TaxResult is the simulator output; Total is the sum of the rounded
// detail components.
type TaxResult struct {
	Total   float64    `json:"total"`
	Details TaxDetails `json:"details"`
}

// CalculateTaxes estimates the annual tax burden. Under IS the officer's
// salary is deductible from the taxable profit; under IR it is not.
// Negative profit yields zero income tax rather than a credit.
func CalculateTaxes(turnover, expenses, salary float64, companyType company.LegalForm, taxRegime company.TaxRegime) TaxResult {
	grossProfit := turnover - expenses
	if taxRegime == company.TaxRegimeIS {
		grossProfit -= salary
	}
	taxable := mathutil.Max(0, grossProfit)

	var details TaxDetails

	if taxRegime == company.TaxRegimeIS {
		reduced := mathutil.Min(taxable, constants.ISReducedBracketCap)
		excess := mathutil.Max(0, taxable-constants.ISReducedBracketCap)
		details.IS = mathutil.RoundEuro(reduced*constants.ISReducedRate + excess*constants.ISStandardRate)
	}

	if taxRegime == company.TaxRegimeIR {
		details.IR = mathutil.RoundEuro(taxable * constants.IRFlatRate)
	}

	details.CFE = mathutil.RoundEuro(mathutil.Clamp(turnover*constants.CFERate, constants.CFEMinimum, constants.CFEMaximum))

	if turnover > constants.CVAETurnoverFloor {
		details.CVAE = mathutil.RoundEuro(mathutil.Max(0, turnover*constants.CVAERate))
	}

	if !companyType.SoleTrader() {
		details.Apprenticeship = mathutil.RoundEuro(salary * constants.ApprenticeshipRate)
		details.Training = mathutil.RoundEuro(salary * constants.TrainingLevyRate)
	}

	total := details.IS + details.IR + details.CFE + details.CVAE + details.Apprenticeship + details.Training
	return TaxResult{Total: total, Details: details}
}
