// Package regimes recommends tax, VAT, and social regimes from the company
// profile. Every advice carries whether the regime is a legal obligation
// (Forced) or only the engine's suggestion, plus a rationale for the UI.
package regimes

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
)

// TaxAdvice is the result of a tax regime recommendation.
type TaxAdvice struct {
	Regime      company.TaxRegime `json:"regime"`
	Explanation string            `json:"explanation"`
	Forced      bool              `json:"forced"`
}

// RecommendTaxRegime picks between IR and IS. IS is a legal requirement for
// the SAS family and SA; elsewhere it becomes attractive once turnover,
// partner count, or a majority shareholder raise the stakes.
func RecommendTaxRegime(companyType company.LegalForm, hasMultiplePartners, hasMajorityShareholder bool, turnover float64) TaxAdvice {
	if companyType.ISForced() {
		return TaxAdvice{
			Regime:      company.TaxRegimeIS,
			Explanation: "L'impôt sur les sociétés est obligatoire pour les " + string(companyType),
			Forced:      true,
		}
	}

	if turnover > constants.ISAdviceTurnover || hasMultiplePartners || hasMajorityShareholder {
		return TaxAdvice{
			Regime:      company.TaxRegimeIS,
			Explanation: "L'impôt sur les sociétés est conseillé compte tenu du chiffre d'affaires prévu et de la structure de la société",
		}
	}

	return TaxAdvice{
		Regime:      company.TaxRegimeIR,
		Explanation: "L'impôt sur le revenu est adapté à une petite structure unipersonnelle",
	}
}
