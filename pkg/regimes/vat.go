package regimes

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
)

// VATAdvice is the result of a VAT regime recommendation.
type VATAdvice struct {
	Regime      company.VATRegime   `json:"regime"`
	Periodicity company.Periodicity `json:"periodicity"`
	Explanation string              `json:"explanation"`
	Forced      bool                `json:"forced"`
}

// RecommendVATRegime places the turnover in one of the three TVA brackets.
// The franchise ceiling depends on the activity: commerce gets the higher
// cap, every other category the service cap. Above the réel simplifié
// ceiling the réel normal regime is a legal obligation, not a suggestion.
func RecommendVATRegime(activity company.ActivityCategory, turnover float64) VATAdvice {
	franchiseCap := constants.VATFranchiseCapService
	if activity == company.ActivityCommerce {
		franchiseCap = constants.VATFranchiseCapCommerce
	}

	switch {
	case turnover <= franchiseCap:
		return VATAdvice{
			Regime:      company.VATFranchise,
			Periodicity: company.PeriodicityMonthly,
			Explanation: "Franchise en base de TVA : pas de TVA à facturer sous le plafond de votre activité",
		}
	case turnover <= constants.VATRealSimplifiedCap:
		return VATAdvice{
			Regime:      company.VATRealSimplified,
			Periodicity: company.PeriodicityQuarterly,
			Explanation: "Régime réel simplifié : déclarations trimestrielles adaptées à votre chiffre d'affaires",
		}
	default:
		return VATAdvice{
			Regime:      company.VATRealNormal,
			Periodicity: company.PeriodicityMonthly,
			Explanation: "Régime réel normal obligatoire au-delà du plafond du réel simplifié",
			Forced:      true,
		}
	}
}
