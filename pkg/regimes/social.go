package regimes

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
)

// SocialAdvice is the result of a social regime recommendation.
type SocialAdvice struct {
	Regime      company.SocialRegime `json:"regime"`
	Explanation string               `json:"explanation"`
	Forced      bool                 `json:"forced"`
}

// RecommendSocialRegime picks the officer's social status. A majority
// president of an SAS-family company or SA is assimilé-salarié by law;
// every other configuration, including unrecognized company types, falls
// to TNS.
func RecommendSocialRegime(companyType company.LegalForm, hasMajorityShareholder bool) SocialAdvice {
	if companyType.ISForced() && hasMajorityShareholder {
		return SocialAdvice{
			Regime:      company.SocialAssimile,
			Explanation: "Le dirigeant majoritaire d'une " + string(companyType) + " relève du régime assimilé-salarié",
			Forced:      true,
		}
	}

	return SocialAdvice{
		Regime:      company.SocialTNS,
		Explanation: "Statut de travailleur non salarié : cotisations sociales réduites",
	}
}
