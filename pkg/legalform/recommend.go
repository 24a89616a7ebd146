// Package legalform recommends a company legal form and a domiciliation
// type from the founder's answers.
package legalform

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
)

// Recommend picks a legal form from the four forms the wizard proposes.
// The table is evaluated in priority order; high asset protection or high
// turnover/employee exposure steers toward the SAS family, otherwise the
// simpler EURL/SARL family is chosen. This mirrors common French
// incorporation practice, not legal advice.
func Recommend(isAlone bool, protection company.ProtectionLevel, projectedTurnover float64, hasEmployees bool) company.LegalForm {
	exposed := projectedTurnover > constants.HighTurnover || hasEmployees

	if isAlone {
		if protection == company.ProtectionHigh {
			return company.LegalFormSASU
		}
		if exposed {
			return company.LegalFormSASU
		}
		return company.LegalFormEURL
	}

	if protection == company.ProtectionHigh {
		return company.LegalFormSAS
	}
	if exposed {
		return company.LegalFormSAS
	}
	return company.LegalFormSARL
}

// RecommendDomiciliation derives a registered-office recommendation from
// the activity classification. Service-type activities need no physical
// premises and default to a Koulier virtual office; commerce and artisanat
// need a commercial location.
func RecommendDomiciliation(activity company.ActivityCategory) (company.DomiciliationType, []string) {
	switch activity {
	case company.ActivityService, company.ActivityLiberal:
		return company.DomiciliationKoulier, []string{
			"Votre activité ne nécessite pas de local commercial",
			"Adresse professionnelle prestigieuse sans engagement de bail",
			"Gestion du courrier incluse",
		}
	default:
		return company.DomiciliationCommercial, []string{
			"Votre activité nécessite un local adapté à l'accueil de clientèle ou au stockage",
			"L'adresse du local constitue le siège social de la société",
		}
	}
}
