// Package adapters provides adapter implementations between the raw
// configuration structures and the typed profile the engine consumes.
package adapters

import (
	"strings"

	"github.com/CharlesKoulier/incorporation-engine/internal/config"
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
)

// ProfileToCompanyProfile converts the raw config profile into the typed
// CompanyProfile. Negative amounts are coerced to 0 and unknown enum
// strings fall to their documented defaults; the engine itself performs
// no recovery on malformed input.
func ProfileToCompanyProfile(raw config.Profile) company.CompanyProfile {
	return company.CompanyProfile{
		CompanyType:            parseOptionalForm(raw.CompanyType),
		ActivityCategory:       company.ParseActivityCategory(raw.Activity),
		PartnersCount:          raw.PartnersCount,
		EstimatedTurnover:      coerceAmount(raw.EstimatedTurnover),
		ProjectedExpenses:      coerceAmount(raw.ProjectedExpenses),
		ProjectedSalary:        coerceAmount(raw.ProjectedSalary),
		FundingSource:          company.ParseFundingSource(raw.FundingSource),
		EmployeeHiring:         company.ParseHiringPlan(raw.EmployeeHiring),
		PatrimoineProtection:   company.ParseProtectionLevel(raw.PatrimoineProtection),
		HeadquartersType:       parseHeadquarters(raw.HeadquartersType),
		EmployeesCount:         coerceAmount(raw.EmployeesCount),
		TotalBilan:             coerceAmount(raw.TotalBilan),
		CurrentSituation:       company.ParseCurrentSituation(raw.CurrentSituation),
		HasMajorityShareholder: raw.HasMajorityShareholder,
		TaxRegime:              parseTaxRegime(raw.TaxRegime),
		VATRegime:              parseVATRegime(raw.VATRegime),
		SocialRegime:           parseSocialRegime(raw.SocialRegime),
	}
}

// parseOptionalForm keeps an empty company type empty so the engine knows
// no form has been chosen yet; ParseLegalForm would map it to Other.
func parseOptionalForm(s string) company.LegalForm {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return company.ParseLegalForm(s)
}

func coerceAmount(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func parseHeadquarters(s string) company.DomiciliationType {
	switch company.DomiciliationType(strings.ToLower(strings.TrimSpace(s))) {
	case company.DomiciliationKoulier:
		return company.DomiciliationKoulier
	case company.DomiciliationCommercial:
		return company.DomiciliationCommercial
	case company.DomiciliationPersonal:
		return company.DomiciliationPersonal
	default:
		return ""
	}
}

func parseTaxRegime(s string) company.TaxRegime {
	switch company.TaxRegime(strings.ToUpper(strings.TrimSpace(s))) {
	case company.TaxRegimeIR:
		return company.TaxRegimeIR
	case company.TaxRegimeIS:
		return company.TaxRegimeIS
	default:
		return ""
	}
}

func parseVATRegime(s string) company.VATRegime {
	switch strings.TrimSpace(s) {
	case string(company.VATFranchise):
		return company.VATFranchise
	case string(company.VATRealSimplified):
		return company.VATRealSimplified
	case string(company.VATRealNormal):
		return company.VATRealNormal
	default:
		return ""
	}
}

func parseSocialRegime(s string) company.SocialRegime {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(company.SocialTNS):
		return company.SocialTNS
	case "ASSIMILE":
		return company.SocialAssimile
	default:
		return ""
	}
}
