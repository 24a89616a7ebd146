package adapters

import (
	"testing"

	"github.com/CharlesKoulier/incorporation-engine/internal/config"
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
)

func TestProfileToCompanyProfile(t *testing.T) {
	raw := config.Profile{
		CompanyType:            "sasu",
		Activity:               "commerce",
		PartnersCount:          1,
		EstimatedTurnover:      90000,
		ProjectedExpenses:      20000,
		ProjectedSalary:        30000,
		FundingSource:          "bank",
		EmployeeHiring:         "immediate",
		PatrimoineProtection:   "high",
		HeadquartersType:       "koulier",
		EmployeesCount:         3,
		TotalBilan:             150000,
		CurrentSituation:       "unemployed",
		HasMajorityShareholder: true,
		TaxRegime:              "is",
		VATRegime:              "realSimplified",
		SocialRegime:           "assimile",
	}

	profile := ProfileToCompanyProfile(raw)

	if profile.CompanyType != company.LegalFormSASU {
		t.Errorf("companyType = %v, expected SASU", profile.CompanyType)
	}
	if profile.ActivityCategory != company.ActivityCommerce {
		t.Errorf("activity = %v, expected COMMERCE", profile.ActivityCategory)
	}
	if profile.FundingSource != company.FundingBank {
		t.Errorf("fundingSource = %v, expected bank", profile.FundingSource)
	}
	if profile.EmployeeHiring != company.HiringImmediate {
		t.Errorf("employeeHiring = %v, expected immediate", profile.EmployeeHiring)
	}
	if profile.PatrimoineProtection != company.ProtectionHigh {
		t.Errorf("protection = %v, expected high", profile.PatrimoineProtection)
	}
	if profile.HeadquartersType != company.DomiciliationKoulier {
		t.Errorf("headquarters = %v, expected koulier", profile.HeadquartersType)
	}
	if profile.CurrentSituation != company.SituationUnemployed {
		t.Errorf("situation = %v, expected unemployed", profile.CurrentSituation)
	}
	if profile.TaxRegime != company.TaxRegimeIS {
		t.Errorf("taxRegime = %v, expected IS", profile.TaxRegime)
	}
	if profile.VATRegime != company.VATRealSimplified {
		t.Errorf("vatRegime = %v, expected realSimplified", profile.VATRegime)
	}
	if profile.SocialRegime != company.SocialAssimile {
		t.Errorf("socialRegime = %v, expected assimile", profile.SocialRegime)
	}
}

func TestProfileCoercion(t *testing.T) {
	raw := config.Profile{
		PartnersCount:     1,
		EstimatedTurnover: -5000,
		ProjectedExpenses: -1,
		ProjectedSalary:   -200,
		EmployeesCount:    -3,
		TotalBilan:        -1000,
	}

	profile := ProfileToCompanyProfile(raw)

	if profile.EstimatedTurnover != 0 || profile.ProjectedExpenses != 0 ||
		profile.ProjectedSalary != 0 || profile.EmployeesCount != 0 || profile.TotalBilan != 0 {
		t.Errorf("expected negative amounts coerced to 0, got %+v", profile)
	}
}

func TestProfileUnknownEnums(t *testing.T) {
	raw := config.Profile{
		CompanyType:      "SCI",
		Activity:         "consulting",
		PartnersCount:    2,
		FundingSource:    "lottery",
		EmployeeHiring:   "someday",
		CurrentSituation: "retired",
		TaxRegime:        "flat",
		VATRegime:        "none",
		SocialRegime:     "special",
	}

	profile := ProfileToCompanyProfile(raw)

	if profile.CompanyType != company.LegalFormOther {
		t.Errorf("companyType = %v, expected OTHER", profile.CompanyType)
	}
	if profile.ActivityCategory != company.ActivityService {
		t.Errorf("activity = %v, expected SERVICE default", profile.ActivityCategory)
	}
	if profile.FundingSource != company.FundingPersonal {
		t.Errorf("fundingSource = %v, expected personal default", profile.FundingSource)
	}
	if profile.EmployeeHiring != company.HiringNone {
		t.Errorf("employeeHiring = %v, expected none default", profile.EmployeeHiring)
	}
	if profile.TaxRegime != "" || profile.VATRegime != "" || profile.SocialRegime != "" {
		t.Errorf("expected unknown regimes to stay unset, got %q %q %q",
			profile.TaxRegime, profile.VATRegime, profile.SocialRegime)
	}
}

func TestEmptyCompanyTypeStaysEmpty(t *testing.T) {
	profile := ProfileToCompanyProfile(config.Profile{PartnersCount: 1})
	if profile.CompanyType != "" {
		t.Errorf("companyType = %q, expected empty so the engine recommends a form", profile.CompanyType)
	}
}
