// Package company defines the typed company profile consumed by every
// engine function, along with the enums describing legal forms, activity
// categories, and regimes.
package company

import "strings"

// LegalForm is a French company legal form.
type LegalForm string

const (
	LegalFormEURL  LegalForm = "EURL"
	LegalFormSASU  LegalForm = "SASU"
	LegalFormSARL  LegalForm = "SARL"
	LegalFormSAS   LegalForm = "SAS"
	LegalFormSNC   LegalForm = "SNC"
	LegalFormSA    LegalForm = "SA"
	LegalFormEI    LegalForm = "EI"
	LegalFormEIRL  LegalForm = "EIRL"
	LegalFormOther LegalForm = "OTHER"
)

// ParseLegalForm maps free-form input onto a LegalForm; unrecognized
// values fall to LegalFormOther so downstream decision tables take their
// default branch instead of failing.
func ParseLegalForm(s string) LegalForm {
	switch LegalForm(strings.ToUpper(strings.TrimSpace(s))) {
	case LegalFormEURL, LegalFormSASU, LegalFormSARL, LegalFormSAS,
		LegalFormSNC, LegalFormSA, LegalFormEI, LegalFormEIRL:
		return LegalForm(strings.ToUpper(strings.TrimSpace(s)))
	default:
		return LegalFormOther
	}
}

// ISForced reports whether the IS tax regime is a legal requirement for
// this form rather than a choice.
func (f LegalForm) ISForced() bool {
	return f == LegalFormSAS || f == LegalFormSASU || f == LegalFormSA
}

// SASFamily reports whether the form belongs to the SAS family
// (full patrimoine separation, assimilated-employee officer status).
func (f LegalForm) SASFamily() bool {
	return f == LegalFormSAS || f == LegalFormSASU
}

// SoleTrader reports whether the form is an individual enterprise exempt
// from payroll-based levies.
func (f LegalForm) SoleTrader() bool {
	return f == LegalFormEI || f == LegalFormEIRL
}

// ActivityCategory classifies what the company does.
type ActivityCategory string

const (
	ActivityService   ActivityCategory = "SERVICE"
	ActivityCommerce  ActivityCategory = "COMMERCE"
	ActivityArtisanat ActivityCategory = "ARTISANAT"
	ActivityLiberal   ActivityCategory = "LIBERAL"
)

// ParseActivityCategory defaults unknown input to ActivityService, the
// most conservative branch for VAT thresholds (lowest franchise cap).
func ParseActivityCategory(s string) ActivityCategory {
	switch ActivityCategory(strings.ToUpper(strings.TrimSpace(s))) {
	case ActivityCommerce:
		return ActivityCommerce
	case ActivityArtisanat:
		return ActivityArtisanat
	case ActivityLiberal:
		return ActivityLiberal
	default:
		return ActivityService
	}
}

// TaxRegime is the corporate/personal income tax regime.
type TaxRegime string

const (
	TaxRegimeIR TaxRegime = "IR"
	TaxRegimeIS TaxRegime = "IS"
)

// VATRegime is the TVA regime.
type VATRegime string

const (
	VATFranchise      VATRegime = "franchise"
	VATRealSimplified VATRegime = "realSimplified"
	VATRealNormal     VATRegime = "realNormal"
)

// Periodicity is the VAT declaration periodicity.
type Periodicity string

const (
	PeriodicityMonthly   Periodicity = "monthly"
	PeriodicityQuarterly Periodicity = "quarterly"
)

// SocialRegime is the officer's social security status.
type SocialRegime string

const (
	SocialTNS      SocialRegime = "TNS"
	SocialAssimile SocialRegime = "assimile"
)

// FundingSource describes where the starting capital comes from.
type FundingSource string

const (
	FundingPersonal  FundingSource = "personal"
	FundingBank      FundingSource = "bank"
	FundingInvestors FundingSource = "investors"
)

// ParseFundingSource defaults unknown input to personal funding.
func ParseFundingSource(s string) FundingSource {
	switch FundingSource(strings.ToLower(strings.TrimSpace(s))) {
	case FundingBank:
		return FundingBank
	case FundingInvestors:
		return FundingInvestors
	default:
		return FundingPersonal
	}
}

// HiringPlan describes employee hiring intentions.
type HiringPlan string

const (
	HiringImmediate HiringPlan = "immediate"
	HiringFuture    HiringPlan = "future"
	HiringNone      HiringPlan = "none"
)

// ParseHiringPlan defaults unknown input to no hiring.
func ParseHiringPlan(s string) HiringPlan {
	switch HiringPlan(strings.ToLower(strings.TrimSpace(s))) {
	case HiringImmediate:
		return HiringImmediate
	case HiringFuture:
		return HiringFuture
	default:
		return HiringNone
	}
}

// ProtectionLevel is the desired personal-asset protection level.
type ProtectionLevel string

const (
	ProtectionHigh   ProtectionLevel = "high"
	ProtectionMedium ProtectionLevel = "medium"
	ProtectionLow    ProtectionLevel = "low"
)

// ParseProtectionLevel defaults unknown input to medium protection.
func ParseProtectionLevel(s string) ProtectionLevel {
	switch ProtectionLevel(strings.ToLower(strings.TrimSpace(s))) {
	case ProtectionHigh:
		return ProtectionHigh
	case ProtectionLow:
		return ProtectionLow
	default:
		return ProtectionMedium
	}
}

// DomiciliationType is the kind of registered office.
type DomiciliationType string

const (
	DomiciliationKoulier    DomiciliationType = "koulier"
	DomiciliationCommercial DomiciliationType = "commercial"
	DomiciliationPersonal   DomiciliationType = "personal"
)

// CurrentSituation is the founder's situation before incorporation, used
// by the additional-service rules (ACRE eligibility).
type CurrentSituation string

const (
	SituationEmployed   CurrentSituation = "employed"
	SituationUnemployed CurrentSituation = "unemployed"
	SituationStudent    CurrentSituation = "student"
	SituationOther      CurrentSituation = "other"
)

// ParseCurrentSituation defaults unknown input to SituationOther.
func ParseCurrentSituation(s string) CurrentSituation {
	switch CurrentSituation(strings.ToLower(strings.TrimSpace(s))) {
	case SituationEmployed:
		return SituationEmployed
	case SituationUnemployed:
		return SituationUnemployed
	case SituationStudent:
		return SituationStudent
	default:
		return SituationOther
	}
}

// CompanyProfile is the engine input assembled by the wizard UI from the
// multi-step form state. All amounts are annual, pre-tax euros. Numeric
// fields must be coerced to non-negative values by the caller (the
// adapters package does this); the engine assumes well-typed input.
type CompanyProfile struct {
	CompanyType            LegalForm
	ActivityCategory       ActivityCategory
	PartnersCount          int
	EstimatedTurnover      float64
	ProjectedExpenses      float64
	ProjectedSalary        float64
	FundingSource          FundingSource
	EmployeeHiring         HiringPlan
	PatrimoineProtection   ProtectionLevel
	HeadquartersType       DomiciliationType
	EmployeesCount         float64
	TotalBilan             float64
	CurrentSituation       CurrentSituation
	HasMajorityShareholder bool

	// Current regime selections when the wizard has reached those steps;
	// empty until then. Threshold applicability predicates match on them.
	TaxRegime    TaxRegime
	VATRegime    VATRegime
	SocialRegime SocialRegime
}

// IsAloneFounder reports whether the company has a single founder.
func (p CompanyProfile) IsAloneFounder() bool {
	return p.PartnersCount <= 1
}

// HasMultiplePartners reports whether more than one partner is declared.
func (p CompanyProfile) HasMultiplePartners() bool {
	return p.PartnersCount > 1
}

// PlansEmployees reports whether any hiring is planned, immediately or
// later. The legal-form decision table treats both the same way.
func (p CompanyProfile) PlansEmployees() bool {
	return p.EmployeeHiring == HiringImmediate || p.EmployeeHiring == HiringFuture
}
