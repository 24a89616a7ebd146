// Package engine composes the recommenders, the charges simulator, and the
// threshold evaluator into the single recommendation object consumed by
// the wizard UI.
package engine

import (
	"fmt"

	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/CharlesKoulier/incorporation-engine/pkg/legalform"
	"github.com/CharlesKoulier/incorporation-engine/pkg/regimes"
	"github.com/CharlesKoulier/incorporation-engine/pkg/thresholds"
	"go.uber.org/zap"
)

// FallbackExplanation is surfaced verbatim by the UI when the builder
// falls back to the default recommendation.
const FallbackExplanation = "Régime par défaut — une erreur est survenue lors de l'analyse"

// DomiciliationAdvice is the registered-office recommendation.
type DomiciliationAdvice struct {
	Recommended company.DomiciliationType `json:"recommended"`
	Reasons     []string                  `json:"reasons"`
}

// FiscalAdvice groups the three regime recommendations.
type FiscalAdvice struct {
	Tax    regimes.TaxAdvice    `json:"tax"`
	VAT    regimes.VATAdvice    `json:"vat"`
	Social regimes.SocialAdvice `json:"social"`
}

// Recommendation is the immutable snapshot recomputed on every profile
// change. It carries no identity beyond the wizard session.
type Recommendation struct {
	CompanyForm          company.LegalForm        `json:"companyForm"`
	Partners             int                      `json:"partners"`
	Activity             company.ActivityCategory `json:"activity"`
	Domiciliation        DomiciliationAdvice      `json:"domiciliation"`
	Fiscal               FiscalAdvice             `json:"fiscal"`
	PatrimoineProtection string                   `json:"patrimoineProtection"`
	KeyBenefits          []string                 `json:"keyBenefits"`
	AdditionalServices   []string                 `json:"additionalServices"`
	Alerts               []thresholds.Alert       `json:"alerts,omitempty"`
}

// Result makes the fail-safe path visible in the type system: either a
// computed recommendation, or the documented default with the reason the
// pipeline fell back.
type Result struct {
	Recommendation Recommendation `json:"recommendation"`
	Fallback       bool           `json:"fallback,omitempty"`
	FallbackReason string         `json:"fallbackReason,omitempty"`
}

// Builder runs the recommendation pipeline against a fixed catalog.
type Builder struct {
	logger    *zap.Logger
	evaluator *thresholds.Evaluator
	catalog   thresholds.Catalog
}

// NewBuilder creates a builder with the given logger and threshold
// catalog. A nil logger falls to a no-op logger; a nil catalog falls to
// the compiled-in default.
func NewBuilder(logger *zap.Logger, catalog thresholds.Catalog) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = thresholds.DefaultCatalog()
	}
	return &Builder{
		logger:    logger,
		evaluator: thresholds.NewEvaluator(logger),
		catalog:   catalog,
	}
}

// Build computes the full recommendation for a profile. A broken
// recommendation must never crash the wizard, so any panic inside the
// pipeline is recovered into the default Result.
func (b *Builder) Build(profile company.CompanyProfile) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recommendation pipeline failed, returning defaults",
				zap.String("op", "engine.Build"),
				zap.Any("panic", r),
			)
			result = b.fallback(profile, fmt.Sprintf("%v", r))
		}
	}()

	if profile.PartnersCount < 1 {
		b.logger.Warn("Invalid partners count, returning defaults",
			zap.Int("partnersCount", profile.PartnersCount),
		)
		return b.fallback(profile, "nombre d'associés invalide")
	}
	if profile.EstimatedTurnover < 0 {
		b.logger.Warn("Negative turnover, returning defaults",
			zap.Float64("turnover", profile.EstimatedTurnover),
		)
		return b.fallback(profile, "chiffre d'affaires invalide")
	}

	form := b.effectiveForm(profile)
	fiscal := FiscalAdvice{
		Tax:    regimes.RecommendTaxRegime(form, profile.HasMultiplePartners(), profile.HasMajorityShareholder, profile.EstimatedTurnover),
		VAT:    regimes.RecommendVATRegime(profile.ActivityCategory, profile.EstimatedTurnover),
		Social: regimes.RecommendSocialRegime(form, profile.HasMajorityShareholder),
	}

	domiciliation, reasons := legalform.RecommendDomiciliation(profile.ActivityCategory)
	if profile.HeadquartersType != "" {
		// A headquarters the user already picked stands.
		domiciliation = profile.HeadquartersType
		reasons = []string{"Conservation de votre choix de domiciliation"}
	}

	recommendation := Recommendation{
		CompanyForm:          form,
		Partners:             profile.PartnersCount,
		Activity:             profile.ActivityCategory,
		Domiciliation:        DomiciliationAdvice{Recommended: domiciliation, Reasons: reasons},
		Fiscal:               fiscal,
		PatrimoineProtection: protectionLabel(profile.PatrimoineProtection),
		KeyBenefits:          keyBenefits(form, fiscal, profile),
		AdditionalServices:   additionalServices(profile),
		Alerts:               b.sortedAlerts(profile, fiscal),
	}

	b.logger.Debug("Recommendation computed",
		zap.String("op", "engine.Build"),
		zap.String("companyForm", string(form)),
		zap.String("taxRegime", string(fiscal.Tax.Regime)),
		zap.Int("alerts", len(recommendation.Alerts)),
	)

	return Result{Recommendation: recommendation}
}

// effectiveForm keeps a form the user already picked; otherwise it runs
// the legal-form decision table.
func (b *Builder) effectiveForm(profile company.CompanyProfile) company.LegalForm {
	if profile.CompanyType != "" && profile.CompanyType != company.LegalFormOther {
		return profile.CompanyType
	}
	return legalform.Recommend(
		profile.IsAloneFounder(),
		profile.PatrimoineProtection,
		profile.EstimatedTurnover,
		profile.PlansEmployees(),
	)
}

// sortedAlerts evaluates the catalog against the profile enriched with
// the regimes just recommended, so regime-filtered thresholds apply.
func (b *Builder) sortedAlerts(profile company.CompanyProfile, fiscal FiscalAdvice) []thresholds.Alert {
	enriched := profile
	if enriched.TaxRegime == "" {
		enriched.TaxRegime = fiscal.Tax.Regime
	}
	if enriched.VATRegime == "" {
		enriched.VATRegime = fiscal.VAT.Regime
	}
	if enriched.SocialRegime == "" {
		enriched.SocialRegime = fiscal.Social.Regime
	}

	alerts := b.evaluator.Evaluate(enriched, b.catalog)
	thresholds.SortAlerts(alerts)
	return alerts
}

// fallback returns the documented default recommendation: the simple
// EURL/SARL family, IR, franchise, TNS, with the fallback explanation on
// every advice so the UI shows the result is not personalized.
func (b *Builder) fallback(profile company.CompanyProfile, reason string) Result {
	form := company.LegalFormSARL
	if profile.IsAloneFounder() {
		form = company.LegalFormEURL
	}

	partners := profile.PartnersCount
	if partners < 1 {
		partners = 1
	}

	domiciliation, reasons := legalform.RecommendDomiciliation(profile.ActivityCategory)

	return Result{
		Fallback:       true,
		FallbackReason: reason,
		Recommendation: Recommendation{
			CompanyForm:          form,
			Partners:             partners,
			Activity:             profile.ActivityCategory,
			Domiciliation:        DomiciliationAdvice{Recommended: domiciliation, Reasons: reasons},
			PatrimoineProtection: protectionLabel(profile.PatrimoineProtection),
			Fiscal: FiscalAdvice{
				Tax:    regimes.TaxAdvice{Regime: company.TaxRegimeIR, Explanation: FallbackExplanation},
				VAT:    regimes.VATAdvice{Regime: company.VATFranchise, Periodicity: company.PeriodicityMonthly, Explanation: FallbackExplanation},
				Social: regimes.SocialAdvice{Regime: company.SocialTNS, Explanation: FallbackExplanation},
			},
		},
	}
}

func protectionLabel(level company.ProtectionLevel) string {
	switch level {
	case company.ProtectionHigh:
		return "Protection maximale du patrimoine personnel"
	case company.ProtectionLow:
		return "Protection limitée du patrimoine personnel"
	default:
		return "Protection standard du patrimoine personnel"
	}
}

// keyBenefits assembles the benefit strings in fixed order: legal form,
// then tax, then social, then funding source, then hiring.
func keyBenefits(form company.LegalForm, fiscal FiscalAdvice, profile company.CompanyProfile) []string {
	var benefits []string

	if form.SASFamily() {
		benefits = append(benefits,
			"Responsabilité limitée aux apports : votre patrimoine personnel est protégé",
			"Grande liberté statutaire pour organiser la gouvernance",
		)
	} else {
		benefits = append(benefits,
			"Structure simple et éprouvée, formalités de gestion réduites",
			"Coûts de fonctionnement maîtrisés",
		)
	}

	if fiscal.Tax.Regime == company.TaxRegimeIS && profile.EstimatedTurnover > constants.HighTurnover {
		benefits = append(benefits,
			"L'impôt sur les sociétés optimise la fiscalité d'un chiffre d'affaires élevé")
	} else if fiscal.Tax.Regime == company.TaxRegimeIR {
		benefits = append(benefits,
			"Imposition directe à l'impôt sur le revenu, sans déclaration fiscale séparée")
	}

	if fiscal.Social.Regime == company.SocialAssimile {
		benefits = append(benefits,
			"Protection sociale du régime général pour le dirigeant")
	} else {
		benefits = append(benefits,
			"Cotisations sociales réduites grâce au statut TNS")
	}

	switch profile.FundingSource {
	case company.FundingInvestors:
		benefits = append(benefits,
			"Entrée d'investisseurs facilitée par des statuts souples")
	case company.FundingBank:
		benefits = append(benefits,
			"Structure crédible auprès des établissements bancaires")
	}

	if profile.EmployeeHiring == company.HiringImmediate || profile.EmployeeHiring == company.HiringFuture {
		benefits = append(benefits,
			"Cadre adapté à l'embauche de salariés")
	}

	return benefits
}

// additionalServices evaluates each service condition independently and
// accumulates suggestions in fixed order.
func additionalServices(profile company.CompanyProfile) []string {
	var services []string

	if profile.CurrentSituation == company.SituationUnemployed {
		services = append(services, "Accompagnement ACRE : exonération partielle de charges sociales")
	}
	if profile.EstimatedTurnover > constants.AccountingServiceTurnover {
		services = append(services, "Expert-comptable en ligne")
	}
	if profile.FundingSource == company.FundingBank {
		services = append(services, "Ouverture de compte bancaire professionnel")
	}
	if profile.EmployeeHiring == company.HiringImmediate {
		services = append(services, "Service de gestion de paie")
	}
	if profile.PatrimoineProtection == company.ProtectionHigh {
		services = append(services, "Assurance protection juridique")
	}

	return services
}
