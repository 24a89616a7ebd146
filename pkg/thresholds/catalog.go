// Package thresholds holds the regulatory threshold catalog and the
// evaluator that turns a company profile into severity-ranked alerts.
package thresholds

import (
	"fmt"
	"strings"

	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/spf13/viper"
)

// Category selects which profile value a threshold is compared against.
type Category string

const (
	CategoryTVA       Category = "TVA"
	CategoryMicro     Category = "MICRO"
	CategorySocial    Category = "SOCIAL"
	CategoryComptable Category = "COMPTABLE"
	CategoryEmploi    Category = "EMPLOI"
)

// categoryOrder fixes the iteration order over the catalog map.
var categoryOrder = []Category{
	CategoryTVA, CategoryMicro, CategorySocial, CategoryComptable, CategoryEmploi,
}

// MatchAll is the wildcard accepted by every applicability filter.
const MatchAll = "ALL"

// Definition is one immutable catalog entry. A filter left empty always
// matches; a populated filter must match the profile exactly or carry the
// MatchAll wildcard. Warning and critical ratios band alert severity
// relative to the threshold value.
type Definition struct {
	ID       string   `mapstructure:"id" yaml:"id"`
	Category Category `mapstructure:"category" yaml:"category"`

	CompanyTypes []string `mapstructure:"companyTypes" yaml:"companyTypes,omitempty"`
	ActivityType string   `mapstructure:"activityType" yaml:"activityType,omitempty"`
	TaxRegime    string   `mapstructure:"taxRegime" yaml:"taxRegime,omitempty"`
	VATRegime    string   `mapstructure:"vatRegime" yaml:"vatRegime,omitempty"`
	SocialRegime string   `mapstructure:"socialRegime" yaml:"socialRegime,omitempty"`

	Threshold     float64 `mapstructure:"threshold" yaml:"threshold"`
	WarningRatio  float64 `mapstructure:"warningRatio" yaml:"warningRatio"`
	CriticalRatio float64 `mapstructure:"criticalRatio" yaml:"criticalRatio"`

	// Presentation fields, opaque to the engine.
	Title       string `mapstructure:"title" yaml:"title"`
	Message     string `mapstructure:"message" yaml:"message"`
	Description string `mapstructure:"description" yaml:"description,omitempty"`
	Link        string `mapstructure:"link" yaml:"link,omitempty"`
}

// Catalog maps each category to its ordered list of definitions. It is
// loaded once at process start and treated as immutable.
type Catalog map[Category][]Definition

// All returns every definition in fixed category order so evaluation and
// output are deterministic.
func (c Catalog) All() []Definition {
	var defs []Definition
	for _, category := range categoryOrder {
		defs = append(defs, c[category]...)
	}
	return defs
}

// catalogFile is the YAML shape of an external catalog.
type catalogFile struct {
	Thresholds map[string][]Definition `mapstructure:"thresholds"`
}

// LoadCatalog reads a catalog from a YAML file. Entries keep their file
// order within each category; unknown category keys are preserved as-is
// but never evaluated since All iterates known categories only.
func LoadCatalog(path string) (Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading catalog file, %s", err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unable to decode catalog into struct, %s", err)
	}

	catalog := make(Catalog, len(file.Thresholds))
	for key, defs := range file.Thresholds {
		// viper lowercases map keys; category names are upper case.
		catalog[Category(strings.ToUpper(key))] = defs
	}
	return catalog, nil
}

// DefaultCatalog returns the compiled-in French regulatory catalog.
// Threshold values are advisory approximations surfaced to the user with
// links to the authoritative sources.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryTVA: {
			{
				ID:            "tva-franchise-service",
				Category:      CategoryTVA,
				ActivityType:  "SERVICE",
				VATRegime:     "franchise",
				Threshold:     constants.TVAFranchiseServiceCeiling,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Plafond de franchise en base de TVA (services)",
				Message:       "Votre chiffre d'affaires approche du plafond de la franchise en base de TVA",
				Description:   "Au-delà du plafond, vous devrez facturer la TVA et passer à un régime réel.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F21746",
			},
			{
				ID:            "tva-franchise-commerce",
				Category:      CategoryTVA,
				ActivityType:  "COMMERCE",
				VATRegime:     "franchise",
				Threshold:     constants.TVAFranchiseCommerceCeiling,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Plafond de franchise en base de TVA (commerce)",
				Message:       "Votre chiffre d'affaires approche du plafond de la franchise en base de TVA",
				Description:   "Au-delà du plafond, vous devrez facturer la TVA et passer à un régime réel.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F21746",
			},
			{
				ID:            "tva-reel-simplifie",
				Category:      CategoryTVA,
				VATRegime:     "realSimplified",
				Threshold:     constants.VATRealSimplifiedCap,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Plafond du régime réel simplifié de TVA",
				Message:       "Votre chiffre d'affaires approche du plafond du régime réel simplifié",
				Description:   "Au-delà du plafond, le régime réel normal devient obligatoire.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F23566",
			},
		},
		CategoryMicro: {
			{
				ID:            "micro-bnc",
				Category:      CategoryMicro,
				ActivityType:  "SERVICE",
				Threshold:     constants.MicroBNCCeiling,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Plafond du régime micro-BNC",
				Message:       "Votre chiffre d'affaires approche du plafond micro-BNC",
				Description:   "Au-delà du plafond, le régime de la déclaration contrôlée s'applique.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F32105",
			},
			{
				ID:            "micro-bic",
				Category:      CategoryMicro,
				ActivityType:  "COMMERCE",
				Threshold:     constants.MicroBICCeiling,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Plafond du régime micro-BIC",
				Message:       "Votre chiffre d'affaires approche du plafond micro-BIC",
				Description:   "Au-delà du plafond, un régime réel d'imposition s'applique.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F32919",
			},
		},
		CategoryComptable: {
			{
				ID:            "commissaire-aux-comptes",
				Category:      CategoryComptable,
				Threshold:     constants.CommissaireBilanCeiling,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: constants.DefaultCriticalRatio,
				Title:         "Seuil de nomination d'un commissaire aux comptes",
				Message:       "Votre total de bilan approche du seuil de nomination obligatoire",
				Description:   "Au-delà des seuils légaux, la nomination d'un commissaire aux comptes devient obligatoire.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F31354",
			},
		},
		CategoryEmploi: {
			{
				ID:            "cse-11-salaries",
				Category:      CategoryEmploi,
				Threshold:     constants.CSECommitteeHeadcount,
				WarningRatio:  0.91,
				CriticalRatio: 1.0,
				Title:         "Mise en place du CSE",
				Message:       "Vous approchez du seuil de 11 salariés imposant un comité social et économique",
				Description:   "À partir de 11 salariés pendant 12 mois consécutifs, un CSE doit être mis en place.",
				Link:          "https://travail-emploi.gouv.fr/dialogue-social/le-comite-social-et-economique",
			},
			{
				ID:            "reglement-interieur",
				Category:      CategoryEmploi,
				Threshold:     constants.ReglementInterieurHeadcount,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: 1.0,
				Title:         "Règlement intérieur obligatoire",
				Message:       "Vous approchez du seuil de 20 salariés imposant un règlement intérieur",
				Description:   "À partir de 20 salariés, l'entreprise doit établir un règlement intérieur.",
				Link:          "https://entreprendre.service-public.fr/vosdroits/F1905",
			},
			{
				ID:            "cse-renforce-50-salaries",
				Category:      CategoryEmploi,
				Threshold:     constants.CSEReinforcedHeadcount,
				WarningRatio:  constants.DefaultWarningRatio,
				CriticalRatio: 1.0,
				Title:         "Attributions renforcées du CSE",
				Message:       "Vous approchez du seuil de 50 salariés aux obligations sociales renforcées",
				Description:   "À partir de 50 salariés, le CSE acquiert des attributions économiques étendues.",
				Link:          "https://travail-emploi.gouv.fr/dialogue-social/le-comite-social-et-economique",
			},
		},
	}
}
