// Package output provides utilities for formatting and displaying engine
// results.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/CharlesKoulier/incorporation-engine/internal/engine"
	"github.com/CharlesKoulier/incorporation-engine/pkg/simulator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Envelope is the machine-readable result shape shared by the CLI JSON
// output and the HTTP API.
type Envelope struct {
	Recommendation engine.Recommendation    `json:"recommendation"`
	Fallback       bool                     `json:"fallback,omitempty"`
	FallbackReason string                   `json:"fallbackReason,omitempty"`
	Taxes          *simulator.TaxResult     `json:"taxes,omitempty"`
	Charges        *simulator.ChargesResult `json:"charges,omitempty"`
}

// NewEnvelope assembles the envelope from a build result and optional
// simulation results.
func NewEnvelope(result engine.Result, taxes *simulator.TaxResult, charges *simulator.ChargesResult) Envelope {
	return Envelope{
		Recommendation: result.Recommendation,
		Fallback:       result.Fallback,
		FallbackReason: result.FallbackReason,
		Taxes:          taxes,
		Charges:        charges,
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result engine.Result, taxes *simulator.TaxResult, charges *simulator.ChargesResult) {
	p := message.NewPrinter(language.French)
	rec := result.Recommendation

	fmt.Printf("--- Recommandation ---\n")
	if result.Fallback {
		fmt.Printf("!! %s (%s)\n", engine.FallbackExplanation, result.FallbackReason)
	}
	fmt.Printf("Forme juridique   : %s (%d associé(s))\n", rec.CompanyForm, rec.Partners)
	fmt.Printf("Activité          : %s\n", rec.Activity)
	fmt.Printf("Domiciliation     : %s\n", rec.Domiciliation.Recommended)
	for _, reason := range rec.Domiciliation.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
	fmt.Printf("Régime fiscal     : %s%s — %s\n", rec.Fiscal.Tax.Regime, forcedMark(rec.Fiscal.Tax.Forced), rec.Fiscal.Tax.Explanation)
	fmt.Printf("Régime de TVA     : %s (%s)%s — %s\n", rec.Fiscal.VAT.Regime, rec.Fiscal.VAT.Periodicity, forcedMark(rec.Fiscal.VAT.Forced), rec.Fiscal.VAT.Explanation)
	fmt.Printf("Régime social     : %s%s — %s\n", rec.Fiscal.Social.Regime, forcedMark(rec.Fiscal.Social.Forced), rec.Fiscal.Social.Explanation)
	fmt.Printf("Patrimoine        : %s\n", rec.PatrimoineProtection)

	if len(rec.KeyBenefits) > 0 {
		fmt.Printf("\nAtouts :\n")
		for _, benefit := range rec.KeyBenefits {
			fmt.Printf("  - %s\n", benefit)
		}
	}
	if len(rec.AdditionalServices) > 0 {
		fmt.Printf("\nServices complémentaires :\n")
		for _, service := range rec.AdditionalServices {
			fmt.Printf("  - %s\n", service)
		}
	}

	if len(rec.Alerts) > 0 {
		fmt.Printf("\nSeuils réglementaires :\n")
		for _, alert := range rec.Alerts {
			_, _ = p.Printf("  [%s] %s (%.0f %% du seuil de %.0f)\n",
				strings.ToUpper(string(alert.Severity)), alert.Title, alert.Ratio*100, alert.Threshold)
		}
	}

	if taxes != nil || charges != nil {
		fmt.Printf("\n--- Simulation annuelle ---\n")
	}
	if taxes != nil {
		_, _ = p.Printf("Impôts estimés    : %.0f €\n", taxes.Total)
		_, _ = p.Printf("  IS %.0f / IR %.0f / CFE %.0f / CVAE %.0f / apprentissage %.0f / formation %.0f\n",
			taxes.Details.IS, taxes.Details.IR, taxes.Details.CFE, taxes.Details.CVAE,
			taxes.Details.Apprenticeship, taxes.Details.Training)
	}
	if charges != nil {
		_, _ = p.Printf("Charges sociales  : %.0f €\n", charges.Total)
		_, _ = p.Printf("  maladie %.0f / retraite %.0f / famille %.0f / CSG-CRDS %.0f / formation %.0f / autres %.0f\n",
			charges.Details.Health, charges.Details.Retirement, charges.Details.Family,
			charges.Details.CSGCRDS, charges.Details.Training, charges.Details.Other)
	}
}

// CsvFormat outputs the threshold alerts in comma-separated value format.
func CsvFormat(result engine.Result) {
	fmt.Printf(`"id","severity","title","ratio","threshold"`)
	fmt.Printf("\n")
	for _, alert := range result.Recommendation.Alerts {
		fmt.Printf(`"%s","%s","%s","%.4f","%.2f"`,
			alert.ID, alert.Severity, alert.Title, alert.Ratio, alert.Threshold)
		fmt.Printf("\n")
	}
}

// JSONFormat outputs the full envelope as indented JSON on stdout.
func JSONFormat(envelope Envelope) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelope)
}

func forcedMark(forced bool) string {
	if forced {
		return " (obligatoire)"
	}
	return ""
}
