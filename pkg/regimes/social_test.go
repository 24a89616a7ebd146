package regimes

import (
	"testing"

	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
)

func TestRecommendSocialRegime(t *testing.T) {
	tests := []struct {
		name       string
		form       company.LegalForm
		majority   bool
		wantRegime company.SocialRegime
		wantForced bool
	}{
		{"Majority SASU president", company.LegalFormSASU, true, company.SocialAssimile, true},
		{"Majority SAS president", company.LegalFormSAS, true, company.SocialAssimile, true},
		{"Majority SA officer", company.LegalFormSA, true, company.SocialAssimile, true},
		{"Minority SAS president", company.LegalFormSAS, false, company.SocialTNS, false},
		{"EURL manager", company.LegalFormEURL, true, company.SocialTNS, false},
		{"SARL manager", company.LegalFormSARL, false, company.SocialTNS, false},
		{"Unknown form falls to TNS", company.LegalFormOther, true, company.SocialTNS, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := RecommendSocialRegime(tt.form, tt.majority)
			if advice.Regime != tt.wantRegime {
				t.Errorf("regime = %v, expected %v", advice.Regime, tt.wantRegime)
			}
			if advice.Forced != tt.wantForced {
				t.Errorf("forced = %v, expected %v", advice.Forced, tt.wantForced)
			}
			if advice.Explanation == "" {
				t.Error("expected an explanation")
			}
		})
	}
}
