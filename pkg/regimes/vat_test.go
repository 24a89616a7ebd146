package regimes

import (
	"testing"

	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
)

func TestRecommendVATRegime(t *testing.T) {
	tests := []struct {
		name            string
		activity        company.ActivityCategory
		turnover        float64
		wantRegime      company.VATRegime
		wantPeriodicity company.Periodicity
		wantForced      bool
	}{
		{"Service at franchise cap", company.ActivityService, 34400, company.VATFranchise, company.PeriodicityMonthly, false},
		{"Service just above franchise cap", company.ActivityService, 34401, company.VATRealSimplified, company.PeriodicityQuarterly, false},
		{"Commerce below its cap", company.ActivityCommerce, 85000, company.VATFranchise, company.PeriodicityMonthly, false},
		{"Commerce at its cap", company.ActivityCommerce, 85800, company.VATFranchise, company.PeriodicityMonthly, false},
		{"Commerce above its cap", company.ActivityCommerce, 85801, company.VATRealSimplified, company.PeriodicityQuarterly, false},
		{"Artisanat uses service cap", company.ActivityArtisanat, 40000, company.VATRealSimplified, company.PeriodicityQuarterly, false},
		{"Liberal uses service cap", company.ActivityLiberal, 30000, company.VATFranchise, company.PeriodicityMonthly, false},
		{"Real simplified ceiling", company.ActivityService, 247000, company.VATRealSimplified, company.PeriodicityQuarterly, false},
		{"Real normal above ceiling", company.ActivityService, 247001, company.VATRealNormal, company.PeriodicityMonthly, true},
		{"Zero turnover", company.ActivityCommerce, 0, company.VATFranchise, company.PeriodicityMonthly, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := RecommendVATRegime(tt.activity, tt.turnover)
			if advice.Regime != tt.wantRegime {
				t.Errorf("regime = %v, expected %v", advice.Regime, tt.wantRegime)
			}
			if advice.Periodicity != tt.wantPeriodicity {
				t.Errorf("periodicity = %v, expected %v", advice.Periodicity, tt.wantPeriodicity)
			}
			if advice.Forced != tt.wantForced {
				t.Errorf("forced = %v, expected %v", advice.Forced, tt.wantForced)
			}
		})
	}
}

// Every turnover lands in exactly one of the three regimes.
func TestVATBracketExhaustiveness(t *testing.T) {
	activities := []company.ActivityCategory{
		company.ActivityService, company.ActivityCommerce,
		company.ActivityArtisanat, company.ActivityLiberal,
	}
	turnovers := []float64{0, 1, 34400, 34401, 85800, 85801, 100000, 247000, 247001, 1000000}

	for _, activity := range activities {
		for _, turnover := range turnovers {
			advice := RecommendVATRegime(activity, turnover)
			switch advice.Regime {
			case company.VATFranchise, company.VATRealSimplified, company.VATRealNormal:
			default:
				t.Errorf("RecommendVATRegime(%v, %v) returned unexpected regime %v", activity, turnover, advice.Regime)
			}
		}
	}
}
