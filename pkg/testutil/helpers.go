// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/thresholds"
)

// FindAlert finds an alert by id in the alerts slice.
// Returns a pointer to the alert if found, nil otherwise.
func FindAlert(alerts []thresholds.Alert, id string) *thresholds.Alert {
	for i := range alerts {
		if alerts[i].ID == id {
			return &alerts[i]
		}
	}
	return nil
}

// BaselineProfile returns a valid single-founder service profile that
// tests can tweak per case.
func BaselineProfile() company.CompanyProfile {
	return company.CompanyProfile{
		ActivityCategory:     company.ActivityService,
		PartnersCount:        1,
		EstimatedTurnover:    30000,
		FundingSource:        company.FundingPersonal,
		EmployeeHiring:       company.HiringNone,
		PatrimoineProtection: company.ProtectionMedium,
		CurrentSituation:     company.SituationEmployed,
	}
}
