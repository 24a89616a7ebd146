package simulator

import (
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/CharlesKoulier/incorporation-engine/pkg/mathutil"
)

// ChargeDetails itemizes the estimated social contributions, each rounded
// to the euro.
type ChargeDetails struct {
	Health     float64 `json:"health"`
	Retirement float64 `json:"retirement"`
	Family     float64 `json:"family"`
	CSGCRDS    float64 `json:"csgCrds"`
	Training   float64 `json:"training"`
	Other      float64 `json:"other"`
}

// ChargesResult is the simulator output; Total is the sum of the rounded
// detail components.
type ChargesResult struct {
	Total   float64       `json:"total"`
	Details ChargeDetails `json:"details"`
}

// CalculateSocialCharges estimates the officer's annual social
// contributions on the declared salary. The TNS professional-training
// contribution is capped at a fixed amount; the assimilé-salarié table is
// markedly heavier, and an unknown regime falls to an intermediate table.
func CalculateSocialCharges(salary float64, socialRegime company.SocialRegime) ChargesResult {
	var details ChargeDetails

	switch socialRegime {
	case company.SocialTNS:
		details = ChargeDetails{
			Health:     mathutil.RoundEuro(salary * constants.TNSHealthRate),
			Retirement: mathutil.RoundEuro(salary * constants.TNSRetirementRate),
			Family:     mathutil.RoundEuro(salary * constants.TNSFamilyRate),
			CSGCRDS:    mathutil.RoundEuro(salary * constants.TNSCSGCRDSRate),
			Training:   mathutil.RoundEuro(mathutil.Min(salary*constants.TNSTrainingRate, constants.TNSTrainingCap)),
			Other:      mathutil.RoundEuro(salary * constants.TNSOtherRate),
		}
	case company.SocialAssimile:
		details = ChargeDetails{
			Health:     mathutil.RoundEuro(salary * constants.AssimileHealthRate),
			Retirement: mathutil.RoundEuro(salary * constants.AssimileRetirementRate),
			Family:     mathutil.RoundEuro(salary * constants.AssimileFamilyRate),
			CSGCRDS:    mathutil.RoundEuro(salary * constants.AssimileCSGCRDSRate),
			Training:   mathutil.RoundEuro(salary * constants.AssimileTrainingRate),
			Other:      mathutil.RoundEuro(salary * constants.AssimileOtherRate),
		}
	default:
		details = ChargeDetails{
			Health:     mathutil.RoundEuro(salary * constants.DefaultHealthRate),
			Retirement: mathutil.RoundEuro(salary * constants.DefaultRetirementRate),
			Family:     mathutil.RoundEuro(salary * constants.DefaultFamilyRate),
			CSGCRDS:    mathutil.RoundEuro(salary * constants.DefaultCSGCRDSRate),
			Training:   mathutil.RoundEuro(salary * constants.DefaultTrainingRate),
			Other:      mathutil.RoundEuro(salary * constants.DefaultOtherRate),
		}
	}

	total := details.Health + details.Retirement + details.Family + details.CSGCRDS + details.Training + details.Other
	return ChargesResult{Total: total, Details: details}
}
