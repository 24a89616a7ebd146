// Package constants provides shared constants for the incorporation engine.
package constants

// Currency handling
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance under which an amount is considered zero
	CurrencyTolerance = 0.001
)

// VAT regime selection thresholds (annual turnover, pre-tax euros). These
// drive the regime recommendation; the monitoring ceilings used for alerting
// live below under "Regulatory threshold catalog values".
const (
	// VATFranchiseCapService is the franchise en base ceiling for service
	// and liberal activities
	VATFranchiseCapService = 34400.0

	// VATFranchiseCapCommerce is the franchise en base ceiling for
	// commerce activities
	VATFranchiseCapCommerce = 85800.0

	// VATRealSimplifiedCap is the ceiling of the régime réel simplifié;
	// above it the réel normal regime is a legal obligation
	VATRealSimplifiedCap = 247000.0
)

// Tax regime selection thresholds
const (
	// ISAdviceTurnover is the turnover above which IS is recommended over
	// IR for forms where the choice exists
	ISAdviceTurnover = 80000.0

	// HighTurnover steers the legal-form recommendation toward the SAS
	// family and triggers the high-revenue benefit text
	HighTurnover = 85000.0
)

// Corporate tax (IS) schedule
const (
	// ISReducedRate applies to profit up to ISReducedBracketCap
	ISReducedRate = 0.15

	// ISReducedBracketCap is the upper bound of the reduced IS bracket
	ISReducedBracketCap = 42500.0

	// ISStandardRate applies to profit above ISReducedBracketCap
	ISStandardRate = 0.25

	// IRFlatRate is the flat personal-income-tax approximation applied to
	// gross profit under the IR regime
	IRFlatRate = 0.20
)

// Local business taxes
const (
	// CFERate is applied to turnover to approximate the CFE
	CFERate = 0.005

	// CFEMinimum and CFEMaximum bound the CFE approximation
	CFEMinimum = 200.0
	CFEMaximum = 1000.0

	// CVAERate is applied to turnover above CVAETurnoverFloor
	CVAERate = 0.005

	// CVAETurnoverFloor is the turnover below which no CVAE is due
	CVAETurnoverFloor = 500000.0
)

// Payroll-based levies
const (
	// ApprenticeshipRate is the taxe d'apprentissage approximation
	ApprenticeshipRate = 0.0068

	// TrainingLevyRate is the formation professionnelle approximation
	TrainingLevyRate = 0.01
)

// Social charge rate tables. Rates are documented approximations and are
// reproduced verbatim from the advisory source data.
const (
	// TNS (travailleur non salarié)
	TNSHealthRate     = 0.06
	TNSRetirementRate = 0.17
	TNSFamilyRate     = 0.03
	TNSCSGCRDSRate    = 0.095
	TNSTrainingRate   = 0.001
	TNSTrainingCap    = 400.0
	TNSOtherRate      = 0.04

	// Assimilé-salarié
	AssimileHealthRate     = 0.13
	AssimileRetirementRate = 0.20
	AssimileFamilyRate     = 0.035
	AssimileCSGCRDSRate    = 0.095
	AssimileTrainingRate   = 0.015
	AssimileOtherRate      = 0.14

	// Fallback when the social regime is unknown
	DefaultHealthRate     = 0.10
	DefaultRetirementRate = 0.15
	DefaultFamilyRate     = 0.03
	DefaultCSGCRDSRate    = 0.095
	DefaultTrainingRate   = 0.01
	DefaultOtherRate      = 0.065
)

// Regulatory threshold catalog values. Monitoring ceilings for the default
// catalog; some are more recent than the regime-selection caps above, which
// stay untouched for recommendation parity.
const (
	TVAFranchiseServiceCeiling  = 36800.0
	TVAFranchiseCommerceCeiling = 91900.0

	MicroBNCCeiling = 77700.0
	MicroBICCeiling = 188700.0

	CSECommitteeHeadcount       = 11.0
	ReglementInterieurHeadcount = 20.0
	CSEReinforcedHeadcount      = 50.0

	CommissaireBilanCeiling = 4000000.0

	// DefaultWarningRatio and DefaultCriticalRatio band alert severity
	// when a catalog entry does not override them
	DefaultWarningRatio  = 0.80
	DefaultCriticalRatio = 0.95
)

// Additional-service suggestion thresholds
const (
	// AccountingServiceTurnover is the turnover above which an accounting
	// service is suggested
	AccountingServiceTurnover = 35000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// profile submissions (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
