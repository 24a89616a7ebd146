// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/CharlesKoulier/incorporation-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the incorporation engine.
type Configuration struct {
	Profile Profile       `yaml:"profile"`
	Catalog string        `yaml:"catalog,omitempty"` // optional threshold catalog path
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Profile is the raw company profile as written in the config file or
// submitted by the wizard. Enum fields stay plain strings here; the
// adapters package parses and coerces them into the typed CompanyProfile
// the engine consumes.
type Profile struct {
	CompanyType            string  `yaml:"companyType,omitempty" json:"companyType,omitempty"`
	Activity               string  `yaml:"activity,omitempty" json:"activity,omitempty"`
	PartnersCount          int     `yaml:"partnersCount" json:"partnersCount"`
	EstimatedTurnover      float64 `yaml:"estimatedTurnover" json:"estimatedTurnover"`
	ProjectedExpenses      float64 `yaml:"projectedExpenses,omitempty" json:"projectedExpenses,omitempty"`
	ProjectedSalary        float64 `yaml:"projectedSalary,omitempty" json:"projectedSalary,omitempty"`
	FundingSource          string  `yaml:"fundingSource,omitempty" json:"fundingSource,omitempty"`
	EmployeeHiring         string  `yaml:"employeeHiring,omitempty" json:"employeeHiring,omitempty"`
	PatrimoineProtection   string  `yaml:"patrimoineProtection,omitempty" json:"patrimoineProtection,omitempty"`
	HeadquartersType       string  `yaml:"headquartersType,omitempty" json:"headquartersType,omitempty"`
	EmployeesCount         float64 `yaml:"employeesCount,omitempty" json:"employeesCount,omitempty"`
	TotalBilan             float64 `yaml:"totalBilan,omitempty" json:"totalBilan,omitempty"`
	CurrentSituation       string  `yaml:"currentSituation,omitempty" json:"currentSituation,omitempty"`
	HasMajorityShareholder bool    `yaml:"hasMajorityShareholder,omitempty" json:"hasMajorityShareholder,omitempty"`

	// Regime selections once the wizard has reached those steps.
	TaxRegime    string `yaml:"taxRegime,omitempty" json:"taxRegime,omitempty"`
	VATRegime    string `yaml:"vatRegime,omitempty" json:"vatRegime,omitempty"`
	SocialRegime string `yaml:"socialRegime,omitempty" json:"socialRegime,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.ValidatePartnersCount(c.Profile.PartnersCount)...)
	warnings = append(warnings, validation.ValidateAmount("estimatedTurnover", c.Profile.EstimatedTurnover)...)
	warnings = append(warnings, validation.ValidateAmount("projectedExpenses", c.Profile.ProjectedExpenses)...)
	warnings = append(warnings, validation.ValidateAmount("projectedSalary", c.Profile.ProjectedSalary)...)
	warnings = append(warnings, validation.ValidateAmount("employeesCount", c.Profile.EmployeesCount)...)
	warnings = append(warnings, validation.ValidateAmount("totalBilan", c.Profile.TotalBilan)...)
	warnings = append(warnings, validation.ValidateSalaryAgainstTurnover(c.Profile.ProjectedSalary, c.Profile.EstimatedTurnover)...)
	warnings = append(warnings, validation.ValidateActivity(c.Profile.Activity)...)

	return warnings
}
