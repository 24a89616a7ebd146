// Package server exposes the incorporation engine over a JSON HTTP API
// consumed by the wizard frontend.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CharlesKoulier/incorporation-engine/internal/config"
	"github.com/CharlesKoulier/incorporation-engine/internal/engine"
	"github.com/CharlesKoulier/incorporation-engine/pkg/adapters"
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"github.com/CharlesKoulier/incorporation-engine/pkg/output"
	"github.com/CharlesKoulier/incorporation-engine/pkg/simulator"
	"github.com/CharlesKoulier/incorporation-engine/pkg/thresholds"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	builder     *engine.Builder
	catalog     thresholds.Catalog
}

// NewHandler constructs the HTTP handler that serves the engine API.
func NewHandler(logger *zap.Logger, catalog thresholds.Catalog, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = thresholds.DefaultCatalog()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		builder:     engine.NewBuilder(logger, catalog),
		catalog:     catalog,
	}

	mux := http.NewServeMux()

	// Full recommendation for a submitted profile
	mux.HandleFunc("/api/recommendation", h.handleRecommendation)

	// Tax and social-charge simulation only
	mux.HandleFunc("/api/simulation", h.handleSimulation)

	// Active threshold catalog as YAML
	mux.HandleFunc("/api/catalog", h.handleCatalog)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type recommendationResponse struct {
	output.Envelope
	Warnings []string `json:"warnings,omitempty"`
	Duration string   `json:"duration"`
}

type simulationResponse struct {
	Taxes    simulator.TaxResult     `json:"taxes"`
	Charges  simulator.ChargesResult `json:"charges"`
	Duration string                  `json:"duration"`
}

func (h *handler) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	start := time.Now()

	profile, conf, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	result := h.builder.Build(profile)

	taxRegime := profile.TaxRegime
	if taxRegime == "" {
		taxRegime = result.Recommendation.Fiscal.Tax.Regime
	}
	socialRegime := profile.SocialRegime
	if socialRegime == "" {
		socialRegime = result.Recommendation.Fiscal.Social.Regime
	}

	taxes := simulator.CalculateTaxes(profile.EstimatedTurnover, profile.ProjectedExpenses,
		profile.ProjectedSalary, result.Recommendation.CompanyForm, taxRegime)
	charges := simulator.CalculateSocialCharges(profile.ProjectedSalary, socialRegime)

	resp := recommendationResponse{
		Envelope: output.NewEnvelope(result, &taxes, &charges),
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(start).String(),
	}

	h.logger.Debug("Recommendation served",
		zap.String("op", "server.handleRecommendation"),
		zap.Bool("fallback", result.Fallback),
		zap.String("duration", resp.Duration),
	)

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r)
		return
	}

	start := time.Now()

	profile, _, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	taxes := simulator.CalculateTaxes(profile.EstimatedTurnover, profile.ProjectedExpenses,
		profile.ProjectedSalary, profile.CompanyType, profile.TaxRegime)
	charges := simulator.CalculateSocialCharges(profile.ProjectedSalary, profile.SocialRegime)

	h.writeJSON(w, http.StatusOK, simulationResponse{
		Taxes:    taxes,
		Charges:  charges,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	grouped := make(map[string][]thresholds.Definition, len(h.catalog))
	for category, defs := range h.catalog {
		grouped[string(category)] = defs
	}

	data, err := yaml.Marshal(map[string]interface{}{"thresholds": grouped})
	if err != nil {
		h.logger.Error("Failed to marshal catalog",
			zap.String("op", "server.handleCatalog"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "failed to serialize catalog")
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// decodeProfile reads a raw profile from the request body and adapts it
// into the typed profile. The raw config is returned too so callers can
// attach validation warnings.
func (h *handler) decodeProfile(w http.ResponseWriter, r *http.Request) (profile company.CompanyProfile, conf *config.Configuration, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var raw config.Profile
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		h.logger.Warn("Failed to decode profile",
			zap.String("op", "server.decodeProfile"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid profile payload: %v", err))
		return company.CompanyProfile{}, nil, false
	}

	return adapters.ProfileToCompanyProfile(raw), &config.Configuration{Profile: raw}, true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Method not allowed",
		zap.String("op", "server.methodNotAllowed"),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
