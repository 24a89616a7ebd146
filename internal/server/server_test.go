package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CharlesKoulier/incorporation-engine/pkg/constants"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func postJSON(t *testing.T, handler http.Handler, path string, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleRecommendationSuccess(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	rr := postJSON(t, handler, "/api/recommendation", `{
		"partnersCount": 1,
		"activity": "SERVICE",
		"estimatedTurnover": 45000,
		"projectedSalary": 24000,
		"patrimoineProtection": "high"
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp recommendationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Recommendation.CompanyForm != "SASU" {
		t.Errorf("companyForm = %v, expected SASU", resp.Recommendation.CompanyForm)
	}
	if resp.Fallback {
		t.Errorf("unexpected fallback: %s", resp.FallbackReason)
	}
	if resp.Taxes == nil || resp.Charges == nil {
		t.Fatal("expected simulation results in the response")
	}
	if resp.Duration == "" {
		t.Error("expected duration in response")
	}
}

func TestHandleRecommendationFallback(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	rr := postJSON(t, handler, "/api/recommendation", `{"partnersCount": 0}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp recommendationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Fallback {
		t.Error("expected a fallback result for an invalid profile")
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected validation warnings")
	}
}

func TestHandleRecommendationBadPayload(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	rr := postJSON(t, handler, "/api/recommendation", `{"partnersCount": "three"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	rr = postJSON(t, handler, "/api/recommendation", `{"unknownField": 1}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", rr.Code)
	}
}

func TestHandleRecommendationMethodNotAllowed(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/recommendation", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestHandleSimulation(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	rr := postJSON(t, handler, "/api/simulation", `{
		"partnersCount": 1,
		"companyType": "SAS",
		"estimatedTurnover": 100000,
		"taxRegime": "IS"
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp simulationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Taxes.Details.IS != 20750 {
		t.Errorf("IS = %v, expected 20750", resp.Taxes.Details.IS)
	}
	if resp.Taxes.Details.CFE != 500 {
		t.Errorf("CFE = %v, expected 500", resp.Taxes.Details.CFE)
	}
}

func TestHandleCatalog(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("content type = %q, expected application/yaml", ct)
	}

	var decoded map[string]map[string][]map[string]interface{}
	if err := yaml.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode catalog YAML: %v", err)
	}
	if len(decoded["thresholds"]) == 0 {
		t.Fatal("expected threshold categories in the export")
	}
}

func TestHandleVersion(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, constants.DefaultMaxBodySizeBytes, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "1.2.3") {
		t.Errorf("expected version in body, got %s", rr.Body.String())
	}
}

func TestHandleVersionDefaultsToDev(t *testing.T) {
	handler := NewHandler(zap.NewNop(), nil, 0, "  ")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !strings.Contains(rr.Body.String(), "dev") {
		t.Errorf("expected dev version, got %s", rr.Body.String())
	}
}
