package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/CharlesKoulier/incorporation-engine/internal/engine"
	"github.com/CharlesKoulier/incorporation-engine/pkg/company"
	"github.com/CharlesKoulier/incorporation-engine/pkg/simulator"
	"github.com/CharlesKoulier/incorporation-engine/pkg/thresholds"
	"go.uber.org/zap"
)

func buildResult(t *testing.T) engine.Result {
	t.Helper()
	builder := engine.NewBuilder(zap.NewNop(), nil)
	return builder.Build(company.CompanyProfile{
		ActivityCategory:     company.ActivityService,
		PartnersCount:        1,
		EstimatedTurnover:    45000,
		PatrimoineProtection: company.ProtectionHigh,
	})
}

func captureStdout(t *testing.T, run func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	run()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	result := buildResult(t)
	taxes := simulator.CalculateTaxes(45000, 0, 0, company.LegalFormSASU, company.TaxRegimeIS)
	charges := simulator.CalculateSocialCharges(24000, company.SocialTNS)

	out := captureStdout(t, func() {
		PrettyFormat(result, &taxes, &charges)
	})

	if !strings.Contains(out, "--- Recommandation ---") {
		t.Error("PrettyFormat missing recommendation header")
	}
	if !strings.Contains(out, "SASU") {
		t.Error("PrettyFormat missing the recommended form")
	}
	if !strings.Contains(out, "--- Simulation annuelle ---") {
		t.Error("PrettyFormat missing simulation section")
	}
	if strings.Contains(out, "Régime par défaut") {
		t.Error("PrettyFormat should not show the fallback banner for a computed result")
	}
}

func TestPrettyFormatFallbackBanner(t *testing.T) {
	builder := engine.NewBuilder(zap.NewNop(), nil)
	result := builder.Build(company.CompanyProfile{PartnersCount: 0})

	out := captureStdout(t, func() {
		PrettyFormat(result, nil, nil)
	})

	if !strings.Contains(out, engine.FallbackExplanation) {
		t.Error("expected the fallback explanation to be surfaced verbatim")
	}
}

func TestCsvFormat(t *testing.T) {
	result := buildResult(t)
	result.Recommendation.Alerts = []thresholds.Alert{
		{ID: "cse-11-salaries", Severity: thresholds.SeverityCritical, Title: "CSE", Ratio: 1.0, Threshold: 11},
	}

	out := captureStdout(t, func() {
		CsvFormat(result)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], `"id","severity"`) {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "cse-11-salaries") || !strings.Contains(lines[1], "critical") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestJSONFormat(t *testing.T) {
	result := buildResult(t)
	taxes := simulator.CalculateTaxes(45000, 0, 0, company.LegalFormSASU, company.TaxRegimeIS)
	envelope := NewEnvelope(result, &taxes, nil)

	out := captureStdout(t, func() {
		if err := JSONFormat(envelope); err != nil {
			t.Errorf("JSONFormat returned error: %v", err)
		}
	})

	var decoded Envelope
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if decoded.Recommendation.CompanyForm != company.LegalFormSASU {
		t.Errorf("companyForm = %v, expected SASU", decoded.Recommendation.CompanyForm)
	}
	if decoded.Taxes == nil {
		t.Fatal("expected taxes in the envelope")
	}
	if decoded.Charges != nil {
		t.Error("expected charges to be omitted")
	}
}
