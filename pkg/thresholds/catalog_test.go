package thresholds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	defs := catalog.All()
	if len(defs) == 0 {
		t.Fatal("expected a non-empty default catalog")
	}

	seen := make(map[string]bool)
	for _, def := range defs {
		if def.ID == "" {
			t.Error("catalog entry with empty id")
		}
		if seen[def.ID] {
			t.Errorf("duplicate catalog id %s", def.ID)
		}
		seen[def.ID] = true

		if def.Threshold <= 0 {
			t.Errorf("%s: non-positive threshold %v", def.ID, def.Threshold)
		}
		if def.WarningRatio <= 0 || def.WarningRatio > 1 {
			t.Errorf("%s: warning ratio %v outside (0,1]", def.ID, def.WarningRatio)
		}
		if def.CriticalRatio <= 0 || def.CriticalRatio > 1 {
			t.Errorf("%s: critical ratio %v outside (0,1]", def.ID, def.CriticalRatio)
		}
		if def.WarningRatio > def.CriticalRatio {
			t.Errorf("%s: warning ratio %v above critical ratio %v", def.ID, def.WarningRatio, def.CriticalRatio)
		}
		if def.Title == "" || def.Message == "" {
			t.Errorf("%s: missing presentation text", def.ID)
		}
	}
}

func TestCatalogAllOrder(t *testing.T) {
	catalog := Catalog{
		CategoryEmploi: {{ID: "emploi-1", Category: CategoryEmploi, Threshold: 11}},
		CategoryTVA:    {{ID: "tva-1", Category: CategoryTVA, Threshold: 100}},
		CategoryMicro:  {{ID: "micro-1", Category: CategoryMicro, Threshold: 200}},
	}

	defs := catalog.All()
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}
	// TVA before MICRO before EMPLOI regardless of map iteration order.
	if defs[0].ID != "tva-1" || defs[1].ID != "micro-1" || defs[2].ID != "emploi-1" {
		t.Errorf("unexpected order: %s, %s, %s", defs[0].ID, defs[1].ID, defs[2].ID)
	}
}

func TestLoadCatalog(t *testing.T) {
	content := `thresholds:
  TVA:
    - id: tva-test
      category: TVA
      vatRegime: franchise
      threshold: 36800
      warningRatio: 0.8
      criticalRatio: 0.95
      title: Plafond TVA
      message: Vous approchez du plafond
  EMPLOI:
    - id: cse-test
      category: EMPLOI
      threshold: 11
      warningRatio: 0.91
      criticalRatio: 1.0
      title: CSE
      message: Seuil de 11 salariés
`

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	if len(catalog[CategoryTVA]) != 1 {
		t.Fatalf("expected one TVA entry, got %d", len(catalog[CategoryTVA]))
	}
	tva := catalog[CategoryTVA][0]
	if tva.ID != "tva-test" || tva.Threshold != 36800 || tva.VATRegime != "franchise" {
		t.Errorf("unexpected TVA entry: %+v", tva)
	}

	if len(catalog[CategoryEmploi]) != 1 {
		t.Fatalf("expected one EMPLOI entry, got %d", len(catalog[CategoryEmploi]))
	}
	if catalog[CategoryEmploi][0].WarningRatio != 0.91 {
		t.Errorf("warning ratio = %v, expected 0.91", catalog[CategoryEmploi][0].WarningRatio)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing catalog file")
	}
}
