package personality

import (
	"bytes"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"

	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
	"github.com/DaRainFlavor/mbti-quiz/pkg/header"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	reg, err := loadDefaultRegistry()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}
	if reg.Len() != 16 {
		t.Errorf("expected 16 types, got %d", reg.Len())
	}
	if Default() != reg {
		t.Error("Default() should return the cached registry")
	}
}

func TestDecodeCatalogRoundTrip(t *testing.T) {
	doc := catalogFile{
		APIVersion: header.APIVersion,
		Kind:       header.KindPersonalityCatalog,
		Types:      All(),
	}
	content, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	reg, err := decodeCatalog(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("decodeCatalog: %v", err)
	}
	got, ok := reg.Lookup("esfp")
	if !ok || got.Color != "#BC243C" {
		t.Errorf("unexpected ESFP record: %+v", got)
	}
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not yaml",
			content: "types: [",
		},
		{
			name: "wrong api version",
			content: `apiVersion: v0
kind: PersonalityCatalog
types: []
`,
		},
		{
			name: "wrong kind",
			content: `apiVersion: mbti.darainflavor.io/v1
kind: Recipe
types: []
`,
		},
		{
			name: "kind of another document",
			content: `apiVersion: mbti.darainflavor.io/v1
kind: PersonalityType
types: []
`,
		},
		{
			name: "unknown field",
			content: `apiVersion: mbti.darainflavor.io/v1
kind: PersonalityCatalog
types:
  - code: INTJ
    name: Architect
    rank: 1
`,
		},
		{
			name: "empty types",
			content: `apiVersion: mbti.darainflavor.io/v1
kind: PersonalityCatalog
types: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCatalog(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := cnserrors.CodeOf(err); code != cnserrors.ErrCodeInvalidRequest {
				t.Errorf("expected %s, got %s (%v)", cnserrors.ErrCodeInvalidRequest, code, err)
			}
		})
	}
}

func loadSampleCount(t *testing.T) uint64 {
	t.Helper()
	var m dto.Metric
	if err := registryLoadDuration.Write(&m); err != nil {
		t.Fatalf("reading load histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestLoadCatalogObservesOnlySuccess(t *testing.T) {
	content, err := catalogFS.ReadFile(catalogPath)
	if err != nil {
		t.Fatalf("read embedded catalog: %v", err)
	}

	before := loadSampleCount(t)
	if _, err := loadCatalog([]byte("kind: Recipe\n")); err == nil {
		t.Fatal("expected error for invalid catalog")
	}
	if got := loadSampleCount(t); got != before {
		t.Errorf("failed load was observed: samples %d -> %d", before, got)
	}

	reg, err := loadCatalog(content)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if reg.Len() != 16 {
		t.Errorf("expected 16 types, got %d", reg.Len())
	}
	if got := loadSampleCount(t); got != before+1 {
		t.Errorf("successful load not observed once: samples %d -> %d", before, got)
	}
}
