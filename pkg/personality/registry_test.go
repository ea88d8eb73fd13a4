package personality

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	cnserrors "github.com/DaRainFlavor/mbti-quiz/pkg/errors"
)

// catalogOrder is the display order of data/types.yaml.
var catalogOrder = []Code{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

func TestLookupCanonicalCodes(t *testing.T) {
	for _, code := range CanonicalCodes() {
		t.Run(string(code), func(t *testing.T) {
			got, ok := Lookup(string(code))
			require.True(t, ok)
			assert.Equal(t, code, got.Code)
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	alternate := func(s string) string {
		var b strings.Builder
		for i, r := range s {
			if i%2 == 0 {
				b.WriteString(strings.ToLower(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	}

	for _, code := range CanonicalCodes() {
		want, ok := Lookup(string(code))
		require.True(t, ok)

		for _, variant := range []string{strings.ToLower(string(code)), alternate(string(code))} {
			got, ok := Lookup(variant)
			require.True(t, ok, "variant %q", variant)
			assert.True(t, want.Equal(got), "variant %q", variant)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"non-canonical", "ZZZZ"},
		{"leading space", " INTJ"},
		{"trailing space", "INTJ "},
		{"too short", "INT"},
		{"too long", "INTJS"},
		{"assertive suffix", "INTJ-A"},
		{"swapped letters", "NITJ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.code)
			assert.False(t, ok)
			assert.Equal(t, Type{}, got)
		})
	}
}

func TestLookupUnicodeUpper(t *testing.T) {
	// U+0131 LATIN SMALL LETTER DOTLESS I upper-cases to "I".
	got, ok := Lookup("ıntj")
	require.True(t, ok)
	assert.Equal(t, Code("INTJ"), got.Code)
}

func TestLookupScenarios(t *testing.T) {
	intj, ok := Lookup("intj")
	require.True(t, ok)
	assert.Equal(t, "Architect", intj.Name)
	assert.Equal(t, "The Mastermind", intj.Nickname)
	assert.Contains(t, intj.Traits, "Strategic")

	esfp, ok := Lookup("esfp")
	require.True(t, ok)
	assert.Equal(t, "Entertainer", esfp.Name)
	assert.Equal(t, "#BC243C", esfp.Color)
}

func TestLookupIdempotent(t *testing.T) {
	first, ok := Lookup("ENFP")
	require.True(t, ok)
	for range 5 {
		again, ok := Lookup("ENFP")
		require.True(t, ok)
		assert.True(t, first.Equal(again))
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	got, ok := Lookup("INTJ")
	require.True(t, ok)
	got.Name = "changed"
	got.Traits[0] = "changed"

	again, _ := Lookup("INTJ")
	assert.Equal(t, "Architect", again.Name)
	assert.Equal(t, "Strategic", again.Traits[0])
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 16)

	codes := make([]Code, 0, len(all))
	for _, ty := range all {
		codes = append(codes, ty.Code)
	}
	assert.Equal(t, catalogOrder, codes)

	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	assert.Equal(t, CanonicalCodes(), sorted)
}

func TestAllCopyIndependence(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	first[0].Strengths[0] = "mutated"
	first[1] = Type{}
	_ = append(first[:2], first[3:]...)

	second := All()
	require.Len(t, second, 16)
	assert.Equal(t, "Architect", second[0].Name)
	assert.Equal(t, "High standards", second[0].Strengths[0])
	assert.Equal(t, Code("INTP"), second[1].Code)
	assert.Equal(t, Code("ENTJ"), second[2].Code)
}

func TestAllStableOrder(t *testing.T) {
	first := All()
	for range 3 {
		again := All()
		for i := range first {
			assert.True(t, first[i].Equal(again[i]), "index %d", i)
		}
	}
}

func TestAllFieldsNonEmpty(t *testing.T) {
	for _, ty := range All() {
		assert.NotEmpty(t, ty.Name, ty.Code)
		assert.NotEmpty(t, ty.Nickname, ty.Code)
		assert.NotEmpty(t, ty.Description, ty.Code)
		assert.NotEmpty(t, ty.Traits, ty.Code)
		assert.NotEmpty(t, ty.Strengths, ty.Code)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, ty.Color, ty.Code)
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Equal(t, catalogOrder, codes)

	codes[0] = "XXXX"
	assert.Equal(t, Code("INTJ"), Codes()[0])
	assert.Equal(t, 16, Default().Len())
}

func TestConcurrentAccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	reg := Default()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := catalogOrder[i%len(catalogOrder)]
			for range 100 {
				got, ok := reg.Lookup(strings.ToLower(string(code)))
				if !ok || got.Code != code {
					t.Errorf("lookup %s failed", code)
					return
				}
				if all := reg.All(); len(all) != 16 {
					t.Errorf("All() returned %d types", len(all))
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestLookupMetrics(t *testing.T) {
	hits := testutil.ToFloat64(registryLookups.WithLabelValues(lookupResultHit))
	misses := testutil.ToFloat64(registryLookups.WithLabelValues(lookupResultMiss))
	enums := testutil.ToFloat64(registryEnumerations)

	Lookup("INTJ")
	Lookup("nope")
	All()

	assert.Equal(t, hits+1, testutil.ToFloat64(registryLookups.WithLabelValues(lookupResultHit)))
	assert.Equal(t, misses+1, testutil.ToFloat64(registryLookups.WithLabelValues(lookupResultMiss)))
	assert.Equal(t, enums+1, testutil.ToFloat64(registryEnumerations))
}

func TestNewRegistryValidation(t *testing.T) {
	valid := All()

	tests := []struct {
		name   string
		mutate func([]Type) []Type
	}{
		{"too few", func(ts []Type) []Type { return ts[:15] }},
		{"too many", func(ts []Type) []Type { return append(ts, ts[0]) }},
		{"duplicate code", func(ts []Type) []Type { ts[1].Code = ts[0].Code; return ts }},
		{"lowercase code", func(ts []Type) []Type { ts[0].Code = "intj"; return ts }},
		{"unknown code", func(ts []Type) []Type { ts[0].Code = "ZZZZ"; return ts }},
		{"empty name", func(ts []Type) []Type { ts[3].Name = ""; return ts }},
		{"empty nickname", func(ts []Type) []Type { ts[3].Nickname = ""; return ts }},
		{"empty description", func(ts []Type) []Type { ts[3].Description = ""; return ts }},
		{"no traits", func(ts []Type) []Type { ts[4].Traits = nil; return ts }},
		{"blank trait", func(ts []Type) []Type { ts[4].Traits = []string{"Warm", ""}; return ts }},
		{"no strengths", func(ts []Type) []Type { ts[5].Strengths = []string{}; return ts }},
		{"bad color", func(ts []Type) []Type { ts[6].Color = "purple"; return ts }},
		{"short color", func(ts []Type) []Type { ts[6].Color = "#FFF"; return ts }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Type, len(valid))
			for i, v := range valid {
				records[i] = v.Clone()
			}
			_, err := newRegistry(tt.mutate(records))
			require.Error(t, err)
			assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
		})
	}
}

func TestNewRegistryOwnsRecords(t *testing.T) {
	records := All()
	reg, err := newRegistry(records)
	require.NoError(t, err)

	records[0].Traits[0] = "changed"
	got, ok := reg.Lookup("INTJ")
	require.True(t, ok)
	assert.Equal(t, "Strategic", got.Traits[0])
}
