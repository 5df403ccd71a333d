package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7-ucum/ucum-go/internal/pathutil"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.BaseUnits, 7)
	assert.Len(t, c.Prefixes, 24)
	assert.NotEmpty(t, c.Units)

	var foundMeter, foundKilo, foundNewton bool
	for _, b := range c.BaseUnits {
		if b.Code == "m" {
			foundMeter = true
			assert.Equal(t, "Length", b.Dim)
		}
	}
	for _, p := range c.Prefixes {
		if p.Code == "k" {
			foundKilo = true
			assert.Equal(t, "1e3", p.Value)
		}
	}
	for _, u := range c.Units {
		if u.Code == "N" {
			foundNewton = true
			assert.Equal(t, "kg.m/s2", u.Value.Unit)
			assert.False(t, u.Value.IsSpecial())
		}
	}
	assert.True(t, foundMeter)
	assert.True(t, foundKilo)
	assert.True(t, foundNewton)
}

func TestDefaultSpecialUnits(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	special := map[string]string{
		"Cel":    "cel",
		"[degF]": "degf",
		"[pH]":   "ph",
		"Np":     "neper",
		"B":      "bel",
	}
	seen := make(map[string]bool)
	for _, u := range c.Units {
		fn, ok := special[u.Code]
		if !ok {
			continue
		}
		seen[u.Code] = true
		assert.True(t, u.Special, "unit %s should be marked special", u.Code)
		assert.True(t, u.Value.IsSpecial())
		assert.Equal(t, fn, u.Value.Function)
	}
	assert.Len(t, seen, len(special))
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/duplicate_code.json")
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate atom code")
}

func TestParseDuplicateCode(t *testing.T) {
	_, err := LoadFile("testdata/duplicate_code.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"m"`)
}

func TestParseMissingFactor(t *testing.T) {
	_, err := LoadFile("testdata/missing_factor.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no factor")
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pathutil.ErrInvalidCatalog)
}
