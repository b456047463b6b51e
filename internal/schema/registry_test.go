package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrder_ThirteenTables(t *testing.T) {
	order := LoadOrder()
	require.Len(t, order, 13)

	dims, facts := 0, 0
	for _, d := range order {
		switch d.Tier {
		case TierDimension:
			dims++
		case TierFact:
			facts++
		}
	}
	assert.Equal(t, 8, dims)
	assert.Equal(t, 5, facts)
}

func TestLoadOrder_DimensionsBeforeFacts(t *testing.T) {
	seenFact := false
	for _, d := range LoadOrder() {
		if d.Tier == TierFact {
			seenFact = true
		}
		if seenFact {
			assert.Equal(t, TierFact, d.Tier,
				"dimension %s listed after a fact table", d.Name)
		}
	}
}

func TestLoadOrder_UniqueNamesAndSurrogateKeyFirst(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range LoadOrder() {
		assert.False(t, seen[d.Name], "duplicate table %s", d.Name)
		seen[d.Name] = true
		require.NotEmpty(t, d.Columns, "table %s has no columns", d.Name)
		if d.Tier == TierDimension {
			assert.Contains(t, d.Columns[0], "_sk",
				"dimension %s should lead with its surrogate key", d.Name)
		}
	}
}

func TestInputs_SixDatasetsWithNaturalKeys(t *testing.T) {
	inputs := Inputs()
	require.Len(t, inputs, 6)
	for _, in := range inputs {
		assert.NotEmpty(t, in.Filename)
		assert.NotEmpty(t, in.Required, "dataset %s must require its natural key", in.Name)
	}
}

func TestDescribe(t *testing.T) {
	d, ok := Describe(DimVacante)
	require.True(t, ok)
	assert.Equal(t, TierDimension, d.Tier)

	_, ok = Describe("dim_unknown")
	assert.False(t, ok)
}
