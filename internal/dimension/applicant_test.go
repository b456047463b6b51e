package dimension

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/empleo-dw/internal/source"
)

func TestBuildApplicant_KeepFirst(t *testing.T) {
	age1, age2 := 30, 99
	applicants := tableOf([]string{source.ColApplicantID},
		source.Applicant{ID: "A1", Age: &age1, Sex: strp("F")},
		source.Applicant{ID: "A1", Age: &age2, Sex: strp("M")},
		source.Applicant{ID: "A2"},
	)

	dim := BuildApplicant(applicants)
	require.Len(t, dim.Rows, 2)

	assert.Equal(t, int64(1), dim.Rows[0].SK)
	assert.Equal(t, 30, dim.Rows[0].Age, "first occurrence wins")
	assert.Equal(t, "F", dim.Rows[0].Sex)

	assert.Equal(t, int64(2), dim.Rows[1].SK)
	assert.Equal(t, 0, dim.Rows[1].Age)
	assert.Equal(t, source.SentinelUnspecified, dim.Rows[1].Sex)
	assert.Equal(t, source.SentinelUnspecified, dim.Rows[1].Geocode)
	assert.Equal(t, source.SentinelUnspecified, dim.Rows[1].ConadisStatus)
}

func TestBuildApplicant_DenseKeysUnderHeavyDuplication(t *testing.T) {
	var rows []source.Applicant
	for i := 0; i < 100; i++ {
		rows = append(rows, source.Applicant{ID: fmt.Sprintf("A%d", i%10)})
	}
	dim := BuildApplicant(tableOf([]string{source.ColApplicantID}, rows...))

	require.Len(t, dim.Rows, 10)
	for i, r := range dim.Rows {
		assert.Equal(t, int64(i+1), r.SK)
	}
	sk, ok := dim.SK("A7")
	require.True(t, ok)
	assert.Equal(t, int64(8), sk)
	_, ok = dim.SK("A10")
	assert.False(t, ok)
}
