package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/source"
)

func postingTable(ids ...int64) source.Table[source.Posting] {
	t := source.Table[source.Posting]{Columns: source.NewColumnSet([]string{source.ColPostingID})}
	for _, id := range ids {
		t.Rows = append(t.Rows, source.Posting{ID: id})
	}
	return t
}

func competencyTable(postingIDs ...int64) source.Table[source.Competency] {
	t := source.Table[source.Competency]{Columns: source.NewColumnSet([]string{source.ColPostingID, source.ColCompetencyName})}
	for _, id := range postingIDs {
		name := "Liderazgo"
		t.Rows = append(t.Rows, source.Competency{PostingID: id, Name: &name})
	}
	return t
}

func TestPostings_SynthesizesPlaceholders(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)
	out, stats := Postings(postingTable(1, 2), competencyTable(1, 2, 3), now, zap.NewNop())

	assert.Equal(t, 1, stats.OrphanCount)
	assert.Equal(t, 3, stats.TotalReferenced)
	assert.InDelta(t, 100.0/3.0, stats.Percent, 1e-9)

	require.Len(t, out.Rows, 3)
	ph := out.Rows[2]
	assert.Equal(t, int64(3), ph.ID)
	assert.True(t, ph.Orphan)
	require.NotNil(t, ph.Title)
	assert.Equal(t, source.OrphanMarker, *ph.Title)
	assert.Equal(t, source.SentinelUnclassified, *ph.Sector)
	assert.Equal(t, source.PlaceholderGeocode, *ph.Geocode)
	assert.Equal(t, source.SentinelUnspecified, *ph.Region)
	assert.Equal(t, 0, *ph.Vacancies)
	assert.Equal(t, int64(0), *ph.CompanyID)
	assert.False(t, *ph.Active)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), *ph.CreatedDate,
		"placeholder dates are the run day, not the run instant")
}

func TestPostings_AppendsInAscendingIDOrder(t *testing.T) {
	out, _ := Postings(postingTable(), competencyTable(9, 3, 7), time.Now(), zap.NewNop())

	require.Len(t, out.Rows, 3)
	assert.Equal(t, int64(3), out.Rows[0].ID)
	assert.Equal(t, int64(7), out.Rows[1].ID)
	assert.Equal(t, int64(9), out.Rows[2].ID)
}

func TestPostings_NoOrphans(t *testing.T) {
	out, stats := Postings(postingTable(1, 2), competencyTable(1, 2, 2), time.Now(), zap.NewNop())

	assert.Equal(t, 0, stats.OrphanCount)
	assert.Equal(t, 2, stats.TotalReferenced, "referenced counts distinct posting IDs")
	assert.Len(t, out.Rows, 2)
}

func TestPostings_DoesNotMutateInput(t *testing.T) {
	in := postingTable(1)
	out, _ := Postings(in, competencyTable(1, 2), time.Now(), zap.NewNop())

	assert.Len(t, in.Rows, 1, "input table must stay untouched")
	assert.Len(t, out.Rows, 2)
}

func TestPostings_Idempotent(t *testing.T) {
	comps := competencyTable(1, 2, 3)
	once, _ := Postings(postingTable(1), comps, time.Now(), zap.NewNop())
	twice, stats := Postings(once, comps, time.Now(), zap.NewNop())

	assert.Equal(t, 0, stats.OrphanCount, "placeholders count as present on the second pass")
	assert.Len(t, twice.Rows, len(once.Rows))
}
