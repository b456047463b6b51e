package fact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/source"
)

func boolp(b bool) *bool { return &b }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildPostingFacts_FullJoins(t *testing.T) {
	early := datep(2023, time.January, 1)
	later := datep(2023, time.June, 15)
	postings := tableOf([]string{source.ColPostingID, source.ColCompanyID, source.ColActive, source.ColGeocode},
		source.Posting{ID: 10, Geocode: strp("150101"), CompanyID: i64p(500), CreatedDate: later, Active: boolp(true)},
		source.Posting{ID: 11, Geocode: strp("150101"), CompanyID: i64p(500), StartDate: early, Active: boolp(false)},
	)

	dimPost := dimension.BuildPosting(postings)
	dimLoc := locationDimOf("150101")
	dimComp := dimension.BuildCompany(postings, zap.NewNop())
	dimTime := dimension.BuildTime(postings, source.Table[source.Education]{})

	facts := BuildPostingFacts(postings, dimPost, dimLoc, dimComp, dimTime)
	require.Len(t, facts.Rows, 2)

	first := facts.Rows[0]
	assert.Equal(t, int64(1), first.PostingSK)
	require.NotNil(t, first.PublishedSK)
	assert.Equal(t, int64(2), *first.PublishedSK, "creation date resolves to its own time key")
	assert.True(t, first.Active)

	second := facts.Rows[1]
	require.NotNil(t, second.PublishedSK)
	assert.Equal(t, int64(1), *second.PublishedSK, "no creation date falls back to the earliest key")
	assert.False(t, second.Active)
}

func TestBuildPostingFacts_DropsNullKeysAgainstPopulatedDims(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID, source.ColCompanyID, source.ColGeocode},
		source.Posting{ID: 1, Geocode: strp("150101"), CompanyID: i64p(500)},
		source.Posting{ID: 2, CompanyID: i64p(500)},  // no geocode
		source.Posting{ID: 3, Geocode: strp("150101")}, // no company
	)

	dimPost := dimension.BuildPosting(postings)
	dimLoc := locationDimOf("150101")
	dimComp := dimension.BuildCompany(postings, zap.NewNop())

	facts := BuildPostingFacts(postings, dimPost, dimLoc, dimComp, dimension.TimeDim{})
	require.Len(t, facts.Rows, 1, "rows with unresolved keys against populated dimensions are dropped")
	assert.Equal(t, int64(1), facts.Rows[0].PostingSK)
}

func TestBuildPostingFacts_NullKeysSurviveWhenDimSkipped(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 1},
	)
	dimPost := dimension.BuildPosting(postings)

	facts := BuildPostingFacts(postings, dimPost, dimension.LocationDim{}, dimension.CompanyDim{}, dimension.TimeDim{})
	require.Len(t, facts.Rows, 1, "a skipped dimension must not empty the fact table")
	assert.Nil(t, facts.Rows[0].LocationSK)
	assert.Nil(t, facts.Rows[0].CompanySK)
	assert.Nil(t, facts.Rows[0].PublishedSK)
	assert.True(t, facts.Rows[0].Active, "active defaults to true when the source never carried the column")
}

func TestBuildPostingFacts_ActiveColumnPresent(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID, source.ColActive},
		source.Posting{ID: 1, Active: boolp(false)},
		source.Posting{ID: 2}, // unparseable/absent value
	)
	dimPost := dimension.BuildPosting(postings)

	facts := BuildPostingFacts(postings, dimPost, dimension.LocationDim{}, dimension.CompanyDim{}, dimension.TimeDim{})
	require.Len(t, facts.Rows, 1, "a null flag is dropped when the column exists")
	assert.False(t, facts.Rows[0].Active)
}
