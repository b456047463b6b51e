package fact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/source"
)

func TestBuildCompetencyFacts_InnerBothSides(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID},
		source.Posting{ID: 10},
	)
	comps := tableOf([]string{source.ColPostingID, source.ColCompetencyName},
		source.Competency{PostingID: 10, Name: strp("Liderazgo")},
		source.Competency{PostingID: 10, Name: strp("Trabajo en equipo")},
		source.Competency{PostingID: 99, Name: strp("Liderazgo")}, // unknown posting
		source.Competency{PostingID: 10},                          // no name
	)

	dimPost := dimension.BuildPosting(postings)
	dimComp := dimension.BuildCompetency(comps, zap.NewNop())

	facts := BuildCompetencyFacts(comps, dimPost, dimComp)
	require.Len(t, facts.Rows, 2)
	assert.Equal(t, int64(1), facts.Rows[0].PostingSK)
	assert.Equal(t, int64(1), facts.Rows[0].CompetencySK)
	assert.Equal(t, int64(2), facts.Rows[1].CompetencySK)
}

func TestBuildCompetencyFacts_KeepsRepeatedBridgeRows(t *testing.T) {
	postings := tableOf([]string{source.ColPostingID}, source.Posting{ID: 10})
	comps := tableOf([]string{source.ColPostingID, source.ColCompetencyName},
		source.Competency{PostingID: 10, Name: strp("Liderazgo")},
		source.Competency{PostingID: 10, Name: strp("Liderazgo")},
	)

	facts := BuildCompetencyFacts(comps,
		dimension.BuildPosting(postings),
		dimension.BuildCompetency(comps, zap.NewNop()))
	assert.Len(t, facts.Rows, 2, "the bridge keeps raw rows; no deduplication")
}
