// Package reconcile repairs referential gaps between the competency and
// posting datasets before dimensions are built. A competency may reference
// a posting that upstream cleaning dropped; instead of silently losing the
// competency downstream, a placeholder posting row is synthesized for each
// missing ID.
package reconcile

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/source"
)

// Stats summarizes one reconciliation pass.
type Stats struct {
	OrphanCount     int
	TotalReferenced int
	Percent         float64
}

// Postings returns a copy of the posting table with one placeholder row
// appended per posting ID that competencies reference but the posting
// dataset lacks. Placeholders are appended in ascending ID order so output
// is deterministic. The input table is not modified.
//
// Running this against an already-reconciled table is a no-op: placeholder
// rows count as present, so the orphan set comes back empty.
func Postings(postings source.Table[source.Posting], competencies source.Table[source.Competency], now time.Time, logger *zap.Logger) (source.Table[source.Posting], Stats) {
	present := make(map[int64]struct{}, len(postings.Rows))
	for _, p := range postings.Rows {
		present[p.ID] = struct{}{}
	}

	referenced := make(map[int64]struct{}, len(competencies.Rows))
	for _, c := range competencies.Rows {
		referenced[c.PostingID] = struct{}{}
	}

	var orphans []int64
	for id := range referenced {
		if _, ok := present[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i] < orphans[j] })

	stats := Stats{
		OrphanCount:     len(orphans),
		TotalReferenced: len(referenced),
	}
	if stats.TotalReferenced > 0 {
		stats.Percent = float64(stats.OrphanCount) / float64(stats.TotalReferenced) * 100
	}

	out := source.Table[source.Posting]{
		Rows:    make([]source.Posting, len(postings.Rows), len(postings.Rows)+len(orphans)),
		Columns: postings.Columns,
	}
	copy(out.Rows, postings.Rows)

	if len(orphans) == 0 {
		return out, stats
	}

	logger.Warn("orphaned posting references detected in competencias",
		zap.Int("orphans", stats.OrphanCount),
		zap.Int("referenced", stats.TotalReferenced),
		zap.Float64("percent", stats.Percent),
	)

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, id := range orphans {
		out.Rows = append(out.Rows, placeholder(id, day))
	}

	logger.Info("placeholder postings appended to preserve competency rows",
		zap.Int("count", len(orphans)),
	)
	return out, stats
}

func placeholder(id int64, day time.Time) source.Posting {
	title := source.OrphanMarker
	vacancies := 0
	sector := source.SentinelUnclassified
	geocode := source.PlaceholderGeocode
	region := source.SentinelUnspecified
	province := source.SentinelUnspecified
	district := source.SentinelUnspecified
	noExperience := "NO"
	months := 0.0
	companyID := int64(0)
	active := false
	date := day

	return source.Posting{
		ID:               id,
		Title:            &title,
		Vacancies:        &vacancies,
		Sector:           &sector,
		Geocode:          &geocode,
		Region:           &region,
		Province:         &province,
		District:         &district,
		NoExperience:     &noExperience,
		ExperienceMonths: &months,
		CompanyID:        &companyID,
		StartDate:        &date,
		EndDate:          &date,
		CreatedDate:      &date,
		Active:           &active,
		Orphan:           true,
	}
}
