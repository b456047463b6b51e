// Package transform turns the six extracted datasets into the dimensional
// model. The pipeline is staged: reconciliation produces a Reconciled
// value, dimensions can only be built from a Reconciled value, and facts
// only from a WithDimensions value. Each stage works on its own copy, so
// no stage mutates another stage's input.
package transform

import (
	"time"

	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/dimension"
	"github.com/mariana/empleo-dw/internal/fact"
	"github.com/mariana/empleo-dw/internal/reconcile"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

// Reconciled holds the datasets after orphaned competency references have
// been repaired. It is the only entry point to dimension building.
type Reconciled struct {
	Tables source.Tables
	Stats  reconcile.Stats
}

// Dimensions holds the eight dimension tables.
type Dimensions struct {
	Time        dimension.TimeDim
	Location    dimension.LocationDim
	Applicant   dimension.ApplicantDim
	Career      dimension.CareerDim
	Institution dimension.InstitutionDim
	Posting     dimension.PostingDim
	Company     dimension.CompanyDim
	Competency  dimension.CompetencyDim
}

// WithDimensions pairs the reconciled datasets with their dimensions.
type WithDimensions struct {
	Reconciled
	Dims Dimensions
}

// Facts holds the five fact tables.
type Facts struct {
	Applicant  fact.ApplicantFacts
	Formation  fact.FormationFacts
	Experience fact.ExperienceFacts
	Posting    fact.PostingFacts
	Competency fact.CompetencyFacts
}

// Result is the completed transform: dimensions, facts, and the
// reconciliation stats that produced them.
type Result struct {
	Dims  Dimensions
	Facts Facts
	Stats reconcile.Stats
}

// Reconcile runs orphan repair on the posting dataset. now supplies the
// date stamped onto placeholder postings.
func Reconcile(tables source.Tables, now time.Time, logger *zap.Logger) Reconciled {
	postings, stats := reconcile.Postings(tables.Postings, tables.Competencies, now, logger)
	tables.Postings = postings
	return Reconciled{Tables: tables, Stats: stats}
}

// BuildDimensions builds all eight dimensions from the reconciled
// datasets. A dimension whose source columns are missing comes back empty
// with a warning; the pipeline continues.
func (r Reconciled) BuildDimensions(logger *zap.Logger) WithDimensions {
	t := r.Tables
	return WithDimensions{
		Reconciled: r,
		Dims: Dimensions{
			Time:        dimension.BuildTime(t.Postings, t.Education),
			Location:    dimension.BuildLocation(t.Applicants, t.Postings, logger),
			Applicant:   dimension.BuildApplicant(t.Applicants),
			Career:      dimension.BuildCareer(t.Education, logger),
			Institution: dimension.BuildInstitution(t.Education, logger),
			Posting:     dimension.BuildPosting(t.Postings),
			Company:     dimension.BuildCompany(t.Postings, logger),
			Competency:  dimension.BuildCompetency(t.Competencies, logger),
		},
	}
}

// BuildFacts builds the five fact tables against the dimensions.
func (w WithDimensions) BuildFacts() Result {
	t := w.Tables
	d := w.Dims
	return Result{
		Dims:  d,
		Stats: w.Stats,
		Facts: Facts{
			Applicant:  fact.BuildApplicantFacts(t.Applicants, d.Applicant, d.Location, d.Time),
			Formation:  fact.BuildFormationFacts(t.Education, d.Applicant, d.Career, d.Institution),
			Experience: fact.BuildExperienceFacts(t.Experience, d.Applicant),
			Posting:    fact.BuildPostingFacts(t.Postings, d.Posting, d.Location, d.Company, d.Time),
			Competency: fact.BuildCompetencyFacts(t.Competencies, d.Posting, d.Competency),
		},
	}
}

// Run executes the full transform in order.
func Run(tables source.Tables, now time.Time, logger *zap.Logger) Result {
	return Reconcile(tables, now, logger).BuildDimensions(logger).BuildFacts()
}

// Tables returns every output table in warehouse load order, dimensions
// before facts, matching schema.LoadOrder.
func (r Result) Tables() []schema.Table {
	return []schema.Table{
		r.Dims.Time,
		r.Dims.Location,
		r.Dims.Applicant,
		r.Dims.Career,
		r.Dims.Institution,
		r.Dims.Posting,
		r.Dims.Company,
		r.Dims.Competency,
		r.Facts.Applicant,
		r.Facts.Formation,
		r.Facts.Experience,
		r.Facts.Posting,
		r.Facts.Competency,
	}
}
