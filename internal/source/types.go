// Package source holds the typed schemas of the six cleaned datasets.
// Columns that upstream cleaning may leave empty are pointer fields;
// natural keys are plain values because rows without them are unusable
// and dropped at decode time.
package source

import "time"

// Column names as produced by the upstream cleaning scripts.
const (
	ColApplicantID   = "ID_POSTULANTE"
	ColAge           = "EDAD"
	ColSex           = "SEXO"
	ColGeocode       = "UBIGEO"
	ColConadisStatus = "ESTADO_CONADIS"
	ColRegion        = "DEPARTAMENTO"
	ColProvince      = "PROVINCIA"
	ColDistrict      = "DISTRITO"

	ColDisabilityApplicantID = "DBIDPOSTULANTE"
	ColDisabilityCause       = "CAUSA"
	ColDisabilityScore       = "DSCORE"

	ColCareer      = "CARRERA"
	ColInstitution = "INSTITUCION"
	ColDegree      = "GRADO"
	ColStartDate   = "FECHAINICIO"
	ColEndDate     = "FECHAFIN"

	ColRole    = "CARGO"
	ColCompany = "EMPRESA"
	ColSector  = "SECTOR"

	ColPostingID        = "AVISOID"
	ColPostingTitle     = "NOMBREAVISO"
	ColVacancies        = "VACANTES"
	ColNoExperience     = "SINEXPERIENCIA"
	ColExperienceMonths = "TIEMPOEXPERIENCIA"
	ColCompanyID        = "IDEMPRESA"
	ColCreatedDate      = "FECHACREACION"
	ColActive           = "ACTIVO"

	ColCompetencyName = "NOMBRECOMPETENCIA"
)

type Applicant struct {
	ID            string
	Age           *int
	Sex           *string
	Geocode       *string
	ConadisStatus *string
	Region        *string
	Province      *string
	District      *string
}

type Disability struct {
	ApplicantID string
	Cause       *string
	Score       *float64
}

type Education struct {
	ApplicantID string
	Career      *string
	Institution *string
	Degree      *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type Experience struct {
	ApplicantID string
	Role        *string
	Company     *string
	Sector      *string
}

type Posting struct {
	ID               int64
	Title            *string
	Vacancies        *int
	Sector           *string
	Geocode          *string
	Region           *string
	Province         *string
	District         *string
	NoExperience     *string
	ExperienceMonths *float64
	CompanyID        *int64
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedDate      *time.Time
	Active           *bool

	// Orphan marks a placeholder row synthesized by reconciliation for a
	// posting ID referenced by competencies but absent from the dataset.
	Orphan bool
}

type Competency struct {
	PostingID int64
	Name      *string
}

// ColumnSet records which columns were actually present in an input file,
// so builders can tell an absent column from an empty one.
type ColumnSet map[string]struct{}

func NewColumnSet(names []string) ColumnSet {
	set := make(ColumnSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (c ColumnSet) Has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c ColumnSet) HasAll(names ...string) bool {
	for _, n := range names {
		if !c.Has(n) {
			return false
		}
	}
	return true
}

// Table pairs decoded rows with the columns their file carried.
type Table[T any] struct {
	Rows    []T
	Columns ColumnSet
}

// Tables is the full extracted dataset collection handed between stages.
// Stages treat it as read-only; reconciliation returns an updated copy of
// the posting table instead of mutating it in place.
type Tables struct {
	Applicants   Table[Applicant]
	Disabilities Table[Disability]
	Education    Table[Education]
	Experience   Table[Experience]
	Postings     Table[Posting]
	Competencies Table[Competency]
}
