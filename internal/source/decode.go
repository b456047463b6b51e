package source

import (
	"strconv"
	"strings"
	"time"

	"github.com/mariana/empleo-dw/internal/csvio"
)

// Date layouts seen in the cleaned files. Cleaning emits calendar days,
// but creation timestamps occasionally keep a time component.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DecodeApplicants converts a parsed postulante file into typed rows.
// Rows without an applicant ID are dropped.
func DecodeApplicants(f *csvio.File) Table[Applicant] {
	t := Table[Applicant]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id := row[ColApplicantID]
		if id == "" {
			continue
		}
		t.Rows = append(t.Rows, Applicant{
			ID:            id,
			Age:           optInt(row[ColAge]),
			Sex:           optString(row[ColSex]),
			Geocode:       optString(row[ColGeocode]),
			ConadisStatus: optString(row[ColConadisStatus]),
			Region:        optString(row[ColRegion]),
			Province:      optString(row[ColProvince]),
			District:      optString(row[ColDistrict]),
		})
	}
	return t
}

func DecodeDisabilities(f *csvio.File) Table[Disability] {
	t := Table[Disability]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id := row[ColDisabilityApplicantID]
		if id == "" {
			continue
		}
		t.Rows = append(t.Rows, Disability{
			ApplicantID: id,
			Cause:       optString(row[ColDisabilityCause]),
			Score:       optFloat(row[ColDisabilityScore]),
		})
	}
	return t
}

func DecodeEducation(f *csvio.File) Table[Education] {
	t := Table[Education]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id := row[ColApplicantID]
		if id == "" {
			continue
		}
		t.Rows = append(t.Rows, Education{
			ApplicantID: id,
			Career:      optString(row[ColCareer]),
			Institution: optString(row[ColInstitution]),
			Degree:      optString(row[ColDegree]),
			StartDate:   optDate(row[ColStartDate]),
			EndDate:     optDate(row[ColEndDate]),
		})
	}
	return t
}

func DecodeExperience(f *csvio.File) Table[Experience] {
	t := Table[Experience]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id := row[ColApplicantID]
		if id == "" {
			continue
		}
		t.Rows = append(t.Rows, Experience{
			ApplicantID: id,
			Role:        optString(row[ColRole]),
			Company:     optString(row[ColCompany]),
			Sector:      optString(row[ColSector]),
		})
	}
	return t
}

func DecodePostings(f *csvio.File) Table[Posting] {
	t := Table[Posting]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id, ok := parseID(row[ColPostingID])
		if !ok {
			continue
		}
		t.Rows = append(t.Rows, Posting{
			ID:               id,
			Title:            optString(row[ColPostingTitle]),
			Vacancies:        optInt(row[ColVacancies]),
			Sector:           optString(row[ColSector]),
			Geocode:          optString(row[ColGeocode]),
			Region:           optString(row[ColRegion]),
			Province:         optString(row[ColProvince]),
			District:         optString(row[ColDistrict]),
			NoExperience:     optString(row[ColNoExperience]),
			ExperienceMonths: optFloat(row[ColExperienceMonths]),
			CompanyID:        optInt64(row[ColCompanyID]),
			StartDate:        optDate(row[ColStartDate]),
			EndDate:          optDate(row[ColEndDate]),
			CreatedDate:      optDate(row[ColCreatedDate]),
			Active:           optBool(row[ColActive]),
		})
	}
	return t
}

func DecodeCompetencies(f *csvio.File) Table[Competency] {
	t := Table[Competency]{Columns: NewColumnSet(f.Columns)}
	for _, row := range f.Rows {
		id, ok := parseID(row[ColPostingID])
		if !ok {
			continue
		}
		t.Rows = append(t.Rows, Competency{
			PostingID: id,
			Name:      optString(row[ColCompetencyName]),
		})
	}
	return t
}

func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	// Numeric IDs sometimes round-trip through floats upstream (123.0).
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), true
		}
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(s string) *int {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

func optInt64(s string) *int64 {
	id, ok := parseID(s)
	if !ok {
		return nil
	}
	return &id
}

func optFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func optBool(s string) *bool {
	switch strings.ToUpper(s) {
	case "TRUE", "SI", "S", "1":
		v := true
		return &v
	case "FALSE", "NO", "N", "0":
		v := false
		return &v
	}
	return nil
}

func optDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}
