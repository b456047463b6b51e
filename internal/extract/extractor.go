// Package extract loads the six cleaned datasets from disk. Extraction is
// all-or-nothing: any missing file, empty dataset, or absent natural-key
// column aborts with no partial result.
package extract

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mariana/empleo-dw/internal/csvio"
	"github.com/mariana/empleo-dw/internal/etlerrors"
	"github.com/mariana/empleo-dw/internal/schema"
	"github.com/mariana/empleo-dw/internal/source"
)

type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractAll reads every expected file under dir and returns the typed
// dataset collection.
func (e *Extractor) ExtractAll(dir string) (*source.Tables, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, etlerrors.MissingInput(fmt.Sprintf("cleaned data directory %s", dir), err)
	}
	if !info.IsDir() {
		return nil, etlerrors.MissingInput(fmt.Sprintf("%s is not a directory", dir), nil)
	}

	files := make(map[string]*csvio.File, len(schema.Inputs()))
	for _, in := range schema.Inputs() {
		f, err := e.loadFile(dir, in)
		if err != nil {
			return nil, err
		}
		files[in.Name] = f
	}

	tables := &source.Tables{
		Applicants:   source.DecodeApplicants(files[schema.DatasetApplicants]),
		Disabilities: source.DecodeDisabilities(files[schema.DatasetDisabilities]),
		Education:    source.DecodeEducation(files[schema.DatasetEducation]),
		Experience:   source.DecodeExperience(files[schema.DatasetExperience]),
		Postings:     source.DecodePostings(files[schema.DatasetPostings]),
		Competencies: source.DecodeCompetencies(files[schema.DatasetCompetencies]),
	}

	e.logger.Info("extraction complete",
		zap.Int("postulante", len(tables.Applicants.Rows)),
		zap.Int("discapacidad", len(tables.Disabilities.Rows)),
		zap.Int("educacion", len(tables.Education.Rows)),
		zap.Int("experiencias", len(tables.Experience.Rows)),
		zap.Int("vacantes", len(tables.Postings.Rows)),
		zap.Int("competencias", len(tables.Competencies.Rows)),
	)
	return tables, nil
}

func (e *Extractor) loadFile(dir string, in schema.InputDesc) (*csvio.File, error) {
	path := filepath.Join(dir, in.Filename)
	if _, err := os.Stat(path); err != nil {
		return nil, etlerrors.MissingInput(fmt.Sprintf("expected file %s for dataset %s", in.Filename, in.Name), err)
	}

	f, err := csvio.ReadFile(path)
	if err != nil {
		return nil, etlerrors.MissingInput(fmt.Sprintf("unreadable file %s for dataset %s", in.Filename, in.Name), err)
	}
	if len(f.Rows) == 0 {
		return nil, etlerrors.EmptyDataset(fmt.Sprintf("dataset %s has zero rows", in.Name), nil)
	}
	for _, col := range in.Required {
		if !f.HasColumn(col) {
			return nil, etlerrors.MissingColumn(fmt.Sprintf("dataset %s is missing required column %s", in.Name, col), nil)
		}
	}

	for _, w := range f.Warnings {
		e.logger.Warn("input row issue",
			zap.String("dataset", in.Name),
			zap.Int("row", w.Row),
			zap.String("issue", w.Message),
		)
	}
	e.logger.Debug("dataset loaded",
		zap.String("dataset", in.Name),
		zap.Int("rows", len(f.Rows)),
		zap.Int("columns", len(f.Columns)),
		zap.String("encoding", f.Encoding),
	)
	return f, nil
}
