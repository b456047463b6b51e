// Package schema is the shared registry of input datasets and output
// tables. The extractor validates against it, the transform emits tables
// named by it, and the warehouse loader follows its order, so the
// dimension-before-fact dependency lives in exactly one place.
package schema

type Tier string

const (
	TierDimension Tier = "dimension"
	TierFact      Tier = "fact"
)

// TableDesc describes one output table of the constellation model.
type TableDesc struct {
	Name    string
	Tier    Tier
	Columns []string
}

// InputDesc describes one expected cleaned input file. Required lists the
// columns extraction refuses to proceed without (the natural keys);
// everything else degrades per-dimension.
type InputDesc struct {
	Name     string
	Filename string
	Required []string
}

// Table is the contract between the transform output and its sinks (CSV
// writer, warehouse loader): a named, column-ordered sequence of rows.
type Table interface {
	TableName() string
	ColumnNames() []string
	RowValues() [][]any
}

// Logical dataset names.
const (
	DatasetApplicants   = "postulante"
	DatasetDisabilities = "discapacidad"
	DatasetEducation    = "educacion"
	DatasetExperience   = "experiencias"
	DatasetPostings     = "vacantes"
	DatasetCompetencies = "competencias"
)

// Inputs returns the six expected cleaned datasets in extraction order.
func Inputs() []InputDesc {
	return []InputDesc{
		{Name: DatasetApplicants, Filename: "postulante_clean.csv", Required: []string{"ID_POSTULANTE"}},
		{Name: DatasetDisabilities, Filename: "discapacidad_clean.csv", Required: []string{"DBIDPOSTULANTE"}},
		{Name: DatasetEducation, Filename: "educacion_clean.csv", Required: []string{"ID_POSTULANTE"}},
		{Name: DatasetExperience, Filename: "experiencias_clean.csv", Required: []string{"ID_POSTULANTE"}},
		{Name: DatasetPostings, Filename: "vacantes_clean.csv", Required: []string{"AVISOID"}},
		{Name: DatasetCompetencies, Filename: "competencias_clean.csv", Required: []string{"AVISOID"}},
	}
}

// Output table names.
const (
	DimTiempo      = "dim_tiempo"
	DimUbicacion   = "dim_ubicacion"
	DimPostulante  = "dim_postulante"
	DimCarrera     = "dim_carrera"
	DimInstitucion = "dim_institucion"
	DimVacante     = "dim_vacante"
	DimEmpresa     = "dim_empresa"
	DimCompetencia = "dim_competencia"

	HechosPostulante           = "hechos_postulante"
	HechosFormacion            = "hechos_formacion"
	HechosExperiencia          = "hechos_experiencia"
	HechosVacante              = "hechos_vacante"
	HechosCompetenciaRequerida = "hechos_competencia_requerida"
)

// LoadOrder returns the 13 output tables in foreign-key-safe order:
// shared dimensions first, then each star's dimensions, then facts.
func LoadOrder() []TableDesc {
	return []TableDesc{
		{Name: DimTiempo, Tier: TierDimension, Columns: []string{
			"fecha_sk", "fecha", "anio", "mes", "dia", "trimestre", "semestre",
			"dia_semana", "nombre_mes", "nombre_dia", "es_fin_semana",
		}},
		{Name: DimUbicacion, Tier: TierDimension, Columns: []string{
			"ubicacion_sk", "departamento", "provincia", "distrito", "ubigeo", "fuente",
		}},
		{Name: DimPostulante, Tier: TierDimension, Columns: []string{
			"postulante_sk", "id_postulante_original", "edad", "sexo", "ubigeo", "estado_conadis",
		}},
		{Name: DimCarrera, Tier: TierDimension, Columns: []string{
			"carrera_sk", "nombre_carrera", "grado",
		}},
		{Name: DimInstitucion, Tier: TierDimension, Columns: []string{
			"institucion_sk", "nombre_institucion",
		}},
		{Name: DimVacante, Tier: TierDimension, Columns: []string{
			"vacante_sk", "id_vacante_original", "nombre_aviso", "num_vacantes",
			"sector", "ubigeo", "sin_experiencia", "tiempo_experiencia",
		}},
		{Name: DimEmpresa, Tier: TierDimension, Columns: []string{
			"empresa_sk", "id_empresa_original",
		}},
		{Name: DimCompetencia, Tier: TierDimension, Columns: []string{
			"competencia_sk", "nombre_competencia",
		}},
		{Name: HechosPostulante, Tier: TierFact, Columns: []string{
			"postulante_sk", "ubicacion_sk", "fecha_registro_sk",
		}},
		{Name: HechosFormacion, Tier: TierFact, Columns: []string{
			"postulante_sk", "carrera_sk", "institucion_sk",
		}},
		{Name: HechosExperiencia, Tier: TierFact, Columns: []string{
			"postulante_sk",
		}},
		{Name: HechosVacante, Tier: TierFact, Columns: []string{
			"vacante_sk", "ubicacion_sk", "empresa_sk", "fecha_publicacion_sk", "activo",
		}},
		{Name: HechosCompetenciaRequerida, Tier: TierFact, Columns: []string{
			"vacante_sk", "competencia_sk",
		}},
	}
}

// Describe returns the descriptor for a table name, if registered.
func Describe(name string) (TableDesc, bool) {
	for _, d := range LoadOrder() {
		if d.Name == name {
			return d, true
		}
	}
	return TableDesc{}, false
}
