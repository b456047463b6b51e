package warehouse

// DDL for the constellation model, dimensions before facts so the foreign
// keys resolve. Column order matches the registry exactly;
// ValidateStructure depends on that.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS dim_tiempo (
		fecha_sk      BIGINT PRIMARY KEY,
		fecha         DATE NOT NULL,
		anio          INT NOT NULL,
		mes           INT NOT NULL,
		dia           INT NOT NULL,
		trimestre     INT NOT NULL,
		semestre      INT NOT NULL,
		dia_semana    INT NOT NULL,
		nombre_mes    TEXT NOT NULL,
		nombre_dia    TEXT NOT NULL,
		es_fin_semana BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_ubicacion (
		ubicacion_sk BIGINT PRIMARY KEY,
		departamento TEXT NOT NULL,
		provincia    TEXT NOT NULL,
		distrito     TEXT NOT NULL,
		ubigeo       TEXT NOT NULL,
		fuente       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_postulante (
		postulante_sk          BIGINT PRIMARY KEY,
		id_postulante_original TEXT NOT NULL,
		edad                   INT NOT NULL,
		sexo                   TEXT NOT NULL,
		ubigeo                 TEXT NOT NULL,
		estado_conadis         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_carrera (
		carrera_sk     BIGINT PRIMARY KEY,
		nombre_carrera TEXT NOT NULL,
		grado          TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_institucion (
		institucion_sk     BIGINT PRIMARY KEY,
		nombre_institucion TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_vacante (
		vacante_sk          BIGINT PRIMARY KEY,
		id_vacante_original BIGINT NOT NULL,
		nombre_aviso        TEXT NOT NULL,
		num_vacantes        INT NOT NULL,
		sector              TEXT NOT NULL,
		ubigeo              TEXT NOT NULL,
		sin_experiencia     BOOLEAN NOT NULL,
		tiempo_experiencia  DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_empresa (
		empresa_sk          BIGINT PRIMARY KEY,
		id_empresa_original BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_competencia (
		competencia_sk     BIGINT PRIMARY KEY,
		nombre_competencia TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_postulante (
		postulante_sk     BIGINT NOT NULL REFERENCES dim_postulante(postulante_sk),
		ubicacion_sk      BIGINT REFERENCES dim_ubicacion(ubicacion_sk),
		fecha_registro_sk BIGINT REFERENCES dim_tiempo(fecha_sk)
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_formacion (
		postulante_sk  BIGINT NOT NULL REFERENCES dim_postulante(postulante_sk),
		carrera_sk     BIGINT REFERENCES dim_carrera(carrera_sk),
		institucion_sk BIGINT REFERENCES dim_institucion(institucion_sk)
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_experiencia (
		postulante_sk BIGINT NOT NULL REFERENCES dim_postulante(postulante_sk)
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_vacante (
		vacante_sk           BIGINT NOT NULL REFERENCES dim_vacante(vacante_sk),
		ubicacion_sk         BIGINT REFERENCES dim_ubicacion(ubicacion_sk),
		empresa_sk           BIGINT REFERENCES dim_empresa(empresa_sk),
		fecha_publicacion_sk BIGINT REFERENCES dim_tiempo(fecha_sk),
		activo               BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hechos_competencia_requerida (
		vacante_sk     BIGINT NOT NULL REFERENCES dim_vacante(vacante_sk),
		competencia_sk BIGINT NOT NULL REFERENCES dim_competencia(competencia_sk)
	)`,
}

var etlRunsDDL = `CREATE TABLE IF NOT EXISTS etl_runs (
	id           UUID PRIMARY KEY,
	started_at   TIMESTAMPTZ NOT NULL,
	completed_at TIMESTAMPTZ,
	row_count    BIGINT NOT NULL DEFAULT 0,
	status       TEXT NOT NULL
)`
