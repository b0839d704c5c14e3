package sink

import (
	"database/sql"

	_ "github.com/jackc/pgx/stdlib"

	"github.com/felixge/json-checker/internal"
)

const createTable = `CREATE TABLE IF NOT EXISTS json_checker_measurements (
	id          BIGSERIAL PRIMARY KEY,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	suite       TEXT NOT NULL,
	library     TEXT NOT NULL,
	repeat      INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	elapsed_ns  BIGINT NOT NULL,
	calls_per_sec DOUBLE PRECISION NOT NULL,
	total_secs  DOUBLE PRECISION NOT NULL
)`

const insertMeasurement = `INSERT INTO json_checker_measurements
	(suite, library, repeat, iterations, elapsed_ns, calls_per_sec, total_secs)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// SQL stores measurements in a postgres table.
type SQL struct {
	db *sql.DB
}

// OpenSQL connects to dsn and creates the measurements table if needed.
func OpenSQL(dsn string) (*SQL, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQL(db)
}

// NewSQL uses an already opened db.
func NewSQL(db *sql.DB) (*SQL, error) {
	if _, err := db.Exec(createTable); err != nil {
		return nil, err
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Record(m internal.Measurement) error {
	_, err := s.db.Exec(insertMeasurement,
		m.Suite,
		m.Library,
		m.Repeat,
		m.Iterations,
		m.Elapsed.Nanoseconds(),
		m.CallsPerSec,
		m.TotalSecs,
	)
	return err
}

func (s *SQL) Close() error {
	return s.db.Close()
}
