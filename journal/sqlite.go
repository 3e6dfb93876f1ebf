package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	var seed sql.NullInt64
	if r.Seed != nil {
		seed = sql.NullInt64{Int64: int64(*r.Seed), Valid: true}
	}

	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created_at, s0, mu, sigma, horizon, steps, seed, terminal)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.CreatedAt, r.S0, r.Mu, r.Sigma,
		r.Horizon, r.Steps, seed, r.Terminal,
	)
	return err
}

func (j *SQLiteJournal) RecordPath(runID string, times, values []float64) error {
	if len(times) != len(values) {
		return fmt.Errorf("record path: %d times vs %d values", len(times), len(values))
	}

	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO samples (run_id, idx, t, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range times {
		if _, err := stmt.Exec(runID, i, times[i], values[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetRun loads a single run record by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	var (
		r    RunRecord
		seed sql.NullInt64
	)

	row := j.db.QueryRow(`
		SELECT run_id, created_at, s0, mu, sigma, horizon, steps, seed, terminal
		FROM runs WHERE run_id = ?`, runID)

	err := row.Scan(&r.RunID, &r.CreatedAt, &r.S0, &r.Mu, &r.Sigma,
		&r.Horizon, &r.Steps, &seed, &r.Terminal)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	if seed.Valid {
		s := uint64(seed.Int64)
		r.Seed = &s
	}
	return r, nil
}

// ListSamples loads a recorded path in grid order.
func (j *SQLiteJournal) ListSamples(runID string) ([]Sample, error) {
	rows, err := j.db.Query(`
		SELECT run_id, idx, t, value
		FROM samples WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var s Sample
		if err := rows.Scan(&s.RunID, &s.Idx, &s.Time, &s.Value); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
