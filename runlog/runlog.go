// Package runlog keeps a ledger of training runs and their rounds in a SQL database.
// The sqlite (modernc.org/sqlite) and mysql (github.com/go-sql-driver/mysql) drivers are registered.
package runlog

import "database/sql"
import "encoding/hex"
import "errors"
import "fmt"
import "time"

import _ "github.com/go-sql-driver/mysql"
import "github.com/google/uuid"
import _ "modernc.org/sqlite"

import "github.com/neurlang/tsetlin/trainer"

// ErrNotFound is returned for an unknown run id
var ErrNotFound = errors.New("run not found")

// Run describes one training run
type Run struct {
	ID      string
	Dataset string

	Features    int
	Clauses     int
	States      int
	Specificity float64
	Threshold   float64
	Seed        uint64

	Started  time.Time
	Finished time.Time // zero while running
	Success  int       // percent
	Stopped  string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		dataset VARCHAR(255) NOT NULL,
		features INTEGER NOT NULL,
		clauses INTEGER NOT NULL,
		states INTEGER NOT NULL,
		specificity DOUBLE PRECISION NOT NULL,
		vote_threshold DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL,
		started VARCHAR(64) NOT NULL,
		finished VARCHAR(64) NOT NULL,
		success INTEGER NOT NULL,
		stopped VARCHAR(16) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		run_id VARCHAR(36) NOT NULL,
		round_number INTEGER NOT NULL,
		epochs INTEGER NOT NULL,
		success INTEGER NOT NULL,
		accuracy DOUBLE PRECISION NOT NULL,
		fingerprint VARCHAR(64) NOT NULL,
		PRIMARY KEY (run_id, round_number)
	)`,
}

// Store is a run ledger
type Store struct {
	db *sql.DB
}

// Open connects to the database and creates the tables when missing.
// driver is "sqlite" or "mysql".
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite", "mysql":
	default:
		return nil, fmt.Errorf("open: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if driver == "sqlite" {
		// every connection to :memory: is a different database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// CreateRun stores r under a fresh id and returns it with the id set
func (s *Store) CreateRun(r Run) (Run, error) {
	r.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO runs (id, dataset, features, clauses, states, specificity, vote_threshold, seed, started, finished, success, stopped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Dataset, r.Features, r.Clauses, r.States, r.Specificity, r.Threshold, int64(r.Seed),
		formatTime(r.Started), formatTime(r.Finished), r.Success, r.Stopped)
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	return r, nil
}

// FinishRun records how run id ended
func (s *Store) FinishRun(id string, finished time.Time, res trainer.Result) error {
	out, err := s.db.Exec(`UPDATE runs SET finished = ?, success = ?, stopped = ? WHERE id = ?`,
		formatTime(finished), res.Success, res.Stopped.String(), id)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	n, err := out.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("finish run %s: %w", id, ErrNotFound)
	}
	return nil
}

// Run loads run id
func (s *Store) Run(id string) (r Run, err error) {
	var seed int64
	var started, finished string
	err = s.db.QueryRow(`SELECT id, dataset, features, clauses, states, specificity, vote_threshold, seed, started, finished, success, stopped
		FROM runs WHERE id = ?`, id).Scan(&r.ID, &r.Dataset, &r.Features, &r.Clauses, &r.States,
		&r.Specificity, &r.Threshold, &seed, &started, &finished, &r.Success, &r.Stopped)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("run %s: %w", id, err)
	}
	r.Seed = uint64(seed)
	if r.Started, err = parseTime(started); err != nil {
		return Run{}, fmt.Errorf("run %s: %w", id, err)
	}
	if r.Finished, err = parseTime(finished); err != nil {
		return Run{}, fmt.Errorf("run %s: %w", id, err)
	}
	return r, nil
}

// AddRound stores one round of run id
func (s *Store) AddRound(id string, r trainer.Round) error {
	_, err := s.db.Exec(`INSERT INTO rounds (run_id, round_number, epochs, success, accuracy, fingerprint) VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Number, r.Epochs, r.Success, r.Accuracy, hex.EncodeToString(r.Fingerprint[:]))
	if err != nil {
		return fmt.Errorf("add round %d: %w", r.Number, err)
	}
	return nil
}

// Rounds loads the rounds of run id in order
func (s *Store) Rounds(id string) (o []trainer.Round, err error) {
	rows, err := s.db.Query(`SELECT round_number, epochs, success, accuracy, fingerprint FROM rounds WHERE run_id = ? ORDER BY round_number`, id)
	if err != nil {
		return nil, fmt.Errorf("rounds of %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var r trainer.Round
		var fingerprint string
		if err := rows.Scan(&r.Number, &r.Epochs, &r.Success, &r.Accuracy, &fingerprint); err != nil {
			return nil, fmt.Errorf("rounds of %s: %w", id, err)
		}
		b, err := hex.DecodeString(fingerprint)
		if err != nil || len(b) != len(r.Fingerprint) {
			return nil, fmt.Errorf("rounds of %s: bad fingerprint %q", id, fingerprint)
		}
		copy(r.Fingerprint[:], b)
		o = append(o, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rounds of %s: %w", id, err)
	}
	return o, nil
}

// Recorder records the rounds of run id
func (s *Store) Recorder(id string) trainer.Recorder {
	return trainer.RecorderFunc(func(r trainer.Round) error {
		return s.AddRound(id, r)
	})
}
