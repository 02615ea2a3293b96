package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/expr"
)

// Store persists truth tables and run history in SQLite. Reads go through an
// in-memory TableCache first so repeated lookups within a process never touch
// the database.
type Store struct {
	db  *sql.DB
	mem *TableCache
}

// Run is one recorded CLI invocation.
type Run struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	Expression string    `json:"expression"`
	Format     string    `json:"format"`
	CreatedAt  time.Time `json:"created_at"`
}

// Open creates a Store backed by the database at path. The schema is created
// on first use. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, mem: NewTableCache(0)}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tables (
		key TEXT PRIMARY KEY,
		expression TEXT NOT NULL,
		variables TEXT NOT NULL,
		results BLOB NOT NULL,
		signature TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		expression TEXT NOT NULL,
		format TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// GetTable retrieves the cached truth table for e, or nil if absent.
func (s *Store) GetTable(e expr.Expr) (*eval.TruthTable, error) {
	if t := s.mem.Get(e); t != nil {
		return t, nil
	}

	row := s.db.QueryRow(`SELECT variables, results FROM tables WHERE key = ?`, Key(e))

	var varsJSON string
	var results []byte
	if err := row.Scan(&varsJSON, &results); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var vars []string
	if err := json.Unmarshal([]byte(varsJSON), &vars); err != nil {
		return nil, fmt.Errorf("decode variables: %w", err)
	}
	t, err := unpackTable(vars, results)
	if err != nil {
		return nil, err
	}
	s.mem.Put(e, t)
	return t, nil
}

// PutTable stores the truth table for e. The result column is packed one bit
// per row; variable assignments are reconstructed from row indexes on read.
func (s *Store) PutTable(e expr.Expr, t *eval.TruthTable) error {
	varsJSON, err := json.Marshal(t.Variables)
	if err != nil {
		return fmt.Errorf("encode variables: %w", err)
	}

	var sigHex string
	if sig, ok := t.Signature(); ok {
		sigHex = sig.Hex()
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO tables (key, expression, variables, results, signature, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		Key(e), e.String(), string(varsJSON), packResults(t), sigHex, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	s.mem.Put(e, t)
	return nil
}

// GetOrCompute reads the table for e from the store, computing and persisting
// it on a miss.
func (s *Store) GetOrCompute(e expr.Expr, compute func() (*eval.TruthTable, error)) (*eval.TruthTable, error) {
	t, err := s.GetTable(e)
	if err != nil || t != nil {
		return t, err
	}
	t, err = compute()
	if err != nil {
		return nil, err
	}
	if err := s.PutTable(e, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RecordRun logs a CLI invocation and returns its id.
func (s *Store) RecordRun(command, expression, format string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, command, expression, format, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, command, expression, format, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, command, expression, format, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Command, &r.Expression, &r.Format, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

// packResults packs the result column into a bitset, row i at bit i%8 of
// byte i/8.
func packResults(t *eval.TruthTable) []byte {
	packed := make([]byte, (len(t.Rows)+7)/8)
	for i, row := range t.Rows {
		if row.Result {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed
}

// unpackTable rebuilds a truth table from its variable list and packed result
// column. Assignments follow row order: the first variable is the most
// significant bit of the row index.
func unpackTable(vars []string, packed []byte) (*eval.TruthTable, error) {
	n := len(vars)
	count := 1 << n
	if len(packed) < (count+7)/8 {
		return nil, fmt.Errorf("cached table for %d variables truncated: %d bytes", n, len(packed))
	}

	t := &eval.TruthTable{
		Variables: vars,
		Rows:      make([]eval.Row, 0, count),
	}
	for i := 0; i < count; i++ {
		bits := make([]bool, n)
		for k := 0; k < n; k++ {
			bits[k] = (i>>(n-1-k))&1 == 1
		}
		t.Rows = append(t.Rows, eval.Row{
			Bits:   bits,
			Result: packed[i/8]&(1<<(i%8)) != 0,
		})
	}
	return t, nil
}
