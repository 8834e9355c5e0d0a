package fixlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const initSchemaSQL = `
CREATE TABLE IF NOT EXISTS fixes (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	time      INTEGER NOT NULL,
	talker    TEXT NOT NULL,
	code      TEXT NOT NULL,
	latitude  REAL NOT NULL,
	longitude REAL NOT NULL,
	altitude  REAL,
	quality   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS fixes_time ON fixes (time);
`

const (
	insertFixSQL = `INSERT INTO fixes (time, talker, code, latitude, longitude, altitude, quality)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectRecentSQL = `SELECT id, time, talker, code, latitude, longitude, altitude, quality
		FROM fixes ORDER BY id DESC LIMIT ?`
	countFixesSQL = `SELECT COUNT(*) FROM fixes`
)

// Store is a fix log backed by an SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", path, "_journal_mode=WAL&_synchronous=NORMAL"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(initSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a fix and returns its ID.
func (s *Store) Record(ctx context.Context, f Fix) (int64, error) {
	var alt sql.NullFloat64
	if f.Altitude != nil {
		alt = sql.NullFloat64{Float64: *f.Altitude, Valid: true}
	}
	res, err := s.db.ExecContext(ctx, insertFixSQL,
		f.Time.UTC().UnixMilli(), f.Talker, f.Code, f.Latitude, f.Longitude, alt, f.Quality)
	if err != nil {
		return 0, fmt.Errorf("inserting fix: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting fix ID: %w", err)
	}
	return id, nil
}

// Recent returns up to n fixes, newest first.
func (s *Store) Recent(ctx context.Context, n int) (fixes []Fix, err error) {
	rows, err := s.db.QueryContext(ctx, selectRecentSQL, n)
	if err != nil {
		return nil, fmt.Errorf("querying fixes: %w", err)
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var (
			f   Fix
			ms  int64
			alt sql.NullFloat64
		)
		if err = rows.Scan(&f.ID, &ms, &f.Talker, &f.Code, &f.Latitude, &f.Longitude, &alt, &f.Quality); err != nil {
			return nil, fmt.Errorf("scanning fix: %w", err)
		}
		f.Time = time.UnixMilli(ms).UTC()
		if alt.Valid {
			f.Altitude = &alt.Float64
		}
		fixes = append(fixes, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading fixes: %w", err)
	}
	return fixes, nil
}

// Count returns the number of recorded fixes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, countFixesSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting fixes: %w", err)
	}
	return n, nil
}

func closeWithError(cl interface{ Close() error }, err *error) {
	if cErr := cl.Close(); cErr != nil && *err == nil {
		*err = cErr
	}
}
