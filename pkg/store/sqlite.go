package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// timeLayout is the ISO-like text form timestamps are stored in. Values
// are written in UTC at second precision.
const timeLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS servo_commands (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	angle INTEGER NOT NULL,
	pwm INTEGER NOT NULL,
	at TEXT NOT NULL
)`

// SQLite is a CommandLog backed by a local SQLite database file. The
// driver is pure Go, so the binary cross-compiles to the Pi without cgo.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening command log %q", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating servo_commands table")
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO servo_commands (angle, pwm, at) VALUES (?, ?, ?)`,
		rec.Angle, rec.Pwm, rec.At.UTC().Format(timeLayout))
	return errors.Wrap(err, "appending command record")
}

func (s *SQLite) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, angle, pwm, at FROM servo_commands ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying command log")
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var at string
		if err := rows.Scan(&rec.ID, &rec.Angle, &rec.Pwm, &at); err != nil {
			return nil, errors.Wrap(err, "scanning command record")
		}
		rec.At, err = time.ParseInLocation(timeLayout, at, time.UTC)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing timestamp %q", at)
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(rows.Err(), "reading command log")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
