// Package sqlite is an alternative Storage backend using Go's standard
// database/sql package with the sqlite3 driver.
//
// Where the jsonfile backend serializes inserts behind a mutex, this
// one pushes email uniqueness into the store itself: the UNIQUE
// constraint on the email column makes insert-if-absent atomic at the
// database level, so concurrent duplicate registrations cannot both
// land no matter how the process schedules them.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/student-registration/internal/storage"
	"github.com/aanand-mishra/student-registration/internal/types"

	// Registers the "sqlite3" driver; also used directly to recognise
	// UNIQUE-constraint violations.
	"github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at path, creates the students table if
// it does not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	// email is UNIQUE: this is the duplicate-registration gate.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id          TEXT PRIMARY KEY,
			full_name   TEXT NOT NULL,
			dob         TEXT NOT NULL DEFAULT '',
			gender      TEXT NOT NULL DEFAULT '',
			blood_group TEXT NOT NULL DEFAULT '',
			nationality TEXT NOT NULL DEFAULT '',
			email       TEXT NOT NULL UNIQUE,
			phone       TEXT NOT NULL DEFAULT '',
			alt_phone   TEXT NOT NULL DEFAULT '',
			address     TEXT NOT NULL DEFAULT '',
			city        TEXT NOT NULL DEFAULT '',
			state       TEXT NOT NULL DEFAULT '',
			pin_code    TEXT NOT NULL DEFAULT '',
			course      TEXT NOT NULL DEFAULT '',
			branch      TEXT NOT NULL DEFAULT '',
			year        TEXT NOT NULL DEFAULT '',
			college     TEXT NOT NULL DEFAULT '',
			roll_number TEXT NOT NULL DEFAULT '',
			password    TEXT NOT NULL,
			created_at  TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// InsertStudent inserts the record; a UNIQUE violation on email is
// reported as storage.ErrEmailRegistered so handlers need not know
// which backend they are talking to.
func (s *SQLite) InsertStudent(student types.Student) error {
	stmt, err := s.Db.Prepare(`
		INSERT INTO students (
			id, full_name, dob, gender, blood_group, nationality, email,
			phone, alt_phone, address, city, state, pin_code,
			course, branch, year, college, roll_number, password, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("InsertStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		student.ID, student.FullName, student.DOB, student.Gender,
		student.BloodGroup, student.Nationality, student.Email,
		student.Phone, student.AltPhone, student.Address, student.City,
		student.State, student.PinCode, student.Course, student.Branch,
		student.Year, student.College, student.RollNumber,
		student.Password, student.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return storage.ErrEmailRegistered
		}
		return fmt.Errorf("InsertStudent: exec: %w", err)
	}

	return nil
}

// ListStudents returns all student rows in insertion order.
func (s *SQLite) ListStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(`
		SELECT id, full_name, dob, gender, blood_group, nationality, email,
		       phone, alt_phone, address, city, state, pin_code,
		       course, branch, year, college, roll_number, password, created_at
		FROM students ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		var createdAt string

		if err := rows.Scan(
			&student.ID, &student.FullName, &student.DOB, &student.Gender,
			&student.BloodGroup, &student.Nationality, &student.Email,
			&student.Phone, &student.AltPhone, &student.Address,
			&student.City, &student.State, &student.PinCode,
			&student.Course, &student.Branch, &student.Year,
			&student.College, &student.RollNumber, &student.Password,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}

		student.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("ListStudents: parse created_at: %w", err)
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}

	return students, nil
}
