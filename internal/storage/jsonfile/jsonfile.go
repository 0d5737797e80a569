// Package jsonfile is the default Storage backend: a single file
// holding one pretty-printed JSON array of student records, rewritten
// in full on every insert.
//
// The store file is the whole database. There is no index and no
// partial update — every operation loads the array, works on it in
// memory, and (for inserts) writes the array back. That is fine at
// this system's scale and keeps the file hand-inspectable.
//
// Concurrency: Go serves each request on its own goroutine, so an
// unguarded check-then-append would let two registrations for the same
// email both pass the duplicate scan before either writes. A single
// mutex around InsertStudent closes that race: the scan and the write
// happen under one critical section.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/aanand-mishra/student-registration/internal/storage"
	"github.com/aanand-mishra/student-registration/internal/types"
)

// JSONFile implements storage.Storage on top of one JSON-array file.
type JSONFile struct {
	mu   sync.Mutex
	path string
}

// New ensures the store file exists (creating it as an empty array on
// first run) and returns a ready-to-use *JSONFile.
func New(path string) (*JSONFile, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("jsonfile.New: stat store: %w", err)
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("jsonfile.New: create store: %w", err)
		}
	}

	return &JSONFile{path: path}, nil
}

// InsertStudent appends the record unless the email is already taken.
// The duplicate scan and the file rewrite run under one lock, so the
// insert-if-absent is atomic with respect to other inserts.
func (j *JSONFile) InsertStudent(student types.Student) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	students, err := j.load()
	if err != nil {
		return fmt.Errorf("InsertStudent: %w", err)
	}

	for _, existing := range students {
		if existing.Email == student.Email {
			return storage.ErrEmailRegistered
		}
	}

	students = append(students, student)

	if err := j.save(students); err != nil {
		return fmt.Errorf("InsertStudent: %w", err)
	}

	return nil
}

// ListStudents returns every stored record in insertion order.
func (j *JSONFile) ListStudents() ([]types.Student, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	students, err := j.load()
	if err != nil {
		return nil, fmt.Errorf("ListStudents: %w", err)
	}

	return students, nil
}

func (j *JSONFile) load() ([]types.Student, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	// Pre-allocate an empty (non-nil) slice so an empty store encodes
	// as [] rather than null further up the stack.
	students := make([]types.Student, 0)
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}

	return students, nil
}

// save replaces the store file with the full collection. The bytes go
// to a temp file in the same directory first and are renamed over the
// store, so a crash mid-write leaves the previous contents intact
// rather than a truncated array.
func (j *JSONFile) save(students []types.Student) error {
	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(j.path), "students-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store: %w", err)
	}

	if err := os.Rename(tmp.Name(), j.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}

	return nil
}
