// Package cas stores the launch history, addressed by invocation fingerprint.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
)

// MaxRecords bounds the history file. Older launches are dropped first.
const MaxRecords = 100

// Store implements ports.HistoryStore using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	records []domain.LaunchRecord // oldest first
}

// NewStore creates a HistoryStore backed by the file at path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: filepath.Clean(path)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrHistoryReadFailed, zerr.With(err, "path", s.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return errors.Join(domain.ErrHistoryReadFailed, zerr.With(zerr.Wrap(err, "malformed history file"), "path", s.path))
	}
	return nil
}

// save must be called with mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}

	// Write next to the target and rename so a crash never truncates the history.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.json")
	if err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(domain.ErrHistoryWriteFailed, zerr.With(err, "path", s.path))
	}
	return nil
}

// Append stores a finished launch, assigning an ID when it has none.
func (s *Store) Append(record domain.LaunchRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Command = slices.Clone(record.Command)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if over := len(s.records) - MaxRecords; over > 0 {
		s.records = slices.Delete(s.records, 0, over)
	}
	return s.save()
}

// List returns up to limit records, newest first. A limit <= 0 returns all records.
func (s *Store) List(limit int) ([]domain.LaunchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.LaunchRecord, 0, n)
	for i := len(s.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Last returns the newest record with the given fingerprint, or nil if there is none.
func (s *Store) Last(fingerprint string) (*domain.LaunchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Fingerprint == fingerprint {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, nil //nolint:nilnil // absence is not an error
}
