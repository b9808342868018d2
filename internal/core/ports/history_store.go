package ports

import "go.trai.ch/btl/internal/core/domain"

// HistoryStore defines the interface for recording past launches.
//
//go:generate mockgen -source=history_store.go -destination=mocks/mock_history_store.go -package=mocks
type HistoryStore interface {
	// Append stores a finished launch.
	Append(record domain.LaunchRecord) error

	// List returns up to limit records, newest first. A limit <= 0 returns all records.
	List(limit int) ([]domain.LaunchRecord, error)

	// Last returns the newest record with the given fingerprint.
	// Returns nil, nil if not found.
	Last(fingerprint string) (*domain.LaunchRecord, error)
}
