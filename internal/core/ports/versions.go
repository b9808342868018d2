package ports

import (
	"context"

	"go.trai.ch/btl/internal/core/domain"
)

// VersionSource defines the interface for discovering buildable Minecraft revisions.
//
//go:generate mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks
type VersionSource interface {
	// Versions returns the available revisions, newest first, without duplicates.
	Versions(ctx context.Context) ([]string, error)

	// Check compares rev against the newest available revision.
	Check(ctx context.Context, rev string) (domain.VersionCheck, error)
}
