package ports

import (
	"context"

	"go.trai.ch/btl/internal/core/domain"
)

// JarFetcher defines the interface for acquiring BuildTools.jar.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type JarFetcher interface {
	// Fetch downloads the latest BuildTools.jar to dest.
	Fetch(ctx context.Context, dest string) error
}

// UpdateChecker defines the interface for checking whether a newer btl release exists.
type UpdateChecker interface {
	// Check compares the running version against the latest release.
	Check(ctx context.Context, current string) (domain.VersionCheck, error)
}
