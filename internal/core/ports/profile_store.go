package ports

import "go.trai.ch/btl/internal/core/domain"

// ProfileStore defines the interface for persisting the launcher profile.
//
//go:generate mockgen -source=profile_store.go -destination=mocks/mock_profile_store.go -package=mocks
type ProfileStore interface {
	// Load reads the profile at path. A missing file yields domain.DefaultProfile.
	Load(path string) (domain.Profile, error)

	// Save writes the profile to path, creating parent directories as needed.
	Save(path string, profile domain.Profile) error
}
