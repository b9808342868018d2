// Package update checks whether a newer btl release exists.
package update

import (
	"context"
	"errors"

	"github.com/tcnksm/go-latest"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// Owner and Repository locate the btl releases on GitHub.
	Owner      = "traiproject"
	Repository = "btl"
)

// Checker implements ports.UpdateChecker with go-latest.
type Checker struct {
	source latest.Source
}

// NewChecker creates a Checker reading release tags from GitHub.
func NewChecker() *Checker {
	return NewCheckerWithSource(&latest.GithubTag{
		Owner:      Owner,
		Repository: Repository,
	})
}

// NewCheckerWithSource creates a Checker for any go-latest source.
func NewCheckerWithSource(source latest.Source) *Checker {
	return &Checker{source: source}
}

// Check compares current against the newest release.
func (c *Checker) Check(ctx context.Context, current string) (domain.VersionCheck, error) {
	type result struct {
		res *latest.CheckResponse
		err error
	}

	if err := ctx.Err(); err != nil {
		return domain.VersionCheck{}, errors.Join(domain.ErrUpdateCheckFailed, err)
	}

	// go-latest has no context support; the lookup is abandoned, not aborted, on cancellation.
	done := make(chan result, 1)
	go func() {
		res, err := latest.Check(c.source, current)
		done <- result{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.VersionCheck{}, errors.Join(domain.ErrUpdateCheckFailed, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return domain.VersionCheck{}, errors.Join(domain.ErrUpdateCheckFailed, zerr.With(r.err, "current", current))
		}
		return domain.VersionCheck{
			Current:  current,
			Latest:   r.res.Current,
			Outdated: r.res.Outdated,
		}, nil
	}
}
