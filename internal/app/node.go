package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/btl/internal/adapters/cas"                                //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/config"                             //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/fetch"                              //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/logger"                             //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/shell"                              //nolint:depguard // Wired in app layer
	progrockadapter "go.trai.ch/btl/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/update"                             //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/adapters/versions"                           //nolint:depguard // Wired in app layer
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/btl/internal/engine/settings"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			config.NodeID,
			shell.NodeID,
			cas.NodeID,
			versions.NodeID,
			fetch.NodeID,
			update.NodeID,
			progrockadapter.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manager, err := graft.Dep[*settings.Manager](ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := graft.Dep[ports.ProfileStore](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	history, err := graft.Dep[ports.HistoryStore](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.VersionSource](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.JarFetcher](ctx)
	if err != nil {
		return nil, err
	}

	updates, err := graft.Dep[ports.UpdateChecker](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manager, profiles, launcher, history, source, fetcher, updates, telemetry, log), nil
}
