package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xpersist/internal/adapters/codec"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xpersist/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/xpersist/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/xpersist/internal/adapters/token"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/xpersist/internal/engine/gatekeeper"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			codec.NodeID,
			token.NodeID,
			logger.NodeID,
			gatekeeper.NodeID,
			gatekeeper.RegistryNodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := loader.Load()
	if err != nil {
		return nil, err
	}

	gate, err := graft.Dep[*gatekeeper.Gatekeeper](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*domain.TokenRegistry](ctx)
	if err != nil {
		return nil, err
	}

	tokenizer, err := graft.Dep[ports.Tokenizer](ctx)
	if err != nil {
		return nil, err
	}

	codecs, err := graft.Dep[ports.CodecResolver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, gate, registry, tokenizer, codecs, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: app.Settings(),
	}, nil
}
