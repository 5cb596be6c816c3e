package gatekeeper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xpersist/internal/adapters/fs"
	"go.trai.ch/xpersist/internal/adapters/logger"
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the token registry node.
	RegistryNodeID graft.ID = "engine.token_registry"
	// NodeID is the unique identifier for the gatekeeper node.
	NodeID graft.ID = "engine.gatekeeper"
)

func init() {
	graft.Register(graft.Node[*domain.TokenRegistry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.TokenRegistry, error) {
			return domain.NewTokenRegistry(), nil
		},
	})

	graft.Register(graft.Node[*Gatekeeper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, RegistryNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Gatekeeper, error) {
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*domain.TokenRegistry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(filesystem, registry, log), nil
		},
	})
}
