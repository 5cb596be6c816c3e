package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xpersist/internal/core/ports"
)

const NodeID graft.ID = "adapter.filesystem"

func init() {
	graft.Register(graft.Node[ports.Filesystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Filesystem, error) {
			return New(), nil
		},
	})
}
