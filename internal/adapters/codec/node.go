package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xpersist/internal/core/ports"
)

const NodeID graft.ID = "adapter.codec_resolver"

func init() {
	graft.Register(graft.Node[ports.CodecResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CodecResolver, error) {
			return NewResolver(), nil
		},
	})
}
