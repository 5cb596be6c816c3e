package token

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xpersist/internal/core/ports"
)

const NodeID graft.ID = "adapter.tokenizer"

func init() {
	graft.Register(graft.Node[ports.Tokenizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tokenizer, error) {
			return New(), nil
		},
	})
}
