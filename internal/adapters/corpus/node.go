package corpus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tinystr/internal/core/ports"
)

// NodeID is the unique identifier for the corpus reader Graft node.
const NodeID graft.ID = "adapter.corpus"

func init() {
	graft.Register(graft.Node[ports.CorpusReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CorpusReader, error) {
			return NewFileReader(), nil
		},
	})
}
