package crates

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/liner/internal/adapters/logger"
	"go.trai.ch/liner/internal/adapters/settings"
	"go.trai.ch/liner/internal/core/ports"
)

// NodeID is the unique identifier for the installed-state reader Graft node.
const NodeID graft.ID = "adapter.crates"

func init() {
	graft.Register(graft.Node[ports.InstalledReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (ports.InstalledReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewReader(cfg.CratesPath(), log), nil
		},
	})
}
