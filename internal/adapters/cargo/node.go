package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/liner/internal/adapters/logger"
	"go.trai.ch/liner/internal/adapters/settings"
	"go.trai.ch/liner/internal/adapters/shell"
	"go.trai.ch/liner/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			executor, err := graft.Dep[*shell.Executor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return NewInstaller(cfg.Cargo, executor, log), nil
		},
	})
}
