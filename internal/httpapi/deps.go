package httpapi

import (
	"context"
	"sync/atomic"

	"localjobs-engine/internal/config"
	"localjobs-engine/internal/events"
	"localjobs-engine/internal/remote"
	"localjobs-engine/internal/repo"
)

type Deps struct {
	Repos repo.Repos

	Hub    *events.Hub
	Remote *remote.Service

	// Refresh entrypoint (inject for testability)
	RunRefresh func(ctx context.Context)

	// Hot-reloadable config
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (d Deps) cfg() config.Config {
	return d.CfgVal.Load().(config.Config)
}
