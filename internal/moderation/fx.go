package moderation

import (
	"context"

	"github.com/smallbiznis/modguard/internal/clock"
	"github.com/smallbiznis/modguard/internal/config"
	"github.com/smallbiznis/modguard/internal/moderation/domain"
	"github.com/smallbiznis/modguard/internal/moderation/service"
	"github.com/smallbiznis/modguard/internal/moderation/store"
	"go.uber.org/fx"
)

var Module = fx.Module("moderation.service",
	fx.Provide(func() domain.Store { return store.NewMemory() }),
	fx.Provide(service.NewService),
	fx.Invoke(seedOnStart),
)

func seedOnStart(lc fx.Lifecycle, s domain.Store, clk clock.Clock, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Seed(clk.Now(), cfg.ModerationSeedCount)
			return nil
		},
	})
}
