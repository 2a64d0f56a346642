package stats

import (
	"github.com/smallbiznis/modguard/internal/stats/service"
	"go.uber.org/fx"
)

var Module = fx.Module("stats.service",
	fx.Provide(service.NewService),
)
