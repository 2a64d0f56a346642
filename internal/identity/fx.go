package identity

import (
	"github.com/smallbiznis/modguard/internal/identity/repository"
	"github.com/smallbiznis/modguard/internal/identity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("identity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
