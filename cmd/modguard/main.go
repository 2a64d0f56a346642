package main

import (
	"github.com/smallbiznis/modguard/internal/clock"
	"github.com/smallbiznis/modguard/internal/config"
	"github.com/smallbiznis/modguard/internal/identity"
	"github.com/smallbiznis/modguard/internal/leaderboard"
	"github.com/smallbiznis/modguard/internal/moderation"
	"github.com/smallbiznis/modguard/internal/seed"
	"github.com/smallbiznis/modguard/internal/server"
	"github.com/smallbiznis/modguard/internal/setting"
	"github.com/smallbiznis/modguard/internal/stats"
	"github.com/smallbiznis/modguard/pkg/db"
	"github.com/smallbiznis/modguard/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		clock.Module,
		db.Module,
		seed.Module,

		identity.Module,
		moderation.Module,
		stats.Module,
		leaderboard.Module,
		setting.Module,

		server.Module,
	)
	app.Run()
}
