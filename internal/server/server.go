package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/modguard/internal/config"
	identitydomain "github.com/smallbiznis/modguard/internal/identity/domain"
	leaderboarddomain "github.com/smallbiznis/modguard/internal/leaderboard/domain"
	moderationdomain "github.com/smallbiznis/modguard/internal/moderation/domain"
	settingdomain "github.com/smallbiznis/modguard/internal/setting/domain"
	statsdomain "github.com/smallbiznis/modguard/internal/stats/domain"
	"github.com/smallbiznis/modguard/pkg/correlation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("server",
	fx.Provide(
		NewServer,
		NewEngine,
	),
	fx.Invoke(run),
)

type Params struct {
	fx.In

	Config      config.Config
	Log         *zap.Logger
	Stats       statsdomain.Service
	Moderation  moderationdomain.Service
	Identity    identitydomain.Service
	Leaderboard leaderboarddomain.Service
	Settings    settingdomain.Service
}

type Server struct {
	cfg         config.Config
	log         *zap.Logger
	stats       statsdomain.Service
	moderation  moderationdomain.Service
	identity    identitydomain.Service
	leaderboard leaderboarddomain.Service
	settings    settingdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:         p.Config,
		log:         p.Log.Named("server"),
		stats:       p.Stats,
		moderation:  p.Moderation,
		identity:    p.Identity,
		leaderboard: p.Leaderboard,
		settings:    p.Settings,
	}
}

func NewEngine(s *Server) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		correlation.GinMiddleware(),
		ErrorHandlingMiddleware(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.registerRoutes(engine)
	return engine
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	admin := engine.Group("/admin", RequireAdmin())

	stats := admin.Group("/stats")
	{
		stats.GET("/overview", s.getOverview)
		stats.GET("/usage", s.getUsageSeries)
		stats.GET("/revenue", s.getRevenueSeries)
		stats.GET("/registrations", s.getRegistrationSeries)
		stats.GET("/accuracy", s.getAccuracy)
		stats.GET("/top-categories", s.getTopCategories)
	}
	admin.GET("/activities", s.getRecentActivities)

	admin.GET("/reports", s.listReports)
	admin.POST("/reports/action", s.applyReportAction)

	admin.GET("/users", s.listUsers)
	admin.PUT("/users/:id/status", s.updateUserStatus)
	admin.DELETE("/users/:id", s.deleteUser)

	leaderboard := admin.Group("/leaderboard")
	{
		leaderboard.GET("/usage", s.topByUsage)
		leaderboard.GET("/spend", s.topBySpend)
	}

	admin.GET("/settings", s.listSettings)
	admin.PUT("/settings", s.updateSettings)
}

func run(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
