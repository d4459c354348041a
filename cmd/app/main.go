package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/ai_fx"
	"tripmate/cmd/fx/boards_fx"
	"tripmate/cmd/fx/cart_fx"
	"tripmate/cmd/fx/config_fx"
	"tripmate/cmd/fx/controllers_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/favorites_fx"
	"tripmate/cmd/fx/groups_fx"
	"tripmate/cmd/fx/logger_fx"
	"tripmate/cmd/fx/memcache_fx"
	"tripmate/cmd/fx/places_fx"
	"tripmate/cmd/fx/schedules_fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/infra"
	"tripmate/internal/models/db_models"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		places_fx.Module,
		schedules_fx.Module,
		favorites_fx.Module,
		cart_fx.Module,
		boards_fx.Module,
		groups_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type Controllers struct {
	fx.In

	Account   *controllers.AccountController
	Places    *controllers.PlacesController
	Schedules *controllers.SchedulesController
	Favorites *controllers.FavoritesController
	Cart      *controllers.CartController
	Boards    *controllers.BoardsController
	Groups    *controllers.GroupsController
}

func ProvideRouter(
	cfg *infra.Config,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	ctrls Controllers) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	auth := middleware.JWTAuthMiddleware(tokens, revoked)
	RegisterRoutes(r, auth, ctrls)

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, ctrls Controllers) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrls.Account.Register)
	accounts.POST("/login", ctrls.Account.Login)
	accounts.POST("/logout", auth, ctrls.Account.Logout)
	accounts.GET("/me", auth, ctrls.Account.Me)

	places := r.Group("/places")
	places.GET("", ctrls.Places.SearchPlaces)
	places.GET("/:contentId", ctrls.Places.GetPlace)
	places.GET("/:contentId/nearby", ctrls.Places.NearbyPlaces)
	places.GET("/:contentId/similar", ctrls.Places.SimilarPlaces)
	places.POST("", auth, middleware.RoleMiddleware(db_models.RoleAdmin), ctrls.Places.UpsertPlace)

	schedules := r.Group("/schedules", auth)
	schedules.POST("", ctrls.Schedules.CreateSchedule)
	schedules.GET("", ctrls.Schedules.ListSchedules)
	schedules.GET("/:id", ctrls.Schedules.GetSchedule)
	schedules.PUT("/:id", ctrls.Schedules.UpdateSchedule)
	schedules.DELETE("/:id", ctrls.Schedules.DeleteSchedule)
	schedules.POST("/:id/items", ctrls.Schedules.AddItem)
	schedules.DELETE("/:id/items/:itemId", ctrls.Schedules.DeleteItem)
	schedules.POST("/:id/optimize", ctrls.Schedules.OptimizeSchedule)
	schedules.POST("/:id/auto-plan", ctrls.Schedules.AutoPlanSchedule)

	favorites := r.Group("/favorites", auth)
	favorites.POST("", ctrls.Favorites.AddFavorite)
	favorites.GET("", ctrls.Favorites.ListFavorites)
	favorites.DELETE("/:contentId", ctrls.Favorites.RemoveFavorite)

	cart := r.Group("/cart", auth)
	cart.GET("", ctrls.Cart.ListItems)
	cart.POST("/items", ctrls.Cart.AddItem)
	cart.DELETE("/items/:itemId", ctrls.Cart.RemoveItem)
	cart.POST("/to-schedule", ctrls.Cart.MoveToSchedule)

	boards := r.Group("/boards")
	boards.GET("", ctrls.Boards.ListBoards)
	boards.GET("/:id", ctrls.Boards.GetBoard)
	boards.GET("/:id/comments", ctrls.Boards.ListComments)
	boards.POST("", auth, ctrls.Boards.CreateBoard)
	boards.PUT("/:id", auth, ctrls.Boards.UpdateBoard)
	boards.DELETE("/:id", auth, ctrls.Boards.DeleteBoard)
	boards.POST("/:id/comments", auth, ctrls.Boards.AddComment)
	boards.DELETE("/:id/comments/:commentId", auth, ctrls.Boards.DeleteComment)

	groups := r.Group("/groups", auth)
	groups.POST("", ctrls.Groups.CreateGroup)
	groups.GET("", ctrls.Groups.ListMyGroups)
	groups.POST("/:id/members", ctrls.Groups.AddMember)
	groups.DELETE("/:id/members/:accountId", ctrls.Groups.RemoveMember)
}
