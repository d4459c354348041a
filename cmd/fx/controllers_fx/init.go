package controllers_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewSchedulesController),
	fx.Provide(controllers.NewFavoritesController),
	fx.Provide(controllers.NewCartController),
	fx.Provide(controllers.NewBoardsController),
	fx.Provide(controllers.NewGroupsController))
