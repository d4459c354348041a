package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{favoriteService: favoriteService}
}

// AddFavorite godoc
// @Summary Add a favorite place
// @Tags Favorites
// @Accept json
// @Security BearerAuth
// @Param request body request_models.AddFavoriteRequest true "Place"
// @Success 200 {object} utils.APIResponse
// @Router /favorites [post]
func (f *FavoritesController) AddFavorite(c *gin.Context) {
	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.favoriteService.AddFavorite(c.Request.Context(), c.GetString("user_id"), req.ContentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite added successfully")
}

func (f *FavoritesController) RemoveFavorite(c *gin.Context) {
	if err := f.favoriteService.RemoveFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("contentId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed successfully")
}

func (f *FavoritesController) ListFavorites(c *gin.Context) {
	favorites, err := f.favoriteService.ListFavorites(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}
