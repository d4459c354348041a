package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// UpsertPlace godoc
// @Summary Create or update a place
// @Description Insert a tour item or refresh the one with the same content id. Admin only.
// @Tags Places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpsertPlaceRequest true "Place payload"
// @Success 200 {object} utils.APIResponse{data=response_models.Place}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /places [post]
func (p *PlacesController) UpsertPlace(c *gin.Context) {
	var req request_models.UpsertPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	place, err := p.placeService.UpsertPlace(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place saved successfully")
}

// GetPlace godoc
// @Summary Get a place
// @Tags Places
// @Produce json
// @Param contentId path string true "Content ID"
// @Success 200 {object} utils.APIResponse{data=response_models.Place}
// @Failure 404 {object} utils.APIResponse
// @Router /places/{contentId} [get]
func (p *PlacesController) GetPlace(c *gin.Context) {
	contentID := c.Param("contentId")
	if contentID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	place, err := p.placeService.GetPlace(c.Request.Context(), contentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places
// @Tags Places
// @Produce json
// @Param category query string false "Category"
// @Param keyword query string false "Keyword"
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=[]response_models.Place}
// @Failure 400 {object} utils.APIResponse
// @Router /places [get]
func (p *PlacesController) SearchPlaces(c *gin.Context) {
	page, pageSize, err := utils.ParsePaging(c, "20")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	places, err := p.placeService.SearchPlaces(c.Request.Context(), request_models.SearchPlacesRequest{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// NearbyPlaces godoc
// @Summary Places around a place
// @Description Straight-line search, closest first
// @Tags Places
// @Produce json
// @Param contentId path string true "Content ID"
// @Param radiusKm query number false "Radius in km (max 50)" default(5)
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} utils.APIResponse{data=[]response_models.Place}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/{contentId}/nearby [get]
func (p *PlacesController) NearbyPlaces(c *gin.Context) {
	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radiusKm", "5"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	places, err := p.placeService.NearbyPlaces(c.Request.Context(), c.Param("contentId"), radiusKm, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Nearby places fetched successfully")
}

// SimilarPlaces godoc
// @Summary Places similar to a place
// @Description Embedding similarity search. 503 when no AI provider is configured.
// @Tags Places
// @Produce json
// @Param contentId path string true "Content ID"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} utils.APIResponse{data=[]response_models.Place}
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /places/{contentId}/similar [get]
func (p *PlacesController) SimilarPlaces(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	places, err := p.placeService.SimilarPlaces(c.Request.Context(), c.Param("contentId"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Similar places fetched successfully")
}
