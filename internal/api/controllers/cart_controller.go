package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type CartController struct {
	cartService services.CartServiceInterface
}

func NewCartController(cartService services.CartServiceInterface) *CartController {
	return &CartController{cartService: cartService}
}

// AddItem godoc
// @Summary Put a place in the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddCartItemRequest true "Item"
// @Success 200 {object} utils.APIResponse{data=response_models.CartItem}
// @Router /cart/items [post]
func (ct *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := ct.cartService.AddItem(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Cart item added successfully")
}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Security BearerAuth
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} utils.APIResponse
// @Router /cart/items/{itemId} [delete]
func (ct *CartController) RemoveItem(c *gin.Context) {
	if err := ct.cartService.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("itemId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cart item removed successfully")
}

// ListItems godoc
// @Summary My cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response_models.CartItem}
// @Router /cart [get]
func (ct *CartController) ListItems(c *gin.Context) {
	items, err := ct.cartService.ListItems(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Cart fetched successfully")
}

// MoveToSchedule godoc
// @Summary Move cart items into a schedule day
// @Tags Cart
// @Accept json
// @Security BearerAuth
// @Param request body request_models.CartToScheduleRequest true "Target"
// @Success 200 {object} utils.APIResponse
// @Router /cart/to-schedule [post]
func (ct *CartController) MoveToSchedule(c *gin.Context) {
	var req request_models.CartToScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.cartService.MoveToSchedule(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cart items moved to schedule")
}
