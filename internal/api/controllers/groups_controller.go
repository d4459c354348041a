package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type GroupsController struct {
	groupService services.GroupServiceInterface
}

func NewGroupsController(groupService services.GroupServiceInterface) *GroupsController {
	return &GroupsController{groupService: groupService}
}

// CreateGroup godoc
// @Summary Create a travel group
// @Description The creator becomes the owner
// @Tags Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateGroupRequest true "Group"
// @Success 200 {object} utils.APIResponse{data=response_models.Group}
// @Router /groups [post]
func (g *GroupsController) CreateGroup(c *gin.Context) {
	var req request_models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := g.groupService.CreateGroup(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group created successfully")
}

// AddMember godoc
// @Summary Invite a member by email
// @Description Owner only
// @Tags Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param request body request_models.AddGroupMemberRequest true "Member"
// @Success 200 {object} utils.APIResponse{data=response_models.Group}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /groups/{id}/members [post]
func (g *GroupsController) AddMember(c *gin.Context) {
	var req request_models.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := g.groupService.AddMember(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Member added successfully")
}

func (g *GroupsController) ListMyGroups(c *gin.Context) {
	groups, err := g.groupService.ListMyGroups(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

// RemoveMember godoc
// @Summary Remove a member or leave
// @Tags Groups
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param accountId path string true "Member account ID"
// @Success 200 {object} utils.APIResponse
// @Router /groups/{id}/members/{accountId} [delete]
func (g *GroupsController) RemoveMember(c *gin.Context) {
	err := g.groupService.RemoveMember(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("accountId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member removed successfully")
}
