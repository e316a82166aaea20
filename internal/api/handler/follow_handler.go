package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/api/view"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/pkg/response"
)

// FollowUser 关注指定用户
// @Summary 关注用户
// @Tags 关系链
// @Produce json
// @Param username path string true "被关注用户名"
// @Success 201 {object} response.Response{data=view.FollowView}
// @Failure 400 {object} response.Response "自关注或重复关注"
// @Failure 404 {object} response.Response "用户名不存在"
// @Security BearerAuth
// @Router /api/v1/user/users/{username}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	f, err := h.relations.FollowByUsername(c.Request.Context(), actor, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, view.NewFollowView(f))
}

// UnfollowUser 取消关注（幂等：边不存在也返回 204）
// @Summary 取消关注
// @Tags 关系链
// @Param username path string true "被取关用户名"
// @Success 204
// @Failure 404 {object} response.Response "用户名不存在"
// @Security BearerAuth
// @Router /api/v1/user/users/{username}/unfollow [delete]
func (h *Handler) UnfollowUser(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.relations.UnfollowByUsername(c.Request.Context(), actor, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// ListFollows 查询关注边列表
// @Summary 关注列表
// @Tags 关系链
// @Produce json
// @Param follower query string false "按 follower 用户名过滤（子串）"
// @Param following query string false "按 following 用户名过滤（子串）"
// @Success 200 {object} response.Response{data=[]view.FollowView}
// @Security BearerAuth
// @Router /api/v1/social/follows [get]
func (h *Handler) ListFollows(c *gin.Context) {
	filter := repository.FollowFilter{
		FollowerUsername:  c.Query("follower"),
		FollowingUsername: c.Query("following"),
	}
	follows, err := h.relations.ListFollows(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewFollowViews(follows))
}
