package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/api/view"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/pkg/response"
)

// LikePost 给帖子点赞
// @Summary 点赞帖子
// @Tags 点赞
// @Produce json
// @Param id path string true "帖子ID"
// @Success 201 {object} response.Response{data=view.LikeView}
// @Failure 400 {object} response.Response "重复点赞"
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts/{id}/likes [post]
func (h *Handler) LikePost(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	l, err := h.relations.Like(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, view.NewLikeView(l))
}

// UnlikePost 取消点赞（幂等，始终 204）
// @Summary 取消点赞
// @Tags 点赞
// @Param id path string true "帖子ID"
// @Success 204
// @Failure 404 {object} response.Response "帖子不存在"
// @Security BearerAuth
// @Router /api/v1/social/posts/{id}/likes [delete]
func (h *Handler) UnlikePost(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.relations.Unlike(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// ListMyLikes 查询自己的点赞
// @Summary 我的点赞列表
// @Tags 点赞
// @Produce json
// @Success 200 {object} response.Response{data=[]view.LikeView}
// @Security BearerAuth
// @Router /api/v1/social/likes [get]
func (h *Handler) ListMyLikes(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	likes, err := h.relations.ListLikes(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewLikeViews(likes))
}

// DeleteLike 按 ID 删除自己的点赞
// @Summary 删除点赞
// @Tags 点赞
// @Param id path string true "点赞ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/likes/{id} [delete]
func (h *Handler) DeleteLike(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.relations.DeleteLike(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}
