package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/api/view"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/pkg/response"
)

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment 评论帖子
// @Summary 添加评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 201 {object} response.Response{data=view.CommentView}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response "帖子不存在"
// @Security BearerAuth
// @Router /api/v1/social/posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	cm, err := h.content.AddComment(c.Request.Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, view.NewCommentView(cm))
}

// ListComments 全部评论
// @Summary 评论列表
// @Tags 评论
// @Produce json
// @Success 200 {object} response.Response{data=[]view.CommentView}
// @Security BearerAuth
// @Router /api/v1/social/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.content.ListComments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewCommentViews(comments))
}

// GetComment 评论详情
// @Summary 评论详情
// @Tags 评论
// @Produce json
// @Param id path string true "评论ID"
// @Success 200 {object} response.Response{data=view.CommentView}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/comments/{id} [get]
func (h *Handler) GetComment(c *gin.Context) {
	cm, err := h.content.GetComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewCommentView(cm))
}

// UpdateComment 更新评论（作者或管理员）
// @Summary 更新评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "评论ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response{data=view.CommentView}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/comments/{id} [patch]
func (h *Handler) UpdateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	cm, err := h.content.UpdateComment(c.Request.Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewCommentView(cm))
}

// DeleteComment 删除评论（作者或管理员）
// @Summary 删除评论
// @Tags 评论
// @Param id path string true "评论ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.content.DeleteComment(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}
