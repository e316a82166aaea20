package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/api/view"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/response"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
	Hashtag string `json:"hashtag" binding:"max=255"`
}

type updatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Content *string `json:"content"`
	Hashtag *string `json:"hashtag" binding:"omitempty,max=255"`
}

// CreatePost 发帖
// @Summary 创建帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Response{data=view.PostView}
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	p, err := h.content.CreatePost(c.Request.Context(), actor, service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Hashtag: req.Hashtag,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, view.NewPostView(p))
}

// ListPosts 帖子列表，条件取交集
// @Summary 帖子列表
// @Tags 帖子
// @Produce json
// @Param username query string false "按作者用户名过滤（子串）"
// @Param title query string false "按标题过滤（子串）"
// @Param hashtag query string false "按话题过滤（子串）"
// @Param likes query int false "实时点赞数下限"
// @Success 200 {object} response.Response{data=[]view.PostSummaryView}
// @Security BearerAuth
// @Router /api/v1/social/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	minLikes, _ := strconv.Atoi(c.Query("likes"))
	filter := repository.PostFilter{
		AuthorUsername:  c.Query("username"),
		TitleContains:   c.Query("title"),
		HashtagContains: c.Query("hashtag"),
		MinLikes:        minLikes,
	}
	posts, err := h.content.ListPosts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]view.PostSummaryView, 0, len(posts))
	for _, p := range posts {
		likes, err := h.engagement.LikeCount(c.Request.Context(), p.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		comments, err := h.engagement.CommentCount(c.Request.Context(), p.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, view.NewPostSummaryView(p, comments, likes))
	}
	response.Success(c, out)
}

// GetPost 帖子详情
// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response{data=view.PostDetailView}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	p, comments, likes, err := h.content.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewPostDetailView(p, comments, likes))
}

// UpdatePost 更新帖子（作者或管理员）
// @Summary 更新帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body updatePostRequest true "可变字段"
// @Success 200 {object} response.Response{data=view.PostView}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts/{id} [patch]
func (h *Handler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	p, err := h.content.UpdatePost(c.Request.Context(), actor, c.Param("id"), service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Hashtag: req.Hashtag,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewPostView(p))
}

// DeletePost 删除帖子，级联删除其评论与点赞
// @Summary 删除帖子
// @Tags 帖子
// @Param id path string true "帖子ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.content.DeletePost(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// UploadPostImage 上传帖子图片
// @Summary 上传帖子图片
// @Tags 帖子
// @Accept mpfd
// @Produce json
// @Param id path string true "帖子ID"
// @Param image formData file true "图片文件"
// @Success 200 {object} response.Response{data=view.PostView}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/social/posts/{id}/image [post]
func (h *Handler) UploadPostImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	p, err := h.content.UploadPostImage(c.Request.Context(), actor, c.Param("id"), data, fh.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewPostView(p))
}
