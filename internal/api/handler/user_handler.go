package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/api/view"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/response"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,max=150,username"`
	Password string `json:"password" binding:"required,min=5"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=150,username"`
	Bio      *string `json:"bio"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// Register 注册
// @Summary 注册用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response{data=view.UserView}
// @Failure 400 {object} response.Response "email/username 已占用"
// @Router /api/v1/user/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, view.NewUserView(u))
}

// Login 登录签发令牌对
// @Summary 获取令牌
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录凭证"
// @Success 200 {object} response.Response{data=service.TokenPair}
// @Failure 401 {object} response.Response
// @Router /api/v1/user/token [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	pair, err := h.tokens.Issue(u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pair)
}

// RefreshToken 刷新令牌对
// @Summary 刷新令牌
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body refreshRequest true "refresh 令牌"
// @Success 200 {object} response.Response{data=service.TokenPair}
// @Failure 401 {object} response.Response
// @Router /api/v1/user/token/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pair, err := h.tokens.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pair)
}

// VerifyToken 校验 access 令牌
// @Summary 校验令牌
// @Tags 用户
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/user/token/verify [post]
func (h *Handler) VerifyToken(c *gin.Context) {
	// 到达这里说明 Auth 中间件已放行
	response.Success(c, nil)
}

// Logout 登出，refresh 令牌进黑名单
// @Summary 登出
// @Tags 用户
// @Accept json
// @Param request body refreshRequest true "refresh 令牌"
// @Success 204
// @Failure 401 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/user/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.tokens.Revoke(c.Request.Context(), req.Refresh); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Me 当前用户资料（带实时关注计数）
// @Summary 我的资料
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=view.UserProfileView}
// @Security BearerAuth
// @Router /api/v1/user/me [get]
func (h *Handler) Me(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	p, err := h.users.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewUserProfileView(p.User, p.Followers, p.Following))
}

// UpdateMe 更新当前用户资料
// @Summary 更新我的资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateUserRequest true "可变字段"
// @Success 200 {object} response.Response{data=view.UserView}
// @Security BearerAuth
// @Router /api/v1/user/me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	actor := middleware.CurrentUser(c)
	u, err := h.users.Update(c.Request.Context(), actor, service.UpdateUserInput{
		Username: req.Username,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewUserView(u))
}

// DeleteMe 注销当前用户
// @Summary 删除我的账号
// @Tags 用户
// @Success 204
// @Security BearerAuth
// @Router /api/v1/user/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.users.Delete(c.Request.Context(), actor); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Param email query string false "按 email 过滤（子串）"
// @Param username query string false "按用户名过滤（子串）"
// @Param bio query string false "按 bio 过滤（子串）"
// @Success 200 {object} response.Response{data=[]view.UserView}
// @Security BearerAuth
// @Router /api/v1/user/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	filter := repository.UserFilter{
		Email:    c.Query("email"),
		Username: c.Query("username"),
		Bio:      c.Query("bio"),
	}
	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewUserViews(users))
}

// GetUser 按用户名查用户资料
// @Summary 用户详情
// @Tags 用户
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} response.Response{data=view.UserProfileView}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/user/users/{username} [get]
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	p, err := h.users.Profile(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewUserProfileView(p.User, p.Followers, p.Following))
}

// UploadProfileImage 上传头像
// @Summary 上传头像
// @Tags 用户
// @Accept mpfd
// @Produce json
// @Param image formData file true "图片文件"
// @Success 200 {object} response.Response{data=view.UserView}
// @Security BearerAuth
// @Router /api/v1/user/me/image [post]
func (h *Handler) UploadProfileImage(c *gin.Context) {
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
	u, err := h.users.UploadProfileImage(c.Request.Context(), actor, data, fh.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, view.NewUserView(u))
}
