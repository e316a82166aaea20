package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/response"
)

// Handler 聚合各领域服务，供路由注册
type Handler struct {
	users      service.UserService
	tokens     service.TokenService
	content    service.ContentService
	relations  service.RelationshipService
	engagement service.EngagementService
}

func New(
	users service.UserService,
	tokens service.TokenService,
	content service.ContentService,
	relations service.RelationshipService,
	engagement service.EngagementService,
) *Handler {
	return &Handler{users: users, tokens: tokens, content: content, relations: relations, engagement: engagement}
}

// respondError 领域错误到 HTTP 状态码的唯一映射点
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrDuplicateFollow),
		errors.Is(err, service.ErrDuplicateLike),
		errors.Is(err, service.ErrDuplicateUser):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
