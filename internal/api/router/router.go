package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/RomanNest/social-media-api/docs"

	"github.com/RomanNest/social-media-api/config"
	"github.com/RomanNest/social-media-api/internal/api/handler"
	"github.com/RomanNest/social-media-api/internal/middleware"
	"github.com/RomanNest/social-media-api/internal/service"
)

// New 组装路由与中间件
func New(cfg *config.Config, h *handler.Handler, tokens service.TokenService, users service.UserService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("social-media-api"))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.Auth(tokens, users)

	user := r.Group("/api/v1/user")
	{
		user.POST("/register", h.Register)
		user.POST("/token", h.Login)
		user.POST("/token/refresh", h.RefreshToken)
		user.POST("/token/verify", auth, h.VerifyToken)
		user.POST("/logout", auth, h.Logout)

		user.GET("/me", auth, h.Me)
		user.PATCH("/me", auth, h.UpdateMe)
		user.DELETE("/me", auth, h.DeleteMe)
		user.POST("/me/image", auth, h.UploadProfileImage)

		user.GET("/users", auth, h.ListUsers)
		user.GET("/users/:username", auth, h.GetUser)
		user.POST("/users/:username/follow", auth, h.FollowUser)
		user.DELETE("/users/:username/unfollow", auth, h.UnfollowUser)
	}

	social := r.Group("/api/v1/social", auth)
	{
		social.POST("/posts", h.CreatePost)
		social.GET("/posts", h.ListPosts)
		social.GET("/posts/:id", h.GetPost)
		social.PATCH("/posts/:id", h.UpdatePost)
		social.DELETE("/posts/:id", h.DeletePost)
		social.POST("/posts/:id/image", h.UploadPostImage)

		social.POST("/posts/:id/comments", h.AddComment)
		social.POST("/posts/:id/likes", h.LikePost)
		social.DELETE("/posts/:id/likes", h.UnlikePost)

		social.GET("/comments", h.ListComments)
		social.GET("/comments/:id", h.GetComment)
		social.PATCH("/comments/:id", h.UpdateComment)
		social.DELETE("/comments/:id", h.DeleteComment)

		social.GET("/likes", h.ListMyLikes)
		social.DELETE("/likes/:id", h.DeleteLike)

		social.GET("/follows", h.ListFollows)
	}

	return r
}
