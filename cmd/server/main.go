// @title Social Media API
// @version 1.0
// @description 社交网络后端：帖子、评论、点赞、关注
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/RomanNest/social-media-api/config"
	"github.com/RomanNest/social-media-api/internal/api/handler"
	"github.com/RomanNest/social-media-api/internal/api/router"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/database"
	"github.com/RomanNest/social-media-api/pkg/logger"
	"github.com/RomanNest/social-media-api/pkg/storage"
	"github.com/RomanNest/social-media-api/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracing := must(tracing.Init(ctx, cfg))
	defer func() { _ = shutdownTracing(ctx) }()

	db := must(database.InitDB(cfg))

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, token blacklist disabled", zap.Error(err))
		rdb = nil
	}
	defer func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}()

	// repositories & services
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	blobs := storage.NewLocalStorage(cfg.Upload.Dir)
	engagementSvc := service.NewEngagementService(followRepo, likeRepo, postRepo)
	userSvc := service.NewUserService(userRepo, engagementSvc, blobs)
	tokenSvc := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, rdb)
	contentSvc := service.NewContentService(postRepo, commentRepo, blobs)
	relationSvc := service.NewRelationshipService(followRepo, likeRepo, postRepo, userRepo)

	h := handler.New(userSvc, tokenSvc, contentSvc, relationSvc, engagementSvc)
	r := router.New(cfg, h, tokenSvc, userSvc)

	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
