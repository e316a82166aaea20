package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/config"
	"github.com/RomanNest/social-media-api/internal/api/handler"
	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/internal/service"
	"github.com/RomanNest/social-media-api/pkg/storage"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Comment{}, &model.Like{}, &model.Follow{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blobs := storage.NewLocalStorage(t.TempDir())

	engagement := service.NewEngagementService(followRepo, likeRepo, postRepo)
	users := service.NewUserService(userRepo, engagement, blobs)
	tokens := service.NewTokenService("test-secret", time.Minute, time.Hour, rdb)
	content := service.NewContentService(postRepo, commentRepo, blobs)
	relations := service.NewRelationshipService(followRepo, likeRepo, postRepo, userRepo)

	h := handler.New(users, tokens, content, relations, engagement)

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	return New(cfg, h, tokens, users)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func register(t *testing.T, r *gin.Engine, username string) {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/user/register", "", gin.H{
		"email":    username + "@example.com",
		"username": username,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func login(t *testing.T, r *gin.Engine, username string) service.TokenPair {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/user/token", "", gin.H{
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var pair service.TokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	return pair
}

func TestRouter_AuthRequired(t *testing.T) {
	r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/social/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/social/posts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "alice")

	// email 已占用
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/user/register", "", gin.H{
		"email":    "alice@example.com",
		"username": "alice2",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "already")

	// 密码错
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/user/token", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	pair := login(t, r, "alice")
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/user/me", pair.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username  string `json:"username"`
		Followers int64  `json:"followers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice", me.Username)
	assert.EqualValues(t, 0, me.Followers)
}

func TestRouter_FollowFlow(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "alice")
	register(t, r, "bob")
	pair := login(t, r, "alice")

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/user/users/bob/follow", pair.Access, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var edge struct {
		Follower  string `json:"follower"`
		Following string `json:"following"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &edge))
	assert.Equal(t, "alice", edge.Follower)
	assert.Equal(t, "bob", edge.Following)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/user/users/bob/follow", pair.Access, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "you have already followed this user", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/user/users/alice/follow", pair.Access, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "you can't follow yourself", env.Message)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/user/users/ghost/follow", pair.Access, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 取关幂等
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/user/users/bob/unfollow", pair.Access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/user/users/bob/unfollow", pair.Access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_PostLifecycle(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "alice")
	pair := login(t, r, "alice")

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/social/posts", pair.Access, gin.H{
		"title":   "hello",
		"content": "world",
		"hashtag": "#go",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.NotEmpty(t, post.ID)

	likesPath := fmt.Sprintf("/api/v1/social/posts/%s/likes", post.ID)
	w, env = doJSON(t, r, http.MethodPost, likesPath, pair.Access, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var lv struct {
		User string `json:"user"`
		Post string `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &lv))
	assert.Equal(t, "alice", lv.User)
	assert.Equal(t, "hello", lv.Post)
	w, env = doJSON(t, r, http.MethodPost, likesPath, pair.Access, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "you have already liked this post", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/social/posts?likes=1", pair.Access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []struct {
		ID    string `json:"id"`
		Likes int64  `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 1, summaries[0].Likes)

	// 取消点赞幂等
	w, _ = doJSON(t, r, http.MethodDelete, likesPath, pair.Access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, likesPath, pair.Access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/social/posts/"+post.ID, pair.Access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/social/posts/"+post.ID, pair.Access, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_LogoutBlacklistsRefresh(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "alice")
	pair := login(t, r, "alice")

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/user/logout", pair.Access, gin.H{"refresh": pair.Refresh})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/user/token/refresh", "", gin.H{"refresh": pair.Refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// access 令牌继续有效到过期
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/user/me", pair.Access, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
