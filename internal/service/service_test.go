package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/pkg/storage"
)

type fixture struct {
	db         *gorm.DB
	relations  RelationshipService
	content    ContentService
	engagement EngagementService
	users      UserService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Comment{}, &model.Like{}, &model.Follow{},
	))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blobs := storage.NewLocalStorage(t.TempDir())

	engagement := NewEngagementService(followRepo, likeRepo, postRepo)
	return &fixture{
		db:         db,
		relations:  NewRelationshipService(followRepo, likeRepo, postRepo, userRepo),
		content:    NewContentService(postRepo, commentRepo, blobs),
		engagement: engagement,
		users:      NewUserService(userRepo, engagement, blobs),
	}
}

func (f *fixture) user(t *testing.T, id, username string, admin bool) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: username, Email: username + "@example.com", Password: "p", IsAdmin: admin}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) post(t *testing.T, actor *model.User, title string) *model.Post {
	t.Helper()
	p, err := f.content.CreatePost(context.Background(), actor, CreatePostInput{Title: title, Content: "content"})
	require.NoError(t, err)
	return p
}
