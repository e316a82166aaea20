package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
)

func TestPostDelete_CascadesCommentsAndLikes(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedPost(t, db, "p", "a", "hello")
	seedPost(t, db, "q", "a", "other")

	require.NoError(t, commentRepo.Create(ctx, &model.Comment{UserID: "b", PostID: "p", Content: "c1"}))
	require.NoError(t, commentRepo.Create(ctx, &model.Comment{UserID: "a", PostID: "p", Content: "c2"}))
	require.NoError(t, commentRepo.Create(ctx, &model.Comment{UserID: "b", PostID: "q", Content: "keep"}))
	_, _, err := likeRepo.Create(ctx, "b", "p")
	require.NoError(t, err)
	_, _, err = likeRepo.Create(ctx, "b", "q")
	require.NoError(t, err)

	removed, err := postRepo.Delete(ctx, "p")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// 帖子连同其评论与点赞一起消失
	_, err = postRepo.GetByID(ctx, "p")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var comments int64
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", "p").Count(&comments).Error)
	assert.EqualValues(t, 0, comments)
	cnt, err := likeRepo.CountByPost(ctx, "p")
	require.NoError(t, err)
	assert.EqualValues(t, 0, cnt)

	// 其他帖子不受影响
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", "q").Count(&comments).Error)
	assert.EqualValues(t, 1, comments)
	cnt, err = likeRepo.CountByPost(ctx, "q")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestPostDelete_MissingReportsZero(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)

	removed, err := postRepo.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestPostUpdate_MutableFieldsOnly(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedPost(t, db, "p", "a", "hello")

	require.NoError(t, postRepo.Update(ctx, "p", map[string]interface{}{
		"title":   "updated",
		"hashtag": "#new",
	}))
	p, err := postRepo.GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "updated", p.Title)
	assert.Equal(t, "#new", p.Hashtag)
	assert.Equal(t, "a", p.AuthorID)
}

func TestPostList_Filters(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedUser(t, db, "c", "carol")
	p1 := &model.Post{ID: "p1", AuthorID: "a", Title: "Go concurrency", Content: "x", Hashtag: "#golang"}
	p2 := &model.Post{ID: "p2", AuthorID: "b", Title: "Cooking pasta", Content: "y", Hashtag: "#food"}
	require.NoError(t, db.Create(p1).Error)
	require.NoError(t, db.Create(p2).Error)

	_, _, err := likeRepo.Create(ctx, "b", "p1")
	require.NoError(t, err)
	_, _, err = likeRepo.Create(ctx, "c", "p1")
	require.NoError(t, err)

	// 作者用户名子串
	got, err := postRepo.List(ctx, PostFilter{AuthorUsername: "ALI"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "alice", got[0].Author.Username)

	// 标题子串
	got, err = postRepo.List(ctx, PostFilter{TitleContains: "pasta"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	// 话题子串
	got, err = postRepo.List(ctx, PostFilter{HashtagContains: "gola"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// 实时点赞数下限
	got, err = postRepo.List(ctx, PostFilter{MinLikes: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	got, err = postRepo.List(ctx, PostFilter{MinLikes: 3})
	require.NoError(t, err)
	assert.Empty(t, got)

	// 条件取交集
	got, err = postRepo.List(ctx, PostFilter{AuthorUsername: "bob", MinLikes: 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostGetDetail(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedPost(t, db, "p", "a", "hello")
	require.NoError(t, commentRepo.Create(ctx, &model.Comment{UserID: "b", PostID: "p", Content: "nice"}))
	_, _, err := likeRepo.Create(ctx, "b", "p")
	require.NoError(t, err)

	p, comments, likes, err := postRepo.GetDetail(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Author.Username)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0].User.Username)
	require.Len(t, likes, 1)
	assert.Equal(t, "bob", likes[0].User.Username)
}
