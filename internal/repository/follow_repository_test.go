package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCreate_PairUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	_, created, err := repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, created)

	// 同向重复被唯一索引拦截
	_, created, err = repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, created)

	// 反向边是独立记录
	_, created, err = repo.Create(ctx, "b", "a")
	require.NoError(t, err)
	assert.True(t, created)

	follows, err := repo.List(ctx, FollowFilter{})
	require.NoError(t, err)
	assert.Len(t, follows, 2)
}

func TestFollowDelete_ReportsRowsRemoved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	_, _, err := repo.Create(ctx, "a", "b")
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// 幂等：不存在的边删除 0 行，不报错
	removed, err = repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestFollowCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedUser(t, db, "c", "carol")

	_, _, err := repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	_, _, err = repo.Create(ctx, "c", "b")
	require.NoError(t, err)
	_, _, err = repo.Create(ctx, "b", "a")
	require.NoError(t, err)

	followers, err := repo.CountFollowers(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers)

	following, err := repo.CountFollowing(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, following)

	// 计数始终等于底层边集合
	removed, err := repo.Delete(ctx, "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
	followers, err = repo.CountFollowers(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 1, followers)
}

func TestFollowList_FilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")
	seedUser(t, db, "c", "carol")

	_, _, err := repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, _, err = repo.Create(ctx, "c", "b")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, _, err = repo.Create(ctx, "b", "a")
	require.NoError(t, err)

	// 新的在前
	all, err := repo.List(ctx, FollowFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].FollowerID)
	assert.Equal(t, "c", all[1].FollowerID)
	assert.Equal(t, "a", all[2].FollowerID)

	// follower 用户名子串过滤，大小写不敏感
	got, err := repo.List(ctx, FollowFilter{FollowerUsername: "ARO"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].FollowerID)
	assert.Equal(t, "carol", got[0].Follower.Username)

	// following 过滤
	got, err = repo.List(ctx, FollowFilter{FollowingUsername: "bob"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// 两个条件取交集
	got, err = repo.List(ctx, FollowFilter{FollowerUsername: "alice", FollowingUsername: "bob"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].FollowerID)
}

func TestFollowExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	seedUser(t, db, "a", "alice")
	seedUser(t, db, "b", "bob")

	ok, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = repo.Create(ctx, "a", "b")
	require.NoError(t, err)

	ok, err = repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	// 有序对：反向不算存在
	ok, err = repo.Exists(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, ok)
}
