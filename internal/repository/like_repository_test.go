package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCreate_PairUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u", "user")
	seedPost(t, db, "p", "u", "hello")

	_, created, err := repo.Create(ctx, "u", "p")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = repo.Create(ctx, "u", "p")
	require.NoError(t, err)
	assert.False(t, created)

	cnt, err := repo.CountByPost(ctx, "p")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestLikeDeleteThenRecreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u", "user")
	seedPost(t, db, "p", "u", "hello")

	_, created, err := repo.Create(ctx, "u", "p")
	require.NoError(t, err)
	require.True(t, created)

	removed, err := repo.DeleteByUserAndPost(ctx, "u", "p")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// 取消后可重新点赞
	_, created, err = repo.Create(ctx, "u", "p")
	require.NoError(t, err)
	assert.True(t, created)

	// 幂等取消
	_, err = repo.DeleteByUserAndPost(ctx, "u", "p")
	require.NoError(t, err)
	removed, err = repo.DeleteByUserAndPost(ctx, "u", "p")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

// 并发重复点赞：check-then-insert 的竞态由唯一索引关死，
// 恰好一个成功，最终只有一行
func TestLikeCreate_ConcurrentDuplicate(t *testing.T) {
	db := setupSharedDB(t, "likerace")
	repo := NewLikeRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u", "user")
	seedPost(t, db, "p", "u", "hello")

	const attempts = 8
	results := make([]bool, attempts)
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, created, err := repo.Create(ctx, "u", "p")
			results[i], errs[i] = created, err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, ok := range results {
		require.NoError(t, errs[i])
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	cnt, err := repo.CountByPost(ctx, "p")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestLikeListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u", "user")
	seedUser(t, db, "v", "viewer")
	seedPost(t, db, "p1", "u", "first")
	seedPost(t, db, "p2", "u", "second")

	_, _, err := repo.Create(ctx, "u", "p1")
	require.NoError(t, err)
	_, _, err = repo.Create(ctx, "v", "p1")
	require.NoError(t, err)
	_, _, err = repo.Create(ctx, "v", "p2")
	require.NoError(t, err)

	likes, err := repo.ListByUser(ctx, "v")
	require.NoError(t, err)
	assert.Len(t, likes, 2)
	for _, l := range likes {
		assert.Equal(t, "v", l.UserID)
		assert.Equal(t, "viewer", l.User.Username)
	}
}
