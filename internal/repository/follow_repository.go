package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RomanNest/social-media-api/internal/model"
)

// FollowFilter 关注列表过滤条件（用户名子串，大小写不敏感）
type FollowFilter struct {
	FollowerUsername  string
	FollowingUsername string
}

type FollowRepository interface {
	// Create 写入关注边；复合唯一键兜底去重，重复时返回 created=false
	Create(ctx context.Context, followerID, followingID string) (*model.Follow, bool, error)
	// Delete 删除有序对 (follower, following)，返回删除行数（0 或 1）
	Delete(ctx context.Context, followerID, followingID string) (int64, error)
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	List(ctx context.Context, filter FollowFilter) ([]*model.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followingID string) (*model.Follow, bool, error) {
	f := &model.Follow{ID: newID(), FollowerID: followerID, FollowingID: followingID}
	// 存在性检查与插入必须是一个原子单元：冲突由唯一索引拦截，
	// RowsAffected == 0 即并发下的重复写
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return f, res.RowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) List(ctx context.Context, filter FollowFilter) ([]*model.Follow, error) {
	q := r.db.WithContext(ctx).Model(&model.Follow{}).
		Preload("Follower").Preload("Following")
	if filter.FollowerUsername != "" {
		q = q.Joins("JOIN users AS fu ON fu.id = follows.follower_id").
			Where("LOWER(fu.username) LIKE ?", contains(filter.FollowerUsername))
	}
	if filter.FollowingUsername != "" {
		q = q.Joins("JOIN users AS gu ON gu.id = follows.following_id").
			Where("LOWER(gu.username) LIKE ?", contains(filter.FollowingUsername))
	}
	var res []*model.Follow
	err := q.Order("follows.created_at DESC, follows.id").Find(&res).Error
	return res, err
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ?", userID).Count(&cnt).Error
	return cnt, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
