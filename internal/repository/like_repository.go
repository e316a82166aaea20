package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RomanNest/social-media-api/internal/model"
)

type LikeRepository interface {
	// Create 写入点赞；(user_id, post_id) 唯一键兜底，重复时 created=false
	Create(ctx context.Context, userID, postID string) (*model.Like, bool, error)
	// DeleteByUserAndPost 幂等取消点赞，返回删除行数（0 或 1）
	DeleteByUserAndPost(ctx context.Context, userID, postID string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Like, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Like, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, userID, postID string) (*model.Like, bool, error) {
	l := &model.Like{ID: newID(), UserID: userID, PostID: postID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	if res.Error != nil {
		return nil, false, res.Error
	}
	return l, res.RowsAffected > 0, nil
}

func (r *likeRepository) DeleteByUserAndPost(ctx context.Context, userID, postID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) GetByID(ctx context.Context, id string) (*model.Like, error) {
	var l model.Like
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").
		Where("id = ?", id).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *likeRepository) ListByUser(ctx context.Context, userID string) ([]*model.Like, error) {
	var res []*model.Like
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC, id").Find(&res).Error
	return res, err
}

func (r *likeRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}
