package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	Update(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context) ([]*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = newID()
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").
		Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) Update(ctx context.Context, id string, content string) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).Update("content", content).Error
}

func (r *commentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

func (r *commentRepository) List(ctx context.Context) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").
		Order("created_at DESC, id").Find(&res).Error
	return res, err
}
