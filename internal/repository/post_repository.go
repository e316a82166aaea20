package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
)

// PostFilter 帖子列表过滤条件，多个条件取交集
type PostFilter struct {
	AuthorUsername  string
	TitleContains   string
	HashtagContains string
	MinLikes        int
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	// GetDetail 带评论与点赞（详情视图用）
	GetDetail(ctx context.Context, id string) (*model.Post, []*model.Comment, []*model.Like, error)
	// Update 只允许 title/content/hashtag/image；author 与 id 不可变
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// Delete 删除帖子并在同一事务内级联删除其评论与点赞
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, filter PostFilter) ([]*model.Post, error)
	CountComments(ctx context.Context, postID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = newID()
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) GetDetail(ctx context.Context, id string) (*model.Post, []*model.Comment, []*model.Like, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	var comments []*model.Comment
	if err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", id).Order("created_at DESC, id").Find(&comments).Error; err != nil {
		return nil, nil, nil, err
	}
	var likes []*model.Like
	if err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", id).Order("created_at DESC, id").Find(&likes).Error; err != nil {
		return nil, nil, nil, err
	}
	return p, comments, likes, nil
}

func (r *postRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) (int64, error) {
	var removed int64
	// 级联删除在同一事务内完成，避免出现帖子已删而评论残留的中间态
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*model.Post, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{}).Preload("Author")
	if filter.AuthorUsername != "" {
		q = q.Joins("JOIN users ON users.id = posts.author_id").
			Where("LOWER(users.username) LIKE ?", contains(filter.AuthorUsername))
	}
	if filter.TitleContains != "" {
		q = q.Where("LOWER(posts.title) LIKE ?", contains(filter.TitleContains))
	}
	if filter.HashtagContains != "" {
		q = q.Where("LOWER(posts.hashtag) LIKE ?", contains(filter.HashtagContains))
	}
	if filter.MinLikes > 0 {
		// 实时点赞数，不落冗余计数字段
		q = q.Where("(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) >= ?", filter.MinLikes)
	}
	var res []*model.Post
	err := q.Order("posts.created_at DESC, posts.id").Find(&res).Error
	return res, err
}

func (r *postRepository) CountComments(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}
