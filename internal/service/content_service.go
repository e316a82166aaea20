package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/pkg/storage"
)

// CreatePostInput 新帖字段
type CreatePostInput struct {
	Title   string
	Content string
	Hashtag string
}

// UpdatePostInput 可变字段；nil 表示不修改
type UpdatePostInput struct {
	Title   *string
	Content *string
	Hashtag *string
}

// ContentService 内容存储：Post / Comment 的 CRUD，写操作先过策略门
type ContentService interface {
	CreatePost(ctx context.Context, actor *model.User, in CreatePostInput) (*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, []*model.Comment, []*model.Like, error)
	UpdatePost(ctx context.Context, actor *model.User, id string, in UpdatePostInput) (*model.Post, error)
	DeletePost(ctx context.Context, actor *model.User, id string) error
	ListPosts(ctx context.Context, filter repository.PostFilter) ([]*model.Post, error)
	// UploadPostImage 通过 blob storage 协作方保存图片并记录引用
	UploadPostImage(ctx context.Context, actor *model.User, postID string, data []byte, filename string) (*model.Post, error)

	AddComment(ctx context.Context, actor *model.User, postID, content string) (*model.Comment, error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	UpdateComment(ctx context.Context, actor *model.User, id, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor *model.User, id string) error
	ListComments(ctx context.Context) ([]*model.Comment, error)
}

type contentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	blobs       storage.BlobStorage
}

func NewContentService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, blobs storage.BlobStorage) ContentService {
	return &contentService{postRepo: postRepo, commentRepo: commentRepo, blobs: blobs}
}

func (s *contentService) CreatePost(ctx context.Context, actor *model.User, in CreatePostInput) (*model.Post, error) {
	p := &model.Post{
		AuthorID: actor.ID,
		Title:    in.Title,
		Content:  in.Content,
		Hashtag:  in.Hashtag,
	}
	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Author = *actor
	return p, nil
}

func (s *contentService) GetPost(ctx context.Context, id string) (*model.Post, []*model.Comment, []*model.Like, error) {
	p, comments, likes, err := s.postRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrNotFound
		}
		return nil, nil, nil, err
	}
	return p, comments, likes, nil
}

func (s *contentService) UpdatePost(ctx context.Context, actor *model.User, id string, in UpdatePostInput) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanMutatePost(actor, p) {
		return nil, ErrForbidden
	}
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Hashtag != nil {
		fields["hashtag"] = *in.Hashtag
	}
	if len(fields) > 0 {
		if err := s.postRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.reloadPost(ctx, id)
}

// reloadPost 写后回读；目标行可能已被并发删除，同样映射为 ErrNotFound
func (s *contentService) reloadPost(ctx context.Context, id string) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *contentService) DeletePost(ctx context.Context, actor *model.User, id string) error {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanMutatePost(actor, p) {
		return ErrForbidden
	}
	_, err = s.postRepo.Delete(ctx, id)
	return err
}

func (s *contentService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*model.Post, error) {
	return s.postRepo.List(ctx, filter)
}

func (s *contentService) UploadPostImage(ctx context.Context, actor *model.User, postID string, data []byte, filename string) (*model.Post, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanMutatePost(actor, p) {
		return nil, ErrForbidden
	}
	ref, err := s.blobs.StoreImage(data, "uploads/posts", filename)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, postID, map[string]interface{}{"image": ref}); err != nil {
		return nil, err
	}
	return s.reloadPost(ctx, postID)
}

func (s *contentService) AddComment(ctx context.Context, actor *model.User, postID, content string) (*model.Comment, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := &model.Comment{UserID: actor.ID, PostID: p.ID, Content: content}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	c.User = *actor
	c.Post = *p
	return c, nil
}

func (s *contentService) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *contentService) UpdateComment(ctx context.Context, actor *model.User, id, content string) (*model.Comment, error) {
	c, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutateComment(actor, c) {
		return nil, ErrForbidden
	}
	if err := s.commentRepo.Update(ctx, id, content); err != nil {
		return nil, err
	}
	return s.GetComment(ctx, id)
}

func (s *contentService) DeleteComment(ctx context.Context, actor *model.User, id string) error {
	c, err := s.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutateComment(actor, c) {
		return ErrForbidden
	}
	_, err = s.commentRepo.Delete(ctx, id)
	return err
}

func (s *contentService) ListComments(ctx context.Context) ([]*model.Comment, error) {
	return s.commentRepo.List(ctx)
}
