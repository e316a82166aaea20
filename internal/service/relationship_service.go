package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/repository"
)

// RelationshipService 关系账本：Follow / Like 边的写入与校验。
// 操作者始终作为显式参数传入，不读任何请求级全局状态。
type RelationshipService interface {
	// FollowByUsername 以 actor 的身份关注 username；404 未知用户，
	// 自关注与重复关注分别返回 ErrSelfFollow / ErrDuplicateFollow
	FollowByUsername(ctx context.Context, actor *model.User, username string) (*model.Follow, error)
	// UnfollowByUsername 幂等取消关注：边不存在也算成功
	UnfollowByUsername(ctx context.Context, actor *model.User, username string) error
	CreateFollow(ctx context.Context, actor *model.User, followerID, followingID string) (*model.Follow, error)
	ListFollows(ctx context.Context, filter repository.FollowFilter) ([]*model.Follow, error)

	Like(ctx context.Context, actor *model.User, postID string) (*model.Like, error)
	// Unlike 幂等取消点赞
	Unlike(ctx context.Context, actor *model.User, postID string) error
	DeleteLike(ctx context.Context, actor *model.User, likeID string) error
	// ListLikes 只返回 actor 自己的点赞
	ListLikes(ctx context.Context, actor *model.User) ([]*model.Like, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) RelationshipService {
	return &relationshipService{followRepo: followRepo, likeRepo: likeRepo, postRepo: postRepo, userRepo: userRepo}
}

func (s *relationshipService) FollowByUsername(ctx context.Context, actor *model.User, username string) (*model.Follow, error) {
	following, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	f, err := s.CreateFollow(ctx, actor, actor.ID, following.ID)
	if err != nil {
		return nil, err
	}
	// 两端用户已在手上，挂到返回的边上供视图投影使用
	f.Follower = *actor
	f.Following = *following
	return f, nil
}

func (s *relationshipService) CreateFollow(ctx context.Context, actor *model.User, followerID, followingID string) (*model.Follow, error) {
	if !CanFollow(actor, followerID) {
		return nil, ErrForbidden
	}
	if followerID == followingID {
		return nil, ErrSelfFollow
	}
	// 预检查给出友好错误；真正的并发保障是唯一索引
	exists, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFollow
	}
	f, created, err := s.followRepo.Create(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrDuplicateFollow
	}
	return f, nil
}

func (s *relationshipService) UnfollowByUsername(ctx context.Context, actor *model.User, username string) error {
	following, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	// 删除 0 行不是错误（幂等取关）
	_, err = s.followRepo.Delete(ctx, actor.ID, following.ID)
	return err
}

func (s *relationshipService) ListFollows(ctx context.Context, filter repository.FollowFilter) ([]*model.Follow, error) {
	return s.followRepo.List(ctx, filter)
}

func (s *relationshipService) Like(ctx context.Context, actor *model.User, postID string) (*model.Like, error) {
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// 给自己的帖子点赞是合法的，没有自引用限制
	l, created, err := s.likeRepo.Create(ctx, actor.ID, postID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrDuplicateLike
	}
	l.User = *actor
	l.Post = *p
	return l, nil
}

func (s *relationshipService) Unlike(ctx context.Context, actor *model.User, postID string) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	_, err := s.likeRepo.DeleteByUserAndPost(ctx, actor.ID, postID)
	return err
}

func (s *relationshipService) DeleteLike(ctx context.Context, actor *model.User, likeID string) error {
	l, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanMutateLike(actor, l) {
		return ErrForbidden
	}
	_, err = s.likeRepo.Delete(ctx, likeID)
	return err
}

func (s *relationshipService) ListLikes(ctx context.Context, actor *model.User) ([]*model.Like, error) {
	return s.likeRepo.ListByUser(ctx, actor.ID)
}
