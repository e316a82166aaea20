package service

import (
	"context"

	"github.com/RomanNest/social-media-api/internal/repository"
)

// EngagementService 派生计数：全部读时实时统计，不落冗余计数字段，
// 计数永远不会偏离底层边集合
type EngagementService interface {
	LikeCount(ctx context.Context, postID string) (int64, error)
	CommentCount(ctx context.Context, postID string) (int64, error)
	FollowerCount(ctx context.Context, userID string) (int64, error)
	FollowingCount(ctx context.Context, userID string) (int64, error)
}

type engagementService struct {
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	postRepo   repository.PostRepository
}

func NewEngagementService(
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
) EngagementService {
	return &engagementService{followRepo: followRepo, likeRepo: likeRepo, postRepo: postRepo}
}

func (s *engagementService) LikeCount(ctx context.Context, postID string) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}

func (s *engagementService) CommentCount(ctx context.Context, postID string) (int64, error) {
	return s.postRepo.CountComments(ctx, postID)
}

func (s *engagementService) FollowerCount(ctx context.Context, userID string) (int64, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *engagementService) FollowingCount(ctx context.Context, userID string) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}
