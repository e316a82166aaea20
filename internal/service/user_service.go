package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RomanNest/social-media-api/internal/model"
	"github.com/RomanNest/social-media-api/internal/repository"
	"github.com/RomanNest/social-media-api/pkg/storage"
)

// RegisterInput 注册字段
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Bio      string
}

// UpdateUserInput 资料可变字段；nil 表示不修改
type UpdateUserInput struct {
	Username *string
	Bio      *string
	Password *string
}

// UserProfile 用户与派生的关注计数
type UserProfile struct {
	User      *model.User
	Followers int64
	Following int64
}

// UserService 身份存储操作
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Authenticate 按 email+密码认证，成功返回用户
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// Profile 带实时 followers/following 计数
	Profile(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, actor *model.User, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, actor *model.User) error
	List(ctx context.Context, filter repository.UserFilter) ([]*model.User, error)
	UploadProfileImage(ctx context.Context, actor *model.User, data []byte, filename string) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	engagement EngagementService
	blobs      storage.BlobStorage
}

func NewUserService(userRepo repository.UserRepository, engagement EngagementService, blobs storage.BlobStorage) UserService {
	return &userService{userRepo: userRepo, engagement: engagement, blobs: blobs}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:    in.Email,
		Username: in.Username,
		Password: string(hash),
		Bio:      in.Bio,
	}
	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrDuplicateUser
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.engagement.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.engagement.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserProfile{User: u, Followers: followers, Following: following}, nil
}

func (s *userService) Update(ctx context.Context, actor *model.User, in UpdateUserInput) (*model.User, error) {
	fields := map[string]interface{}{}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, actor.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, actor.ID)
}

func (s *userService) Delete(ctx context.Context, actor *model.User) error {
	_, err := s.userRepo.Delete(ctx, actor.ID)
	return err
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]*model.User, error) {
	return s.userRepo.List(ctx, filter)
}

func (s *userService) UploadProfileImage(ctx context.Context, actor *model.User, data []byte, filename string) (*model.User, error) {
	ref, err := s.blobs.StoreImage(data, "uploads/users", filename)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, actor.ID, map[string]interface{}{"image": ref}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, actor.ID)
}
