package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	blacklistPrefix = "jwt:blacklist:"
)

// Claims JWT 负载；Type 区分 access / refresh
type Claims struct {
	UserID string `json:"uid"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair 一次签发的访问/刷新令牌
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService 令牌签发、校验与登出黑名单（黑名单存 Redis，TTL 对齐过期时间）
type TokenService interface {
	Issue(userID string) (*TokenPair, error)
	// Verify 校验令牌并检查黑名单
	Verify(ctx context.Context, token, wantType string) (*Claims, error)
	// Refresh 用 refresh 令牌换新令牌对，旧 refresh 进黑名单
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Revoke 登出：refresh 令牌进黑名单
	Revoke(ctx context.Context, refreshToken string) error
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	rdb        *redis.Client
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, rdb *redis.Client) TokenService {
	return &tokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL, rdb: rdb}
}

func (s *tokenService) Issue(userID string) (*TokenPair, error) {
	access, err := s.sign(userID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *tokenService) sign(userID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) Verify(ctx context.Context, token, wantType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Type != wantType {
		return nil, ErrInvalidToken
	}
	if s.rdb != nil {
		n, err := s.rdb.Exists(ctx, blacklistPrefix+claims.ID).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.Verify(ctx, refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if err := s.blacklist(ctx, claims); err != nil {
		return nil, err
	}
	return s.Issue(claims.UserID)
}

func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.Verify(ctx, refreshToken, TokenTypeRefresh)
	if err != nil {
		return err
	}
	return s.blacklist(ctx, claims)
}

func (s *tokenService) blacklist(ctx context.Context, claims *Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, blacklistPrefix+claims.ID, "1", ttl).Err()
}
