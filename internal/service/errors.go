package service

import "errors"

// 领域错误四类：校验、重复边、未找到、无权限。
// 存储层唯一键探测到的重复与预检查返回同一个 sentinel，调用方只见一种形态。
var (
	ErrSelfFollow      = errors.New("you can't follow yourself")
	ErrDuplicateFollow = errors.New("you have already followed this user")
	ErrDuplicateLike   = errors.New("you have already liked this post")
	ErrDuplicateUser   = errors.New("email or username already taken")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("you do not have permission to perform this action")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
