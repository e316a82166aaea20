package model

import "time"

// Follow 关注关系（follower 关注 following），反向边是独立记录
type Follow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID  string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	Follower    User   `gorm:"foreignKey:FollowerID"`
	FollowingID string `gorm:"type:varchar(36);index:idx_follow_following;not null;index:idx_follow_pair,unique"`
	Following   User   `gorm:"foreignKey:FollowingID"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (follower_id, following_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
