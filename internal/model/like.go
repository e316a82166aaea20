package model

import "time"

// Like 点赞（user 点赞 post）
type Like struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	UserID string `gorm:"type:varchar(36);index:idx_like_user;index:idx_like_pair,unique;not null"`
	User   User   `gorm:"foreignKey:UserID"`
	PostID string `gorm:"type:varchar(36);index:idx_like_post;not null;index:idx_like_pair,unique"`
	Post   Post   `gorm:"foreignKey:PostID"`
	// 复合唯一键，避免重复点赞
	// idx_like_pair = (user_id, post_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Like) TableName() string { return "likes" }
