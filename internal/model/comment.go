package model

import "time"

// Comment 评论，随 Post 级联删除
type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_comment_user;not null"`
	User      User   `gorm:"foreignKey:UserID"`
	PostID    string `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	Post      Post   `gorm:"foreignKey:PostID"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
