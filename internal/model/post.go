package model

import "time"

// Post 内容主体，author 创建后不可变更
type Post struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID string `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author   User   `gorm:"foreignKey:AuthorID"`
	Title    string `gorm:"type:varchar(255);not null"`
	Content  string `gorm:"type:text;not null"`
	Hashtag  string `gorm:"type:varchar(255)"`
	// Image blob storage 引用，可为空
	Image     string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
