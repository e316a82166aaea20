package model

import "time"

// User 用户（身份存储）
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	Email    string `gorm:"type:varchar(255);uniqueIndex:idx_user_email;not null"`
	Username string `gorm:"type:varchar(150);uniqueIndex:idx_user_username;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Bio      string `gorm:"type:text"`
	// Image 头像引用（blob storage 返回的相对路径）
	Image     string `gorm:"type:varchar(255)"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
