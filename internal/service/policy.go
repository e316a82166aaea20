package service

import (
	"github.com/RomanNest/social-media-api/internal/model"
)

// 访问策略：纯函数，仅依赖（操作者，目标，目标属主）。

// CanMutatePost 帖子可由作者或管理员修改/删除
func CanMutatePost(actor *model.User, post *model.Post) bool {
	return actor.IsAdmin || actor.ID == post.AuthorID
}

// CanMutateComment 评论可由作者或管理员修改/删除
func CanMutateComment(actor *model.User, comment *model.Comment) bool {
	return actor.IsAdmin || actor.ID == comment.UserID
}

// CanMutateLike 点赞只能由点赞者本人撤销
func CanMutateLike(actor *model.User, like *model.Like) bool {
	return actor.ID == like.UserID
}

// CanFollow 只能以自己的身份建立关注边
func CanFollow(actor *model.User, followerID string) bool {
	return actor.ID == followerID
}
