package view

import (
	"time"

	"github.com/RomanNest/social-media-api/internal/model"
)

// 每个操作用显式命名的视图投影，由调用方选择，核心不做运行时分支。

// PostView 创建/更新回显
type PostView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Hashtag   string    `json:"hashtag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Image     string    `json:"image,omitempty"`
}

// PostSummaryView 列表项：作者 email + 实时计数
type PostSummaryView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Comments  int64     `json:"comments"`
	Likes     int64     `json:"likes"`
	Hashtag   string    `json:"hashtag,omitempty"`
}

// PostDetailView 详情：内嵌评论与点赞
type PostDetailView struct {
	ID        string            `json:"id"`
	Author    string            `json:"author"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	Hashtag   string            `json:"hashtag,omitempty"`
	Image     string            `json:"image,omitempty"`
	Comments  []PostCommentView `json:"comments"`
	Likes     []PostLikeView    `json:"likes"`
}

type PostCommentView struct {
	User      string    `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PostLikeView struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentView struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Post      string    `json:"post"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeView struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Post      string    `json:"post"`
	CreatedAt time.Time `json:"created_at"`
}

type FollowView struct {
	ID        string `json:"id"`
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

type UserView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserProfileView 详情：带实时 followers/following 计数
type UserProfileView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Bio       string `json:"bio,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
	Image     string `json:"image,omitempty"`
}

func NewPostView(p *model.Post) PostView {
	return PostView{
		ID:        p.ID,
		Author:    p.Author.Username,
		Title:     p.Title,
		Content:   p.Content,
		Hashtag:   p.Hashtag,
		CreatedAt: p.CreatedAt,
		Image:     p.Image,
	}
}

func NewPostSummaryView(p *model.Post, comments, likes int64) PostSummaryView {
	return PostSummaryView{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author.Email,
		CreatedAt: p.CreatedAt,
		Comments:  comments,
		Likes:     likes,
		Hashtag:   p.Hashtag,
	}
}

func NewPostDetailView(p *model.Post, comments []*model.Comment, likes []*model.Like) PostDetailView {
	cv := make([]PostCommentView, 0, len(comments))
	for _, c := range comments {
		cv = append(cv, PostCommentView{User: c.User.Username, Content: c.Content, CreatedAt: c.CreatedAt})
	}
	lv := make([]PostLikeView, 0, len(likes))
	for _, l := range likes {
		lv = append(lv, PostLikeView{ID: l.ID, User: l.User.Username, CreatedAt: l.CreatedAt})
	}
	return PostDetailView{
		ID:        p.ID,
		Author:    p.Author.Username,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Hashtag:   p.Hashtag,
		Image:     p.Image,
		Comments:  cv,
		Likes:     lv,
	}
}

func NewCommentView(c *model.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		User:      c.User.Username,
		Post:      c.Post.Title,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentViews(comments []*model.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentView(c))
	}
	return out
}

func NewLikeView(l *model.Like) LikeView {
	return LikeView{
		ID:        l.ID,
		User:      l.User.Username,
		Post:      l.Post.Title,
		CreatedAt: l.CreatedAt,
	}
}

func NewLikeViews(likes []*model.Like) []LikeView {
	out := make([]LikeView, 0, len(likes))
	for _, l := range likes {
		out = append(out, NewLikeView(l))
	}
	return out
}

func NewFollowView(f *model.Follow) FollowView {
	return FollowView{
		ID:        f.ID,
		Follower:  f.Follower.Username,
		Following: f.Following.Username,
	}
}

func NewFollowViews(follows []*model.Follow) []FollowView {
	out := make([]FollowView, 0, len(follows))
	for _, f := range follows {
		out = append(out, NewFollowView(f))
	}
	return out
}

func NewUserView(u *model.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, Username: u.Username, Bio: u.Bio, IsAdmin: u.IsAdmin}
}

func NewUserViews(users []*model.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

func NewUserProfileView(u *model.User, followers, following int64) UserProfileView {
	return UserProfileView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Bio:       u.Bio,
		IsAdmin:   u.IsAdmin,
		Followers: followers,
		Following: following,
		Image:     u.Image,
	}
}
