package model

import "time"

type CommunityPost struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommunityPostLike struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;uniqueIndex:uk_post_user"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_post_user"`
	CreatedAt time.Time
}

func (CommunityPostLike) TableName() string {
	return "community_post_likes"
}

type CommunityComment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommunityComment) TableName() string {
	return "community_post_comments"
}

// FeedItem is the aggregated read model for the community feed.
type FeedItem struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AuthorName    string    `json:"author_name"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	LikedByUser   int       `json:"liked_by_user"`
}

// PostWithAuthor is a freshly created post joined with its author; counts are
// implicitly zero at that point.
type PostWithAuthor struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	AuthorName string    `json:"author_name"`
}

type CommentView struct {
	ID         uint64    `json:"id"`
	PostID     uint64    `json:"post_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}
