package service

import (
	"strings"

	"comunidade/internal/model"
)

type CommunityStore interface {
	ListFeed(viewerID uint64) ([]model.FeedItem, error)
	CreatePost(post *model.CommunityPost) error
	FindPostWithAuthor(id uint64) (*model.PostWithAuthor, error)
	ToggleLike(postID, userID uint64) (bool, int64, error)
	CreateComment(comment *model.CommunityComment) error
	ListComments(postID uint64) ([]model.CommentView, error)
	CountComments(postID uint64) (int64, error)
}

type CommunityService struct {
	repo CommunityStore
}

func NewCommunityService(repo CommunityStore) *CommunityService {
	return &CommunityService{repo: repo}
}

// Feed lists posts newest first. viewerID 0 means no viewer context, so
// liked_by_user is 0 on every row.
func (s *CommunityService) Feed(viewerID uint64) ([]model.FeedItem, error) {
	return s.repo.ListFeed(viewerID)
}

func (s *CommunityService) CreatePost(userID uint64, content string) (*model.PostWithAuthor, error) {
	post := &model.CommunityPost{
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}
	if err := s.repo.CreatePost(post); err != nil {
		return nil, err
	}
	return s.repo.FindPostWithAuthor(post.ID)
}

// ToggleLike reports the new like state and the authoritative count after the
// flip; counts are always recomputed, never kept in an optimistic counter.
func (s *CommunityService) ToggleLike(postID, userID uint64) (bool, int64, error) {
	return s.repo.ToggleLike(postID, userID)
}

type CommentsResult struct {
	Comments []model.CommentView
	Count    int64
}

// CreateComment returns the whole refreshed comment list so the caller can
// update its view in one round trip.
func (s *CommunityService) CreateComment(postID, userID uint64, comment string) (*CommentsResult, error) {
	c := &model.CommunityComment{
		PostID:  postID,
		UserID:  userID,
		Comment: strings.TrimSpace(comment),
	}
	if err := s.repo.CreateComment(c); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(postID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountComments(postID)
	if err != nil {
		return nil, err
	}
	return &CommentsResult{Comments: comments, Count: count}, nil
}

func (s *CommunityService) ListComments(postID uint64) ([]model.CommentView, error) {
	return s.repo.ListComments(postID)
}
