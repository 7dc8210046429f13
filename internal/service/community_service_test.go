package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comunidade/internal/model"
	"comunidade/internal/service"
)

type mockCommunityStore struct {
	listFeedFunc           func(viewerID uint64) ([]model.FeedItem, error)
	createPostFunc         func(post *model.CommunityPost) error
	findPostWithAuthorFunc func(id uint64) (*model.PostWithAuthor, error)
	toggleLikeFunc         func(postID, userID uint64) (bool, int64, error)
	createCommentFunc      func(comment *model.CommunityComment) error
	listCommentsFunc       func(postID uint64) ([]model.CommentView, error)
	countCommentsFunc      func(postID uint64) (int64, error)
}

func (m *mockCommunityStore) ListFeed(viewerID uint64) ([]model.FeedItem, error) {
	return m.listFeedFunc(viewerID)
}

func (m *mockCommunityStore) CreatePost(post *model.CommunityPost) error {
	return m.createPostFunc(post)
}

func (m *mockCommunityStore) FindPostWithAuthor(id uint64) (*model.PostWithAuthor, error) {
	return m.findPostWithAuthorFunc(id)
}

func (m *mockCommunityStore) ToggleLike(postID, userID uint64) (bool, int64, error) {
	return m.toggleLikeFunc(postID, userID)
}

func (m *mockCommunityStore) CreateComment(comment *model.CommunityComment) error {
	return m.createCommentFunc(comment)
}

func (m *mockCommunityStore) ListComments(postID uint64) ([]model.CommentView, error) {
	return m.listCommentsFunc(postID)
}

func (m *mockCommunityStore) CountComments(postID uint64) (int64, error) {
	return m.countCommentsFunc(postID)
}

func TestCommunityService_CreatePostTrimsContent(t *testing.T) {
	var stored *model.CommunityPost
	store := &mockCommunityStore{
		createPostFunc: func(post *model.CommunityPost) error {
			post.ID = 11
			stored = post
			return nil
		},
		findPostWithAuthorFunc: func(id uint64) (*model.PostWithAuthor, error) {
			require.Equal(t, uint64(11), id)
			return &model.PostWithAuthor{ID: id, UserID: stored.UserID, Content: stored.Content, AuthorName: "Ana Silva"}, nil
		},
	}
	svc := service.NewCommunityService(store)

	post, err := svc.CreatePost(3, "  bom dia, comunidade!  ")
	require.NoError(t, err)
	assert.Equal(t, "bom dia, comunidade!", post.Content)
	assert.Equal(t, "Ana Silva", post.AuthorName)
}

func TestCommunityService_CreateCommentReturnsRefreshedList(t *testing.T) {
	comments := []model.CommentView{}
	store := &mockCommunityStore{
		createCommentFunc: func(comment *model.CommunityComment) error {
			comment.ID = uint64(len(comments) + 1)
			comment.CreatedAt = time.Now()
			// newest first, like the read query
			comments = append([]model.CommentView{{
				ID:         comment.ID,
				PostID:     comment.PostID,
				Comment:    comment.Comment,
				CreatedAt:  comment.CreatedAt,
				AuthorName: "Ana Silva",
			}}, comments...)
			return nil
		},
		listCommentsFunc: func(postID uint64) ([]model.CommentView, error) {
			return comments, nil
		},
		countCommentsFunc: func(postID uint64) (int64, error) {
			return int64(len(comments)), nil
		},
	}
	svc := service.NewCommunityService(store)

	for _, text := range []string{"primeiro", "segundo", " terceiro "} {
		_, err := svc.CreateComment(5, 3, text)
		require.NoError(t, err)
	}

	result, err := svc.CreateComment(5, 3, "quarto")
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Count)
	require.Len(t, result.Comments, 4)
	assert.Equal(t, "quarto", result.Comments[0].Comment)
	assert.Equal(t, "terceiro", result.Comments[1].Comment)
	assert.Equal(t, "primeiro", result.Comments[3].Comment)
}

func TestCommunityService_FeedPassesViewer(t *testing.T) {
	store := &mockCommunityStore{
		listFeedFunc: func(viewerID uint64) ([]model.FeedItem, error) {
			liked := 0
			if viewerID == 3 {
				liked = 1
			}
			return []model.FeedItem{{ID: 1, LikesCount: 2, CommentsCount: 1, LikedByUser: liked}}, nil
		},
	}
	svc := service.NewCommunityService(store)

	withViewer, err := svc.Feed(3)
	require.NoError(t, err)
	assert.Equal(t, 1, withViewer[0].LikedByUser)

	anonymous, err := svc.Feed(0)
	require.NoError(t, err)
	assert.Equal(t, 0, anonymous[0].LikedByUser)
}
