package mysql

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comunidade/internal/model"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{DB: db}
}

// feedQuery aggregates likes and comments in grouped subqueries before
// joining them back, so each post stays a single row; the viewer's own like
// is joined separately from the aggregate count.
const feedQuery = `
SELECT
  p.id,
  p.user_id,
  p.content,
  p.created_at,
  p.updated_at,
  CONCAT(u.first_name, ' ', u.last_name) AS author_name,
  IFNULL(l.likes_count, 0) AS likes_count,
  IFNULL(c.comments_count, 0) AS comments_count,
  CASE WHEN ul.post_id IS NULL THEN 0 ELSE 1 END AS liked_by_user
FROM community_posts p
INNER JOIN users u ON u.id = p.user_id
LEFT JOIN (
  SELECT post_id, COUNT(*) AS likes_count
  FROM community_post_likes
  GROUP BY post_id
) l ON l.post_id = p.id
LEFT JOIN (
  SELECT post_id, COUNT(*) AS comments_count
  FROM community_post_comments
  GROUP BY post_id
) c ON c.post_id = p.id
LEFT JOIN (
  SELECT post_id
  FROM community_post_likes
  WHERE user_id = ?
) ul ON ul.post_id = p.id
ORDER BY p.created_at DESC, p.id DESC`

func (r *CommunityRepository) ListFeed(viewerID uint64) ([]model.FeedItem, error) {
	items := []model.FeedItem{}
	err := r.DB.Raw(feedQuery, viewerID).Scan(&items).Error
	return items, err
}

func (r *CommunityRepository) CreatePost(post *model.CommunityPost) error {
	return r.DB.Create(post).Error
}

func (r *CommunityRepository) FindPostWithAuthor(id uint64) (*model.PostWithAuthor, error) {
	var row model.PostWithAuthor
	err := r.DB.Raw(`
SELECT p.id, p.user_id, p.content, p.created_at, p.updated_at,
       CONCAT(u.first_name, ' ', u.last_name) AS author_name
FROM community_posts p
INNER JOIN users u ON u.id = p.user_id
WHERE p.id = ?`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// ToggleLike flips the like row for (postID, userID). The unique index on
// (post_id, user_id) is the race guard: a concurrent duplicate insert hits
// ON CONFLICT DO NOTHING instead of failing the transaction.
func (r *CommunityRepository) ToggleLike(postID, userID uint64) (liked bool, count int64, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&model.CommunityPostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			ins := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).Create(&model.CommunityPostLike{PostID: postID, UserID: userID})
			if ins.Error != nil {
				return ins.Error
			}
			liked = true
		}
		return tx.Model(&model.CommunityPostLike{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	})
	return liked, count, err
}

func (r *CommunityRepository) CreateComment(comment *model.CommunityComment) error {
	return r.DB.Create(comment).Error
}

func (r *CommunityRepository) ListComments(postID uint64) ([]model.CommentView, error) {
	comments := []model.CommentView{}
	err := r.DB.Raw(`
SELECT c.id, c.post_id, c.comment, c.created_at,
       CONCAT(u.first_name, ' ', u.last_name) AS author_name
FROM community_post_comments c
INNER JOIN users u ON u.id = c.user_id
WHERE c.post_id = ?
ORDER BY c.created_at DESC, c.id DESC`, postID).Scan(&comments).Error
	return comments, err
}

func (r *CommunityRepository) CountComments(postID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CommunityComment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
