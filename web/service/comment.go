package service

import (
	"time"

	"goblog/database"
	"goblog/database/model"
)

// CommentService provides the comment accessors.
type CommentService struct{}

// Create inserts a new comment, assigning its id and timestamp. The parent
// comment id is stored verbatim; nil means a top-level comment.
func (s *CommentService) Create(comment *model.Comment) error {
	comment.Date = time.Now().Format(dateLayout)
	db := database.GetDB()
	return db.Create(comment).Error
}

// GetAllForArticle retrieves every comment on an article with author
// identity joined in. The ordering key groups each reply immediately after
// its thread root, so callers can rebuild the tree from the flat list by
// grouping on parent_comment_id.
func (s *CommentService) GetAllForArticle(articleId int) ([]*model.CommentView, error) {
	db := database.GetDB()
	var comments []*model.CommentView
	err := db.Model(&model.Comment{}).
		Select("comments.*, users.username, users.avatar").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.article_id = ?", articleId).
		Order("COALESCE(comments.parent_comment_id, comments.id), comments.id").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Get retrieves one comment.
func (s *CommentService) Get(id int) (*model.Comment, error) {
	db := database.GetDB()
	var comment model.Comment
	if err := db.Take(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes exactly one comment row. Replies keep their parent
// reference and become orphans; deleting an absent id is a no-op.
func (s *CommentService) Delete(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Comment{}, id).Error
}
