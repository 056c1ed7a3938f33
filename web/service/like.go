package service

import (
	"errors"

	"goblog/database"
	"goblog/database/model"

	"gorm.io/gorm"
)

// ErrAlreadyLiked signals that the (user, article) pair already exists,
// so callers can answer with a conflict rather than a server error.
var ErrAlreadyLiked = errors.New("article already liked")

// LikeService provides the like accessors.
type LikeService struct{}

// Like records that a user liked an article. A second like of the same
// article by the same user returns ErrAlreadyLiked.
func (s *LikeService) Like(userId int, articleId int) error {
	db := database.GetDB()
	err := db.Create(&model.Like{UserId: userId, ArticleId: articleId}).Error
	if database.IsDuplicate(err) {
		return ErrAlreadyLiked
	}
	return err
}

// Unlike removes a like. Unliking a never-liked pair is a no-op.
func (s *LikeService) Unlike(userId int, articleId int) error {
	db := database.GetDB()
	return db.Where("user_id = ? AND article_id = ?", userId, articleId).
		Delete(&model.Like{}).Error
}

// HasLiked reports whether the user has liked the article.
func (s *LikeService) HasLiked(userId int, articleId int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.Like{}).
		Where("user_id = ? AND article_id = ?", userId, articleId).
		Count(&count).Error
	return count > 0, err
}

// Toggle flips the like state inside a single transaction: the delete and
// the conditional insert cannot interleave with a concurrent toggle for the
// same pair. Returns the resulting state.
func (s *LikeService) Toggle(userId int, articleId int) (liked bool, err error) {
	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userId, articleId).
			Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		liked = true
		return tx.Create(&model.Like{UserId: userId, ArticleId: articleId}).Error
	})
	return liked, err
}
