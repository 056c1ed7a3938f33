package service

import (
	"strings"
	"time"

	"goblog/database"
	"goblog/database/model"
)

// dateLayout is the format article and comment timestamps are stored in,
// assigned in server local time at creation.
const dateLayout = "2006-01-02 15:04:05"

const articleAuthorJoin = "JOIN users ON users.id = articles.author_id"
const articleViewColumns = "articles.*, users.username, users.avatar"

var sortFields = map[string]string{
	"title":    "articles.title",
	"username": "users.username",
	"date":     "articles.date",
}

// ArticleService provides the article accessors.
type ArticleService struct{}

// Create inserts a new article, assigning its id and timestamp.
func (s *ArticleService) Create(article *model.Article) error {
	article.Date = time.Now().Format(dateLayout)
	db := database.GetDB()
	return db.Create(article).Error
}

// GetAll retrieves every article with its author identity joined in,
// in storage order.
func (s *ArticleService) GetAll() ([]*model.ArticleView, error) {
	db := database.GetDB()
	var articles []*model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Get retrieves one article with its author identity.
func (s *ArticleService) Get(id int) (*model.ArticleView, error) {
	db := database.GetDB()
	var article model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Where("articles.id = ?", id).
		Take(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetByAuthor retrieves every article written by one user.
func (s *ArticleService) GetByAuthor(authorId int) ([]*model.ArticleView, error) {
	db := database.GetDB()
	var articles []*model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Where("articles.author_id = ?", authorId).
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleUpdate carries the fields a caller may change. Nil leaves a field
// untouched.
type ArticleUpdate struct {
	Title   *string
	Content *string
	Summary *string
	Image   *string
}

// Update merges the supplied fields into the stored article. Only fields
// that differ from the current row are written; if nothing changed the
// current record is returned without issuing a write. A vanished id
// surfaces as not found before any write is attempted.
func (s *ArticleService) Update(id int, upd ArticleUpdate) (*model.Article, error) {
	db := database.GetDB()

	var current model.Article
	if err := db.Take(&current, id).Error; err != nil {
		return nil, err
	}

	changes := map[string]any{}
	diffField(changes, "title", current.Title, upd.Title)
	diffField(changes, "content", current.Content, upd.Content)
	diffField(changes, "summary", current.Summary, upd.Summary)
	diffField(changes, "image", current.Image, upd.Image)

	if len(changes) == 0 {
		return &current, nil
	}

	err := db.Model(&model.Article{}).Where("id = ?", id).Updates(changes).Error
	if err != nil {
		return nil, err
	}

	var updated model.Article
	if err := db.Take(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an article. Deleting an absent id is a no-op.
func (s *ArticleService) Delete(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Article{}, id).Error
}

// Search matches the term case-insensitively against title and content,
// and as a raw substring against the formatted date. An empty term falls
// back to GetAll.
func (s *ArticleService) Search(term string) ([]*model.ArticleView, error) {
	if term == "" {
		return s.GetAll()
	}

	db := database.GetDB()
	like := "%" + strings.ToLower(term) + "%"
	var articles []*model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Where("LOWER(articles.title) LIKE ? OR LOWER(articles.content) LIKE ? OR articles.date LIKE ?",
			like, like, "%"+term+"%").
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Sort returns all articles ordered by the given field and order. Values
// outside the allow-list are coerced to title/asc rather than rejected.
func (s *ArticleService) Sort(field string, order string) ([]*model.ArticleView, error) {
	column, ok := sortFields[field]
	if !ok {
		column = sortFields["title"]
	}
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	db := database.GetDB()
	var articles []*model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Order(column + " " + strings.ToUpper(order)).
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// LikeCount counts the likes on an article.
func (s *ArticleService) LikeCount(articleId int) (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.Like{}).Where("article_id = ?", articleId).Count(&count).Error
	return count, err
}

// Next returns the article with the next-greater id, or not found at the
// end of the sequence. Adjacency is by primary key, matching the reading
// order the client presents.
func (s *ArticleService) Next(id int) (*model.ArticleView, error) {
	return s.neighbor("articles.id > ?", "articles.id ASC", id)
}

// Previous returns the article with the next-lesser id.
func (s *ArticleService) Previous(id int) (*model.ArticleView, error) {
	return s.neighbor("articles.id < ?", "articles.id DESC", id)
}

func (s *ArticleService) neighbor(cond string, order string, id int) (*model.ArticleView, error) {
	db := database.GetDB()
	var article model.ArticleView
	err := db.Model(&model.Article{}).
		Select(articleViewColumns).
		Joins(articleAuthorJoin).
		Where(cond, id).
		Order(order).
		Take(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}
