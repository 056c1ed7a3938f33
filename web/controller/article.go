package controller

import (
	"net/http"

	"goblog/database"
	"goblog/database/model"
	"goblog/web/entity"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

// ArticleController handles article CRUD, search/sort, likes and the
// per-article comment listing.
type ArticleController struct {
	BaseController

	articleService service.ArticleService
	commentService service.CommentService
	likeService    service.LikeService
}

// NewArticleController creates the controller and registers its routes.
func NewArticleController(g *gin.RouterGroup) *ArticleController {
	a := &ArticleController{}
	a.initRouter(g)
	return a
}

func (a *ArticleController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.listArticles)
	g.POST("", a.checkLogin, a.createArticle)
	g.GET("/user/:id", a.getByAuthor)
	g.GET("/next/:id", a.nextArticle)
	g.GET("/previous/:id", a.previousArticle)
	g.GET("/:id", a.getArticle)
	g.PATCH("/:id", a.checkLogin, a.updateArticle)
	g.DELETE("/:id", a.checkLogin, a.deleteArticle)
	g.GET("/:id/likes/public", a.publicLikes)
	g.GET("/:id/likes/auth", a.checkLogin, a.authLikes)
	g.POST("/:id/like", a.checkLogin, a.likeArticle)
	g.POST("/:id/toggle-like", a.checkLogin, a.toggleLike)
	g.GET("/:id/comments", a.articleComments)
}

// createArticle stores a new article for the authenticated author. The
// body is a multipart form with an optional image upload.
func (a *ArticleController) createArticle(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	summary := c.PostForm("summary")

	if title == "" || content == "" || summary == "" {
		jsonMsg(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	image := c.PostForm("image")
	if file, err := c.FormFile("imageFile"); err == nil {
		path, err := saveUpload(c, file, "")
		if err != nil {
			jsonServerError(c, "Error creating article", err)
			return
		}
		image = path
	}

	claims := session.GetLoginClaims(c)
	article := &model.Article{
		Title:    title,
		Content:  content,
		Summary:  summary,
		Image:    image,
		AuthorId: claims.UserId,
	}

	if err := a.articleService.Create(article); err != nil {
		jsonServerError(c, "Error creating article", err)
		return
	}

	jsonObj(c, http.StatusCreated, entity.CreatedArticle{
		Message: "Article created successfully",
		Article: article,
	})
}

// listArticles returns all articles, optionally filtered by a search term
// or ordered by the sort parameters.
func (a *ArticleController) listArticles(c *gin.Context) {
	search := c.Query("search")
	sortField := c.Query("sortField")
	sortOrder := c.Query("sortOrder")

	var articles []*model.ArticleView
	var err error
	switch {
	case search != "":
		articles, err = a.articleService.Search(search)
	case sortField != "" || sortOrder != "":
		articles, err = a.articleService.Sort(sortField, sortOrder)
	default:
		articles, err = a.articleService.GetAll()
	}
	if err != nil {
		jsonServerError(c, "Error retrieving articles", err)
		return
	}
	jsonObj(c, http.StatusOK, articles)
}

func (a *ArticleController) getArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	article, err := a.articleService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Article not found")
		} else {
			jsonServerError(c, "Error retrieving article", err)
		}
		return
	}
	jsonObj(c, http.StatusOK, article)
}

func (a *ArticleController) getByAuthor(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	articles, err := a.articleService.GetByAuthor(id)
	if err != nil {
		jsonServerError(c, "Error retrieving articles by user", err)
		return
	}
	jsonObj(c, http.StatusOK, articles)
}

// updateArticle merges the supplied fields into an existing article. Only
// the author or an admin may update.
func (a *ArticleController) updateArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	article, err := a.articleService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Article not found")
		} else {
			jsonServerError(c, "Error updating article", err)
		}
		return
	}

	claims := session.GetLoginClaims(c)
	if article.AuthorId != claims.UserId && !claims.IsAdmin {
		jsonMsg(c, http.StatusForbidden, "Access denied. You can only update your own article.")
		return
	}

	upd := service.ArticleUpdate{
		Title:   formValue(c, "title"),
		Content: formValue(c, "content"),
		Summary: formValue(c, "summary"),
		Image:   formValue(c, "image"),
	}
	if file, err := c.FormFile("imageFile"); err == nil {
		path, err := saveUpload(c, file, "")
		if err != nil {
			jsonServerError(c, "Error updating article", err)
			return
		}
		upd.Image = &path
	}

	updated, err := a.articleService.Update(id, upd)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Article not found")
		} else {
			jsonServerError(c, "Error updating article", err)
		}
		return
	}

	jsonObj(c, http.StatusOK, entity.CreatedArticle{
		Message: "Article updated successfully",
		Article: updated,
	})
}

// deleteArticle removes an article. Only the author or an admin may delete.
func (a *ArticleController) deleteArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	article, err := a.articleService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Article not found")
		} else {
			jsonServerError(c, "Error deleting article", err)
		}
		return
	}

	claims := session.GetLoginClaims(c)
	if article.AuthorId != claims.UserId && !claims.IsAdmin {
		jsonMsg(c, http.StatusForbidden, "Access denied. You can only delete your own article.")
		return
	}

	if err := a.articleService.Delete(id); err != nil {
		jsonServerError(c, "Error deleting article", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// publicLikes returns the like count of an article.
func (a *ArticleController) publicLikes(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	likeCount, err := a.articleService.LikeCount(id)
	if err != nil {
		jsonServerError(c, "Error retrieving likes for the article", err)
		return
	}
	jsonObj(c, http.StatusOK, entity.LikeStatus{ArticleId: id, LikeCount: likeCount})
}

// authLikes additionally reports whether the caller liked the article.
func (a *ArticleController) authLikes(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	likeCount, err := a.articleService.LikeCount(id)
	if err != nil {
		jsonServerError(c, "Error retrieving likes for the article", err)
		return
	}

	claims := session.GetLoginClaims(c)
	userLiked, err := a.likeService.HasLiked(claims.UserId, id)
	if err != nil {
		jsonServerError(c, "Error retrieving likes for the article", err)
		return
	}

	jsonObj(c, http.StatusOK, entity.LikeStatus{
		ArticleId: id,
		LikeCount: likeCount,
		UserLiked: &userLiked,
	})
}

// likeArticle records a like; liking twice is a conflict.
func (a *ArticleController) likeArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	claims := session.GetLoginClaims(c)
	err := a.likeService.Like(claims.UserId, id)
	if err == service.ErrAlreadyLiked {
		jsonMsg(c, http.StatusConflict, "You have already liked this article")
		return
	}
	if err != nil {
		jsonServerError(c, "Error liking the article", err)
		return
	}
	jsonMsg(c, http.StatusOK, "Article liked successfully")
}

// toggleLike flips the caller's like state on an article.
func (a *ArticleController) toggleLike(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	claims := session.GetLoginClaims(c)
	liked, err := a.likeService.Toggle(claims.UserId, id)
	if err != nil {
		jsonServerError(c, "Error toggling like", err)
		return
	}

	if liked {
		jsonMsg(c, http.StatusOK, "Article liked")
	} else {
		jsonMsg(c, http.StatusOK, "Article unliked")
	}
}

// articleComments lists the comments of one article, 404 when the article
// itself is missing.
func (a *ArticleController) articleComments(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	if _, err := a.articleService.Get(id); err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Article not found")
		} else {
			jsonServerError(c, "Error retrieving comments for the article", err)
		}
		return
	}

	comments, err := a.commentService.GetAllForArticle(id)
	if err != nil {
		jsonServerError(c, "Error retrieving comments for the article", err)
		return
	}
	if comments == nil {
		comments = []*model.CommentView{}
	}
	jsonObj(c, http.StatusOK, entity.CommentListing{ArticleId: id, Comments: comments})
}

// nextArticle returns the id-adjacent next article.
func (a *ArticleController) nextArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}
	a.neighbor(c, a.articleService.Next, id)
}

// previousArticle returns the id-adjacent previous article.
func (a *ArticleController) previousArticle(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}
	a.neighbor(c, a.articleService.Previous, id)
}

func (a *ArticleController) neighbor(c *gin.Context, fetch func(int) (*model.ArticleView, error), id int) {
	article, err := fetch(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "No more articles available")
		} else {
			jsonServerError(c, "Failed to fetch article", err)
		}
		return
	}
	jsonObj(c, http.StatusOK, article)
}
