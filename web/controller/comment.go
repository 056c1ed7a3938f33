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

// CommentController handles comment listing, creation and deletion.
type CommentController struct {
	BaseController

	commentService service.CommentService
}

// NewCommentController creates the controller and registers its routes.
func NewCommentController(g *gin.RouterGroup) *CommentController {
	a := &CommentController{}
	a.initRouter(g)
	return a
}

func (a *CommentController) initRouter(g *gin.RouterGroup) {
	// The GET and DELETE params share a name so they land on the same
	// tree node; for GET the id is an article id.
	g.GET("/:id", a.getComments)
	g.POST("", a.checkLogin, a.addComment)
	g.DELETE("/:id", a.checkLogin, a.deleteComment)
}

// getComments lists an article's comments in thread order. Requests
// carrying a credential get the canDelete/canReply control flags.
func (a *CommentController) getComments(c *gin.Context) {
	articleId, ok := paramId(c, "id")
	if !ok {
		return
	}

	comments, err := a.commentService.GetAllForArticle(articleId)
	if err != nil {
		jsonServerError(c, "Error retrieving comments for the article", err)
		return
	}
	if comments == nil {
		comments = []*model.CommentView{}
	}

	if session.HasCredential(c) {
		for _, comment := range comments {
			comment.CanDelete = true
			comment.CanReply = true
		}
	}

	jsonObj(c, http.StatusOK, comments)
}

// addComment stores a new comment, optionally as a reply.
func (a *CommentController) addComment(c *gin.Context) {
	var form struct {
		Content         string `json:"content"`
		ArticleId       int    `json:"article_id"`
		ParentCommentId *int   `json:"parent_comment_id"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.Content == "" || form.ArticleId == 0 {
		jsonMsg(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	claims := session.GetLoginClaims(c)
	comment := &model.Comment{
		Content:         form.Content,
		UserId:          claims.UserId,
		ArticleId:       form.ArticleId,
		ParentCommentId: form.ParentCommentId,
	}

	if err := a.commentService.Create(comment); err != nil {
		jsonServerError(c, "Failed to add comment", err)
		return
	}

	jsonObj(c, http.StatusCreated, entity.CreatedComment{
		Message:   "Comment added successfully",
		CommentId: comment.Id,
	})
}

// deleteComment removes one comment. Only its author or an admin may
// delete; replies are left in place.
func (a *CommentController) deleteComment(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	comment, err := a.commentService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "Comment not found")
		} else {
			jsonServerError(c, "Failed to delete comment", err)
		}
		return
	}

	claims := session.GetLoginClaims(c)
	if comment.UserId != claims.UserId && !claims.IsAdmin {
		jsonMsg(c, http.StatusForbidden, "Access denied. You can only delete your own comment.")
		return
	}

	if err := a.commentService.Delete(id); err != nil {
		jsonServerError(c, "Failed to delete comment", err)
		return
	}
	c.Status(http.StatusNoContent)
}
