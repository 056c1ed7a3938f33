// Package entity defines the response shapes used by the web layer.
package entity

import "goblog/database/model"

// Msg is the standard message body for non-object responses and errors.
type Msg struct {
	Message string `json:"message"`
}

// LoginResult is the body returned on a successful login.
type LoginResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LikeStatus reports the like count of an article, plus the caller's own
// like state when the request was authenticated.
type LikeStatus struct {
	ArticleId int   `json:"articleId"`
	LikeCount int64 `json:"likeCount"`
	UserLiked *bool `json:"userLiked,omitempty"`
}

// CommentListing is the body of the per-article comment endpoint.
type CommentListing struct {
	ArticleId int                  `json:"articleId"`
	Comments  []*model.CommentView `json:"comments"`
}

// CreatedArticle is the body returned when an article is created or merged.
type CreatedArticle struct {
	Message string         `json:"message"`
	Article *model.Article `json:"article"`
}

// CreatedComment is the body returned when a comment is created.
type CreatedComment struct {
	Message   string `json:"message"`
	CommentId int    `json:"comment_id"`
}
