package service

import (
	"testing"

	"goblog/database"
	"goblog/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCommentThreadOrder(t *testing.T) {
	setup()
	defer teardown()

	alice := mustUser(t, "alice")
	bob := mustUser(t, "bob")
	article := mustArticle(t, alice.Id, "Threaded")

	service := CommentService{}

	root1 := &model.Comment{Content: "first", UserId: alice.Id, ArticleId: article.Id}
	assert.NoError(t, service.Create(root1))
	root2 := &model.Comment{Content: "second", UserId: bob.Id, ArticleId: article.Id}
	assert.NoError(t, service.Create(root2))
	reply := &model.Comment{Content: "reply to first", UserId: bob.Id, ArticleId: article.Id, ParentCommentId: &root1.Id}
	assert.NoError(t, service.Create(reply))
	nested := &model.Comment{Content: "reply to the reply", UserId: alice.Id, ArticleId: article.Id, ParentCommentId: &reply.Id}
	assert.NoError(t, service.Create(nested))

	comments, err := service.GetAllForArticle(article.Id)
	assert.NoError(t, err)
	assert.Len(t, comments, 4)

	// Replies group after their thread root, then by id.
	var ids []int
	for _, comment := range comments {
		ids = append(ids, comment.Id)
	}
	assert.Equal(t, []int{root1.Id, reply.Id, root2.Id, nested.Id}, ids)
	assert.Equal(t, "alice", comments[0].Username)
}

func TestCommentDelete(t *testing.T) {
	setup()
	defer teardown()

	alice := mustUser(t, "alice")
	article := mustArticle(t, alice.Id, "Commented")

	service := CommentService{}
	root := &model.Comment{Content: "root", UserId: alice.Id, ArticleId: article.Id}
	assert.NoError(t, service.Create(root))
	reply := &model.Comment{Content: "reply", UserId: alice.Id, ArticleId: article.Id, ParentCommentId: &root.Id}
	assert.NoError(t, service.Create(reply))

	assert.NoError(t, service.Delete(root.Id))
	_, err := service.Get(root.Id)
	assert.True(t, database.IsNotFound(err))

	// The reply survives with its parent reference intact.
	orphan, err := service.Get(reply.Id)
	assert.NoError(t, err)
	assert.Equal(t, root.Id, *orphan.ParentCommentId)

	// Deleting again is a no-op.
	assert.NoError(t, service.Delete(root.Id))
}
