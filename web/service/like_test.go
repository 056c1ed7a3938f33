package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeDuplicate(t *testing.T) {
	setup()
	defer teardown()

	user := mustUser(t, "alice")
	article := mustArticle(t, user.Id, "Liked")
	service := LikeService{}

	assert.NoError(t, service.Like(user.Id, article.Id))
	assert.ErrorIs(t, service.Like(user.Id, article.Id), ErrAlreadyLiked)

	liked, err := service.HasLiked(user.Id, article.Id)
	assert.NoError(t, err)
	assert.True(t, liked)

	count, err := (&ArticleService{}).LikeCount(article.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnlikeIdempotent(t *testing.T) {
	setup()
	defer teardown()

	user := mustUser(t, "alice")
	article := mustArticle(t, user.Id, "Liked")
	service := LikeService{}

	assert.NoError(t, service.Like(user.Id, article.Id))
	assert.NoError(t, service.Unlike(user.Id, article.Id))
	assert.NoError(t, service.Unlike(user.Id, article.Id))

	liked, err := service.HasLiked(user.Id, article.Id)
	assert.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	alice := mustUser(t, "alice")
	bob := mustUser(t, "bob")
	article := mustArticle(t, alice.Id, "Toggled")
	service := LikeService{}

	liked, err := service.Toggle(alice.Id, article.Id)
	assert.NoError(t, err)
	assert.True(t, liked)

	// Each user's state is independent.
	liked, err = service.Toggle(bob.Id, article.Id)
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, err = service.Toggle(alice.Id, article.Id)
	assert.NoError(t, err)
	assert.False(t, liked)

	has, err := service.HasLiked(alice.Id, article.Id)
	assert.NoError(t, err)
	assert.False(t, has)

	count, err := (&ArticleService{}).LikeCount(article.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
