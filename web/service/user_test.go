package service

import (
	"testing"

	"goblog/database"
	"goblog/database/model"

	"github.com/stretchr/testify/assert"
)

func TestUsernameAvailability(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	available, err := service.IsUsernameAvailable("alice")
	assert.NoError(t, err)
	assert.True(t, available)

	mustUser(t, "alice")

	available, err = service.IsUsernameAvailable("alice")
	assert.NoError(t, err)
	assert.False(t, available)

	err = service.Create(&model.User{Username: "alice", Password: "other"})
	assert.True(t, database.IsDuplicate(err))
}

func TestUserUpdateDiff(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	user := mustUser(t, "alice")

	// Re-sending the stored values produces an empty write set.
	sameName := user.Fname
	unchanged, err := service.Update(user.Id, UserUpdate{Fname: &sameName})
	assert.NoError(t, err)
	assert.Equal(t, user.Fname, unchanged.Fname)

	bio := "writes about bread"
	admin := true
	updated, err := service.Update(user.Id, UserUpdate{Bio: &bio, IsAdmin: &admin})
	assert.NoError(t, err)
	assert.Equal(t, "writes about bread", updated.Bio)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, user.Username, updated.Username)

	_, err = service.Update(user.Id+100, UserUpdate{Bio: &bio})
	assert.True(t, database.IsNotFound(err))
}

func TestUserArticleCounts(t *testing.T) {
	setup()
	defer teardown()

	alice := mustUser(t, "alice")
	mustUser(t, "bob")
	mustArticle(t, alice.Id, "one")
	mustArticle(t, alice.Id, "two")

	service := UserService{}
	users, err := service.GetAll()
	assert.NoError(t, err)
	// alice, bob and the seeded admin.
	assert.Len(t, users, 3)

	counts := map[string]int{}
	for _, user := range users {
		counts[user.Username] = user.ArticleCount
	}
	assert.Equal(t, 2, counts["alice"])
	assert.Equal(t, 0, counts["bob"])
	assert.Equal(t, 0, counts["admin"])
}

func TestUserDeleteKeepsContent(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	user := mustUser(t, "alice")
	article := mustArticle(t, user.Id, "kept")

	assert.NoError(t, service.Delete(user.Id))
	_, err := service.Get(user.Id)
	assert.True(t, database.IsNotFound(err))

	// Deletion does not cascade; the article row stays behind.
	var orphan model.Article
	assert.NoError(t, database.GetDB().Take(&orphan, article.Id).Error)

	assert.NoError(t, service.Delete(user.Id))
}
