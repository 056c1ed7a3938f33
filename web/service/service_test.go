package service

import (
	"os"
	"testing"

	"goblog/database"
	"goblog/database/model"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func mustUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:    username,
		Password:    "hashed-password",
		Fname:       "Test",
		DateOfBirth: "1990-01-01",
	}
	assert.NoError(t, (&UserService{}).Create(user))
	return user
}

func mustArticle(t *testing.T, authorId int, title string) *model.Article {
	t.Helper()
	article := &model.Article{
		Title:    title,
		Content:  "content of " + title,
		Summary:  "summary",
		AuthorId: authorId,
	}
	assert.NoError(t, (&ArticleService{}).Create(article))
	return article
}
