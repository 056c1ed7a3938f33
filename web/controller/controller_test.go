package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"goblog/database"
	"goblog/database/model"
	"goblog/util/crypto"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("BLOG_SECRET", "unit-test-secret")
	gin.SetMode(gin.TestMode)

	os.Remove("test.db")
	assert.NoError(t, database.InitDB("test.db"))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove("test.db")
	})

	engine := gin.New()
	NewAuthController(engine.Group("/"))
	NewArticleController(engine.Group("/articles"))
	NewCommentController(engine.Group("/comments"))
	NewUserController(engine.Group("/users"))
	return engine
}

func registerUser(t *testing.T, username string, admin bool) *model.User {
	t.Helper()
	hash, err := crypto.HashPasswordAsBcrypt("password123")
	assert.NoError(t, err)
	user := &model.User{
		Username:    username,
		Password:    hash,
		Fname:       "Test",
		DateOfBirth: "1990-01-01",
		IsAdmin:     admin,
	}
	assert.NoError(t, (&service.UserService{}).Create(user))
	return user
}

func loginCookie(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	token, err := session.SignToken(user)
	assert.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func do(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginSetsCookie(t *testing.T) {
	engine := setupRouter(t)
	registerUser(t, "alice", false)

	body := strings.NewReader(`{"username":"alice","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := do(engine, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "alice", result["username"])

	var token string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName {
			token = cookie.Value
		}
	}
	assert.NotEmpty(t, token)

	claims, err := session.ParseToken(token)
	assert.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	engine := setupRouter(t)
	registerUser(t, "alice", false)

	body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusUnauthorized, do(engine, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, do(engine, req).Code)
}

func TestAuthGuards(t *testing.T) {
	engine := setupRouter(t)

	// No credential at all.
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusUnauthorized, do(engine, req).Code)

	// Garbage credential.
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, do(engine, req).Code)

	// Valid but non-admin credential on an admin route.
	bob := registerUser(t, "bob", false)
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(loginCookie(t, bob))
	assert.Equal(t, http.StatusForbidden, do(engine, req).Code)

	// Admin passes.
	admin := registerUser(t, "root", true)
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(loginCookie(t, admin))
	assert.Equal(t, http.StatusOK, do(engine, req).Code)
}

func TestSeededAdminCanAdminister(t *testing.T) {
	engine := setupRouter(t)

	// A fresh database seeds one admin account with default credentials.
	admin, err := (&service.UserService{}).GetByUsername("admin")
	assert.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, crypto.CheckPasswordHash(admin.Password, "admin"))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(loginCookie(t, admin))
	assert.Equal(t, http.StatusOK, do(engine, req).Code)
}

func TestArticleLifecycleOverHTTP(t *testing.T) {
	engine := setupRouter(t)
	author := registerUser(t, "alice", false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Hello")
	mw.WriteField("content", "World")
	mw.WriteField("summary", "Greeting")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/articles", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(loginCookie(t, author))
	w := do(engine, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Article *model.Article `json:"article"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotNil(t, created.Article)
	assert.NotZero(t, created.Article.Id)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/articles/%d", created.Article.Id), nil)
	w = do(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var view model.ArticleView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Hello", view.Title)
	assert.Equal(t, "alice", view.Username)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/articles/%d", created.Article.Id+1), nil)
	assert.Equal(t, http.StatusNotFound, do(engine, req).Code)

	// Missing required fields.
	var empty bytes.Buffer
	mw = multipart.NewWriter(&empty)
	mw.WriteField("title", "only a title")
	mw.Close()
	req = httptest.NewRequest(http.MethodPost, "/articles", &empty)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(loginCookie(t, author))
	assert.Equal(t, http.StatusBadRequest, do(engine, req).Code)
}

func TestCommentFlagsFollowCredential(t *testing.T) {
	engine := setupRouter(t)
	author := registerUser(t, "alice", false)

	article := &model.Article{Title: "t", Content: "c", Summary: "s", AuthorId: author.Id}
	assert.NoError(t, (&service.ArticleService{}).Create(article))
	comment := &model.Comment{Content: "hi", UserId: author.Id, ArticleId: article.Id}
	assert.NoError(t, (&service.CommentService{}).Create(comment))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/%d", article.Id), nil)
	w := do(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "canDelete")

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/comments/%d", article.Id), nil)
	req.AddCookie(loginCookie(t, author))
	w = do(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"canDelete":true`)
}

func TestLikeConflictOverHTTP(t *testing.T) {
	engine := setupRouter(t)
	user := registerUser(t, "alice", false)

	article := &model.Article{Title: "t", Content: "c", Summary: "s", AuthorId: user.Id}
	assert.NoError(t, (&service.ArticleService{}).Create(article))

	url := fmt.Sprintf("/articles/%d/like", article.Id)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	req.AddCookie(loginCookie(t, user))
	assert.Equal(t, http.StatusOK, do(engine, req).Code)

	req = httptest.NewRequest(http.MethodPost, url, nil)
	req.AddCookie(loginCookie(t, user))
	assert.Equal(t, http.StatusConflict, do(engine, req).Code)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/articles/%d/likes/public", article.Id), nil)
	w := do(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likeCount":1`)
}
