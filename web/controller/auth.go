package controller

import (
	"net/http"

	"goblog/database"
	"goblog/util/crypto"
	"goblog/web/entity"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

// AuthController handles login and logout.
type AuthController struct {
	BaseController
}

// NewAuthController creates the controller and registers its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.DELETE("/logout", a.logout)
}

// login checks the credentials and sets the session cookie on success.
func (a *AuthController) login(c *gin.Context) {
	var form struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonMsg(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := a.userService.GetByUsername(form.Username)
	if err != nil && !database.IsNotFound(err) {
		jsonServerError(c, "Error logging in.", err)
		return
	}
	if err != nil || !crypto.CheckPasswordHash(user.Password, form.Password) {
		jsonMsg(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		jsonServerError(c, "Error logging in.", err)
		return
	}

	jsonObj(c, http.StatusOK, entity.LoginResult{
		Message:  "Login successful",
		Username: user.Username,
	})
}

// logout clears the session cookie.
func (a *AuthController) logout(c *gin.Context) {
	session.ClearSession(c)
	c.Status(http.StatusNoContent)
}
