// Package controller provides the HTTP handlers for the blog API: articles,
// comments, users, authentication and server status.
package controller

import (
	"net/http"

	"goblog/database"
	"goblog/database/model"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

const liveUserKey = "LIVE_USER"

// BaseController carries the authentication guards shared by all
// controllers.
type BaseController struct {
	userService service.UserService
}

// checkLogin verifies the session cookie and attaches the decoded identity
// to the context. A missing credential and a rejected credential both deny
// access with 401, with distinct messages.
func (a *BaseController) checkLogin(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		jsonMsg(c, http.StatusUnauthorized, "Authentication required.")
		c.Abort()
		return
	}

	claims, err := session.ParseToken(token)
	if err != nil {
		jsonMsg(c, http.StatusUnauthorized, "Invalid or expired token.")
		c.Abort()
		return
	}

	session.SetLoginClaims(c, claims)
	c.Next()
}

// checkAdmin requires the admin flag in the verified claims. Runs after
// checkLogin.
func (a *BaseController) checkAdmin(c *gin.Context) {
	claims := session.GetLoginClaims(c)
	if claims == nil || !claims.IsAdmin {
		jsonMsg(c, http.StatusForbidden, "Access denied. Admin privileges required.")
		c.Abort()
		return
	}
	c.Next()
}

// requireLiveUser re-fetches the user behind the verified claims and
// rejects tokens that outlive their account. Runs after checkLogin.
func (a *BaseController) requireLiveUser(c *gin.Context) {
	claims := session.GetLoginClaims(c)
	if claims == nil {
		jsonMsg(c, http.StatusUnauthorized, "Authentication required.")
		c.Abort()
		return
	}

	user, err := a.userService.Get(claims.UserId)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusUnauthorized, "Authentication required.")
		} else {
			jsonServerError(c, "Error loading user", err)
		}
		c.Abort()
		return
	}

	c.Set(liveUserKey, user)
	c.Next()
}

// liveUser returns the record loaded by requireLiveUser.
func liveUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(liveUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
