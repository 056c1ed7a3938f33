package controller

import (
	"net/http"

	"goblog/database"
	"goblog/database/model"
	"goblog/util/crypto"
	"goblog/web/service"
	"goblog/web/session"

	"github.com/gin-gonic/gin"
)

// UserController handles registration, profile management and the admin
// user listing.
type UserController struct {
	BaseController
}

// NewUserController creates the controller and registers its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.checkLogin, a.checkAdmin, a.getUsers)
	g.GET("/me", a.checkLogin, a.requireLiveUser, a.me)
	g.POST("/register", a.register)
	g.POST("/check-username", a.checkUsername)
	g.PATCH("/:id", a.checkLogin, a.updateUser)
	g.DELETE("/me/:id", a.checkLogin, a.requireLiveUser, a.deleteSelf)
	g.DELETE("/:id", a.checkLogin, a.checkAdmin, a.deleteUser)
	g.GET("/:id", a.getUser)
}

// getUsers lists every user with their article count. Admin only.
func (a *UserController) getUsers(c *gin.Context) {
	users, err := a.userService.GetAll()
	if err != nil {
		jsonServerError(c, "Error retrieving users.", err)
		return
	}
	jsonObj(c, http.StatusOK, users)
}

// me returns the caller's own live record.
func (a *UserController) me(c *gin.Context) {
	user := liveUser(c)
	jsonObj(c, http.StatusOK, user.Public())
}

// register creates a new account from a multipart form with an optional
// avatar upload.
func (a *UserController) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	fname := c.PostForm("fname")
	dateOfBirth := c.PostForm("dateOfBirth")

	if username == "" || password == "" || fname == "" || dateOfBirth == "" {
		jsonMsg(c, http.StatusBadRequest, "Required fields are missing.")
		return
	}

	available, err := a.userService.IsUsernameAvailable(username)
	if err != nil {
		jsonServerError(c, "Error registering user.", err)
		return
	}
	if !available {
		jsonMsg(c, http.StatusConflict, "Username already exists.")
		return
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		jsonServerError(c, "Error registering user.", err)
		return
	}

	avatar := c.PostForm("avatar")
	if file, err := c.FormFile("avatar"); err == nil {
		path, err := saveUpload(c, file, "avatars")
		if err != nil {
			jsonServerError(c, "Error registering user.", err)
			return
		}
		avatar = path
	}

	user := &model.User{
		Username:    username,
		Password:    hashedPassword,
		Fname:       fname,
		Lname:       c.PostForm("lname"),
		DateOfBirth: dateOfBirth,
		Bio:         c.PostForm("bio"),
		Avatar:      avatar,
	}

	if err := a.userService.Create(user); err != nil {
		if database.IsDuplicate(err) {
			jsonMsg(c, http.StatusConflict, "Username already exists.")
		} else {
			jsonServerError(c, "Error registering user.", err)
		}
		return
	}
	c.Status(http.StatusCreated)
}

// updateUser merges profile fields into an existing user. A user may edit
// themselves; admins may edit anyone. A supplied password is re-hashed.
func (a *UserController) updateUser(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	claims := session.GetLoginClaims(c)
	if claims.UserId != id && !claims.IsAdmin {
		jsonMsg(c, http.StatusForbidden, "Access denied. You can only update your own profile.")
		return
	}

	upd := service.UserUpdate{
		Username:    formValue(c, "username"),
		Fname:       formValue(c, "fname"),
		Lname:       formValue(c, "lname"),
		DateOfBirth: formValue(c, "dateOfBirth"),
		Bio:         formValue(c, "bio"),
		Avatar:      formValue(c, "avatar"),
	}

	if password := formValue(c, "password"); password != nil && *password != "" {
		hashed, err := crypto.HashPasswordAsBcrypt(*password)
		if err != nil {
			jsonServerError(c, "Error updating user information", err)
			return
		}
		upd.Password = &hashed
	}

	if file, err := c.FormFile("avatar"); err == nil {
		path, err := saveUpload(c, file, "avatars")
		if err != nil {
			jsonServerError(c, "Error updating user information", err)
			return
		}
		upd.Avatar = &path
	}

	if _, err := a.userService.Update(id, upd); err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "User not found")
		} else if database.IsDuplicate(err) {
			jsonMsg(c, http.StatusConflict, "Username already exists.")
		} else {
			jsonServerError(c, "Error updating user information", err)
		}
		return
	}
	jsonMsg(c, http.StatusOK, "User updated successfully")
}

// deleteUser removes any user. Admin only.
func (a *UserController) deleteUser(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	if err := a.userService.Delete(id); err != nil {
		jsonServerError(c, "Failed to delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteSelf removes the caller's own account.
func (a *UserController) deleteSelf(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	claims := session.GetLoginClaims(c)
	if claims.UserId != id {
		jsonMsg(c, http.StatusForbidden, "Access denied. You can only delete your own account.")
		return
	}

	if err := a.userService.Delete(id); err != nil {
		jsonServerError(c, "Failed to delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getUser returns the public view of one user.
func (a *UserController) getUser(c *gin.Context) {
	id, ok := paramId(c, "id")
	if !ok {
		return
	}

	user, err := a.userService.Get(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "User not found")
		} else {
			jsonServerError(c, "Failed to get user", err)
		}
		return
	}
	jsonObj(c, http.StatusOK, user.Public())
}

// checkUsername reports whether a username is still available.
func (a *UserController) checkUsername(c *gin.Context) {
	var form struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" {
		jsonMsg(c, http.StatusBadRequest, "Username is required.")
		return
	}

	available, err := a.userService.IsUsernameAvailable(form.Username)
	if err != nil {
		jsonServerError(c, "Error checking username availability.", err)
		return
	}
	if !available {
		jsonMsg(c, http.StatusConflict, "Username already exists.")
		return
	}
	jsonMsg(c, http.StatusOK, "Username is available.")
}
