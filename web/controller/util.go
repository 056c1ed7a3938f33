package controller

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"goblog/config"
	"goblog/logger"
	"goblog/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// jsonMsg sends a message body with the given status code.
func jsonMsg(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{Message: msg})
}

// jsonObj sends an object with the given status code.
func jsonObj(c *gin.Context, statusCode int, obj any) {
	c.JSON(statusCode, obj)
}

// jsonServerError logs the full error server-side and answers with a
// minimal 500 body.
func jsonServerError(c *gin.Context, msg string, err error) {
	logger.Warning(msg+":", err)
	c.JSON(http.StatusInternalServerError, entity.Msg{Message: msg})
}

// paramId parses a positive integer path parameter. Returns 0 and false
// after answering 400 when the value is unusable.
func paramId(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		jsonMsg(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// saveUpload stores an uploaded file under the upload folder (in subdir if
// given) with a generated name that keeps the original extension, and
// returns the public path it will be served from.
func saveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	newName := uuid.NewString() + ext

	dir := config.GetUploadFolder()
	publicPath := "/images/" + newName
	if subdir != "" {
		dir = filepath.Join(dir, subdir)
		publicPath = "/images/" + subdir + "/" + newName
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, newName)); err != nil {
		return "", err
	}
	return publicPath, nil
}

// formValue returns a pointer to the form field value, or nil when the
// field was not supplied at all.
func formValue(c *gin.Context, name string) *string {
	if value, ok := c.GetPostForm(name); ok {
		return &value
	}
	return nil
}
