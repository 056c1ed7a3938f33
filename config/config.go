package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BLOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("BLOG_WEB_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BLOG_WEB_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 3000
	}
	return port
}

// GetAdminUsername returns the username the first admin account is seeded
// with on an empty database.
func GetAdminUsername() string {
	username := os.Getenv("BLOG_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	return username
}

// GetAdminPassword returns the initial password of the seeded admin. It
// should be changed after the first login.
func GetAdminPassword() string {
	password := os.Getenv("BLOG_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	return password
}

// GetSecret returns the key used to sign session tokens. Empty means the
// server must refuse to start.
func GetSecret() string {
	return os.Getenv("BLOG_SECRET")
}

// GetSessionMaxAge returns the session token lifetime in minutes.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("BLOG_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 60
	}
	return maxAge
}

// GetUploadFolder returns the directory uploaded images are written to.
// Avatars live in an "avatars" subdirectory beneath it.
func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("BLOG_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "public/images"
	}
	return uploadFolderPath
}
