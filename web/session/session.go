// Package session manages the signed login cookie. The cookie carries a
// time-limited token encoding the user's id and admin flag; handlers read
// the verified identity back out of the gin context.
package session

import (
	"time"

	"goblog/config"
	"goblog/database/model"
	"goblog/util/common"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the HTTP-only cookie holding the session token.
const CookieName = "authToken"

const loginUser = "LOGIN_USER"

// Claims is the payload of a session token.
type Claims struct {
	UserId  int  `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// SignToken issues a session token for the given user, valid for the
// configured session max age.
func SignToken(user *model.User) (string, error) {
	secret := config.GetSecret()
	if secret == "" {
		return "", common.NewError("session secret is not configured")
	}

	now := time.Now()
	claims := Claims{
		UserId:  user.Id,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.GetName(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.GetSessionMaxAge()) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a session token's signature and expiry and returns
// its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, common.NewError("invalid session token")
	}
	return claims, nil
}

// SetLoginUser issues a token for the user and sets it as the login cookie.
func SetLoginUser(c *gin.Context, user *model.User) error {
	token, err := SignToken(user)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, config.GetSessionMaxAge()*60, "/", "", false, true)
	return nil
}

// ClearSession expires the login cookie.
func ClearSession(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// SetLoginClaims attaches verified claims to the request context.
func SetLoginClaims(c *gin.Context, claims *Claims) {
	c.Set(loginUser, claims)
}

// GetLoginClaims returns the verified claims attached by the auth guard,
// or nil for anonymous requests.
func GetLoginClaims(c *gin.Context) *Claims {
	if obj, ok := c.Get(loginUser); ok {
		if claims, ok := obj.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// HasCredential reports whether the request presented a login cookie at
// all, verified or not.
func HasCredential(c *gin.Context) bool {
	token, err := c.Cookie(CookieName)
	return err == nil && token != ""
}
