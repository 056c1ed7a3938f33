package session

import (
	"testing"

	"goblog/database/model"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("BLOG_SECRET", "unit-test-secret")

	user := &model.User{Id: 7, Username: "alice", IsAdmin: true}
	token, err := SignToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)
	assert.True(t, claims.IsAdmin)
}

func TestTokenRejectsTampering(t *testing.T) {
	t.Setenv("BLOG_SECRET", "unit-test-secret")

	token, err := SignToken(&model.User{Id: 1})
	assert.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	t.Setenv("BLOG_SECRET", "a-different-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestSignTokenRequiresSecret(t *testing.T) {
	t.Setenv("BLOG_SECRET", "")

	_, err := SignToken(&model.User{Id: 1})
	assert.Error(t, err)
}
