package branching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patrickwarner/gitdrills/internal/models"
)

func TestLogin(t *testing.T) {
	t.Run("valid login", func(t *testing.T) {
		creds := models.Credentials{Username: "test_user@example.com", Password: "SecurePass123"}
		resp := models.Response{Status: 200, Body: map[string]any{"token": "abc123"}}

		assert.NotEmpty(t, creds.Username)
		assert.Equal(t, 200, resp.Status)
		assert.True(t, resp.Has("token"))
	})

	t.Run("invalid password", func(t *testing.T) {
		_ = models.Credentials{Username: "test_user@example.com", Password: "WrongPassword"}
		resp := models.Response{Status: 401, Body: map[string]any{"error": "Invalid credentials"}}

		assert.Equal(t, 401, resp.Status)
	})

	t.Run("empty username", func(t *testing.T) {
		creds := models.Credentials{Username: "", Password: "SecurePass123"}
		resp := models.Response{Status: 400, Body: map[string]any{"error": "Username required"}}

		assert.Empty(t, creds.Username)
		assert.Equal(t, 400, resp.Status)
	})

	t.Run("locked account", func(t *testing.T) {
		_ = models.Credentials{Username: "locked_user@example.com", Password: "SecurePass123"}
		resp := models.Response{Status: 403, Body: map[string]any{"error": "Account locked"}}

		assert.Equal(t, 403, resp.Status)
	})
}
