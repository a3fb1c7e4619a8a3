package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Redacted(t *testing.T) {
	u := User{ID: "1", Email: "a@x.com", PasswordHash: "$2a$10$abc"}

	redacted := u.Redacted()

	assert.Empty(t, redacted.PasswordHash)
	assert.Equal(t, u.ID, redacted.ID)
	assert.Equal(t, u.Email, redacted.Email)
	// The original is untouched.
	assert.Equal(t, "$2a$10$abc", u.PasswordHash)
}

func TestUser_RedactedJSONOmitsHash(t *testing.T) {
	u := User{ID: "1", Email: "a@x.com", PasswordHash: "$2a$10$abc"}

	raw, err := json.Marshal(u.Redacted())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "passwordHash")
	assert.NotContains(t, string(raw), "$2a$10$abc")
}
