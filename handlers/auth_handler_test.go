package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-management-api/models"
)

func TestSignUpAndLogin(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/signUp", map[string]string{
		"userName": "alice",
		"password": "secret",
		"name":     "Alice Smith",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	decodeJSON(t, resp, &created)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "alice", created.UserName)

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"userName": "alice",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, created.ID.Hex(), body["userId"])
	assert.Equal(t, "Alice Smith", body["name"])
}

func TestLoginRejectsUnknownAndWrongAlike(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/signUp", map[string]string{
		"userName": "alice", "password": "secret", "name": "Alice Smith",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// wrong password and unknown user must be indistinguishable
	wrongPassword := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"userName": "alice", "password": "nope",
	})
	unknownUser := doJSON(t, app, http.MethodPost, "/login", map[string]string{
		"userName": "nobody", "password": "secret",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode)

	first, err := io.ReadAll(wrongPassword.Body)
	require.NoError(t, err)
	wrongPassword.Body.Close()
	second, err := io.ReadAll(unknownUser.Body)
	require.NoError(t, err)
	unknownUser.Body.Close()
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "Invalid username or password")
}

func TestSignUpFailures(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/signUp", map[string]string{
		"userName": "alice", "password": "secret", "name": "Alice Smith",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// duplicate userName and missing fields get the same undifferentiated message
	resp = doJSON(t, app, http.MethodPost, "/signUp", map[string]string{
		"userName": "alice", "password": "other", "name": "Imposter",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Failed to create user", errorMessage(t, resp))

	resp = doJSON(t, app, http.MethodPost, "/signUp", map[string]string{
		"userName": "bob",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Failed to create user", errorMessage(t, resp))
}
