package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
		"username": "alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registerResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	assert.NotEmpty(t, registerResp["token"])

	w = PerformRequest(router, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)

	body := map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "secret123",
		"username": "bob",
	}

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	body["username"] = "bob2"
	w = PerformRequest(router, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterDuplicateUsernameLeavesNoOrphan(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "secret123",
		"username": "carol",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate username fails and must roll back the user row.
	w = PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Dan",
		"email":    "dan@example.com",
		"password": "secret123",
		"username": "carol",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// The email was not left taken by an orphaned user.
	w = PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Dan",
		"email":    "dan@example.com",
		"password": "secret123",
		"username": "dan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)

	// Password too short.
	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "123",
		"username": "eve",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)

	w := PerformRequest(router, "GET", "/api/v1/diary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
