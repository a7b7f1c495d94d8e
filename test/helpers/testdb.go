package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// RegisterAndLogin registers a user through the API and returns the session
// token together with the created user's ID.
func RegisterAndLogin(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, string) {
	t.Helper()

	registerBody := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+bodyStr)

	var user struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &user))

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user.ID
}

// RegisterCompanyUser registers a company account with a unique email and
// returns its token, user ID and the auto-created company profile ID.
func RegisterCompanyUser(t *testing.T, ts *TestServer) (string, string, string) {
	t.Helper()

	email := fmt.Sprintf("company_%d@test.com", time.Now().UnixNano())
	token, userID := RegisterAndLogin(t, ts, "Test Company", email, "password123", models.UserRoleCompany)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/companies/my", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "company profile should exist after registration: "+bodyStr)

	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &company))

	return token, userID, company.ID
}

// RegisterSeekerUser registers a job seeker account with a unique email.
func RegisterSeekerUser(t *testing.T, ts *TestServer) (string, string) {
	t.Helper()

	email := fmt.Sprintf("seeker_%d@test.com", time.Now().UnixNano())
	return RegisterAndLogin(t, ts, "Test Seeker", email, "password123", models.UserRoleJobSeeker)
}

// CreateJob posts a job through the API and returns its ID.
func CreateJob(t *testing.T, ts *TestServer, token, companyID string) string {
	t.Helper()

	body := map[string]interface{}{
		"title":            "Backend Engineer",
		"description":      "Build and operate the API",
		"requirements":     []string{"3+ years Go"},
		"responsibilities": []string{"Own services end to end"},
		"location":         "Berlin",
		"jobType":          "full_time",
		"experienceLevel":  "mid",
		"skills":           []string{"go", "postgres"},
		"companyId":        companyID,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation should succeed: "+bodyStr)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
	return job.ID
}
