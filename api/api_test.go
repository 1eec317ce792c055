package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/stretchr/testify/require"
)

const testPassword = "admin123"

type testSite struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
	state  *site.State
	db     database.Database
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()

	db, err := database.NewInMemory()
	require.NoError(t, err)
	state, err := site.NewState(context.Background(), db.ProjectRepo(), db.CredentialRepo(), testPassword)
	require.NoError(t, err)
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	router, err := newRouter(state, renderer, withConfig(map[string]string{
		"SESSION_SECRET":  "session-secret-for-tests",
		"JWT_SECRET":      "jwt-secret-for-tests",
		"MAX_IMAGE_BYTES": "1024",
	}))
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testSite{t: t, server: server, client: client, state: state, db: db}
}

func (s *testSite) do(req *http.Request) (*http.Response, string) {
	s.t.Helper()
	resp, err := s.client.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, string(body)
}

func (s *testSite) get(path string) (*http.Response, string) {
	s.t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	require.NoError(s.t, err)
	return s.do(req)
}

func (s *testSite) postForm(path string, values url.Values) (*http.Response, string) {
	s.t.Helper()
	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, strings.NewReader(values.Encode()))
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testSite) sendJSON(method, path, token string, payload any) (*http.Response, string) {
	s.t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(s.t, err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func (s *testSite) login() {
	s.t.Helper()
	resp, _ := s.postForm("/admin/login", url.Values{"password": {testPassword}})
	require.Equal(s.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(s.t, "/admin", resp.Header.Get("Location"))
}

func (s *testSite) apiToken() string {
	s.t.Helper()
	resp, body := s.sendJSON(http.MethodPost, "/api/login", "", LoginRequest{Password: testPassword})
	require.Equal(s.t, http.StatusOK, resp.StatusCode, body)
	var login LoginResponse
	require.NoError(s.t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(s.t, login.Token)
	return login.Token
}

func titles(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Title
	}
	return out
}

func projectIDs(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
