package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/minibank/ledger-api/internal/cqrs"
)

// ---- mock implementation ----

type mockAuthQuerier struct {
	loginFn func(cqrs.LoginCommand) (string, error)
}

func (m *mockAuthQuerier) Login(cmd cqrs.LoginCommand) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return "", fmt.Errorf("not configured")
}

// ---- helpers ----

func newAuthTestRouter(qrys AuthQuerier, loginPagePath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(qrys, loginPagePath)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	return r
}

func authDoRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(cqrs.LoginCommand) (string, error)
		expectedStatus int
	}{
		{
			name:           "success - valid credentials return token",
			body:           map[string]string{"username": "user1", "password": "password123"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "mock.jwt.token", nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorised - invalid credentials",
			body:           map[string]string{"username": "user1", "password": "wrongpass"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "", fmt.Errorf("invalid username or password") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]string{"username": "user1"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing username",
			body:           map[string]string{"password": "password123"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - empty body",
			body:           map[string]string{},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthQuerier{loginFn: tt.loginFn}, "")
			w := authDoRequest(router, http.MethodPost, "/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid JSON body: %v", err)
				}
				if resp.Token != "mock.jwt.token" {
					t.Errorf("expected mock token, got %q", resp.Token)
				}
			}
		})
	}
}

func TestLoginPage(t *testing.T) {
	page := filepath.Join(t.TempDir(), "login.html")
	if err := os.WriteFile(page, []byte("<html><body>login</body></html>"), 0o644); err != nil {
		t.Fatalf("failed to write login page: %v", err)
	}

	router := newAuthTestRouter(&mockAuthQuerier{}, page)
	w := authDoRequest(router, http.MethodGet, "/login", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "login") {
		t.Errorf("expected login page body, got %q", w.Body.String())
	}
}
