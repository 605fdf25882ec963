package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/sessions"
	"resumescore-backend/internal/shared/server/middleware"
	"resumescore-backend/internal/users"
)

func newAuthTestRouter() (*gin.Engine, *sessions.Service) {
	gin.SetMode(gin.TestMode)

	usersRepo := users.NewMemoryRepo()
	usersSvc := users.NewService(usersRepo)
	sessionsRepo := sessions.NewMemoryRepo(func(ctx context.Context, userID int64) (string, string, error) {
		user, err := usersRepo.GetByID(ctx, userID)
		if err != nil {
			return "", "", err
		}
		return user.Email, user.DisplayName, nil
	})
	sessionsSvc := sessions.NewService(sessionsRepo, time.Hour)

	router := gin.New()
	api := router.Group("/api")
	NewHandler(usersSvc, sessionsSvc).RegisterRoutes(api)
	return router, sessionsSvc
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupSetsSessionCookie(t *testing.T) {
	router, sessionsSvc := newAuthTestRouter()

	w := postJSON(router, "/api/auth/signup", `{"email":"jane@example.com","password":"password123","displayName":"Jane"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Token == "" || resp.User.ID == 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != resp.Token {
		t.Fatalf("session cookie not set correctly: %v", cookie)
	}

	session, err := sessionsSvc.Get(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("issued token does not resolve: %v", err)
	}
	if session.Email != "jane@example.com" {
		t.Fatalf("session email = %q", session.Email)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	router, _ := newAuthTestRouter()

	if w := postJSON(router, "/api/auth/signup", `{"email":"jane@example.com","password":"password123"}`); w.Code != http.StatusOK {
		t.Fatalf("first signup status = %d", w.Code)
	}
	w := postJSON(router, "/api/auth/signup", `{"email":"jane@example.com","password":"password456"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newAuthTestRouter()

	if w := postJSON(router, "/api/auth/signup", `{"email":"jane@example.com","password":"password123"}`); w.Code != http.StatusOK {
		t.Fatalf("signup status = %d", w.Code)
	}

	w := postJSON(router, "/api/auth/login", `{"email":"jane@example.com","password":"nope-nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Invalid email or password" {
		t.Fatalf("error = %q", resp["error"])
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	router, sessionsSvc := newAuthTestRouter()

	w := postJSON(router, "/api/auth/signup", `{"email":"jane@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d", w.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: resp.Token})
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)

	if lw.Code != http.StatusOK {
		t.Fatalf("logout status = %d", lw.Code)
	}
	if _, err := sessionsSvc.Get(context.Background(), resp.Token); err == nil {
		t.Fatal("session still resolvable after logout")
	}
}
