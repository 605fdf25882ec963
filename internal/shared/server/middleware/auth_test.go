package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type staticResolver struct {
	identity Identity
	err      error
	tokens   []string
}

func (r *staticResolver) Resolve(ctx context.Context, token string) (Identity, error) {
	r.tokens = append(r.tokens, token)
	if r.err != nil {
		return Identity{}, r.err
	}
	return r.identity, nil
}

func newAuthRouter(resolver IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuth(resolver))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return r
}

func TestSessionAuthMissingToken(t *testing.T) {
	router := newAuthRouter(&staticResolver{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestSessionAuthCookieToken(t *testing.T) {
	resolver := &staticResolver{identity: Identity{UserID: 42, Email: "jane@example.com"}}
	router := newAuthRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-123"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(resolver.tokens) != 1 || resolver.tokens[0] != "tok-123" {
		t.Fatalf("resolver saw tokens %v", resolver.tokens)
	}
}

func TestSessionAuthBearerToken(t *testing.T) {
	resolver := &staticResolver{identity: Identity{UserID: 42}}
	router := newAuthRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok-456")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(resolver.tokens) != 1 || resolver.tokens[0] != "tok-456" {
		t.Fatalf("resolver saw tokens %v", resolver.tokens)
	}
}

func TestSessionAuthExpiredSession(t *testing.T) {
	router := newAuthRouter(&staticResolver{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
