package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func guardedRouter(key string) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	r.POST("/guarded", RequireAPIKey(key), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, &hits
}

func TestRequireAPIKey_MissingHeader(t *testing.T) {
	r, hits := guardedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatalf("handler must not run")
	}
}

func TestRequireAPIKey_NonBearerScheme(t *testing.T) {
	r, hits := guardedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Basic c2VjcmV0")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatalf("handler must not run")
	}
}

func TestRequireAPIKey_WrongKey(t *testing.T) {
	r, hits := guardedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-the-key")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if *hits != 0 {
		t.Fatalf("handler must not run")
	}
}

func TestRequireAPIKey_ValidKey(t *testing.T) {
	r, hits := guardedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer secret")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if *hits != 1 {
		t.Fatalf("handler should run once")
	}
}
