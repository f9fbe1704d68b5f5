package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestShouldSkipIdempotence(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/journal/abc/bookmark", true},
		{"/bookmarks/abc", false},
		{"/journal/abc", false},
		{"/journal", false},
	}
	for _, tc := range cases {
		if got := shouldSkipIdempotence(tc.path); got != tc.want {
			t.Errorf("shouldSkipIdempotence(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

// Exempt routes must never touch redis, so a nil client is safe here: any
// regression dereferences it and the test panics.
func TestIdempotenceSkipsBookmarkToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hits int
	r := gin.New()
	r.Use(Idempotence(nil))
	r.POST("/journal/:id/bookmark", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusCreated, gin.H{"bookmarked": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/journal/abc/bookmark", nil)
		req.Header.Set("User-Agent", "test-agent")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("request %d: status = %d, want 201", i+1, w.Code)
		}
	}
	if hits != 2 {
		t.Fatalf("handler hits = %d, want 2", hits)
	}
}

func TestIdempotenceSkipsGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Idempotence(nil))
	r.GET("/journal", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/journal", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
