package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestInternalErrorHidesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cause := errors.New("Error 1146 (42S02): Table 'mood.sentiment_scores' doesn't exist")
	InternalError(c, cause)

	if w.Code != 500 {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Internal Server Error" {
		t.Errorf("message = %q, want generic", body.Message)
	}
	if strings.Contains(w.Body.String(), "1146") || strings.Contains(w.Body.String(), "sentiment_scores") {
		t.Errorf("body leaks error internals: %s", w.Body.String())
	}

	// The cause must stay on the context for the request logger.
	if len(c.Errors) != 1 || !errors.Is(c.Errors[0].Err, cause) {
		t.Fatalf("context errors = %v, want the cause", c.Errors)
	}
}

func TestInternalErrorNilCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	InternalError(c, nil)

	if w.Code != 500 {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if len(c.Errors) != 0 {
		t.Errorf("context errors = %v, want none", c.Errors)
	}
}
