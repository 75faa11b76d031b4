package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mahendrairawan/sociable/internal/apperror"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return m
}

func TestFromErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperror.Validation("Invalid email format"), http.StatusBadRequest, "Invalid email format"},
		{"unauthorized", apperror.Unauthorized("You are not authorized to delete this post"), http.StatusUnauthorized, "You are not authorized to delete this post"},
		{"not found", apperror.NotFound("user not found"), http.StatusNotFound, "user not found"},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			FromError(c, testLogger(), tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if got := body(t, w)["error"]; got != tc.wantError {
				t.Fatalf("error = %v, want %q", got, tc.wantError)
			}
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	FromError(c, testLogger(), errors.New("password_hash column overflow"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if s := w.Body.String(); s != `{"error":"Internal server error"}` {
		t.Fatalf("leaked detail: %s", s)
	}
}

func TestMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Message(c, http.StatusOK, "Logged out successfully")

	if got := body(t, w)["message"]; got != "Logged out successfully" {
		t.Fatalf("message = %v", got)
	}
}
