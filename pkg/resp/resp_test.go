package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest},
		{apperr.Unauthorized("no token"), http.StatusUnauthorized},
		{apperr.Forbidden("wrong role"), http.StatusForbidden},
		{apperr.NotFound("missing"), http.StatusNotFound},
		{apperr.Conflict("duplicate"), http.StatusConflict},
		{apperr.Internal("boom", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.want {
			t.Fatalf("StatusOf(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorRendersKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, apperr.Conflict("category already exists"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "category already exists") {
		t.Fatalf("expected error message in body, got %s", w.Body.String())
	}
}
