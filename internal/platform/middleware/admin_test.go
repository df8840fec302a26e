package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAdminGateCheck(t *testing.T) {
	gate := NewAdminGate("super-secret")

	testCases := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"Correct key", "super-secret", nil},
		{"Missing key", "", ErrMissingKey},
		{"Wrong key", "not-the-secret", ErrInvalidKey},
		{"Prefix of the secret", "super", ErrInvalidKey},
		{"Secret with trailing space", "super-secret ", ErrInvalidKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := gate.Check(tc.key)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Check(%q) = %v, want %v", tc.key, err, tc.wantErr)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := NewAdminGate("super-secret")

	// 閘門之後的處理器只有在密鑰正確時才會執行
	newRouter := func(handlerRan *bool) *gin.Engine {
		r := gin.New()
		r.GET("/admin", gate.RequireAdmin(), func(c *gin.Context) {
			*handlerRan = true
			c.JSON(200, gin.H{"ok": true})
		})
		return r
	}

	testCases := []struct {
		name       string
		headerKey  string
		setHeader  bool
		wantStatus int
		wantRan    bool
	}{
		{"Valid key", "super-secret", true, http.StatusOK, true},
		{"Absent header", "", false, http.StatusUnauthorized, false},
		{"Empty header", "", true, http.StatusUnauthorized, false},
		{"Wrong key", "guess", true, http.StatusUnauthorized, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handlerRan := false
			r := newRouter(&handlerRan)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.setHeader {
				req.Header.Set(AdminKeyHeader, tc.headerKey)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if handlerRan != tc.wantRan {
				t.Errorf("handlerRan = %v, want %v", handlerRan, tc.wantRan)
			}
		})
	}
}
