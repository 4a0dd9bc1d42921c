package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_interfaces "github.com/henriquewc/sistema-atividades/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockICredentialVerifier(ctrl)
		h := NewAuthHandler(verifier)

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockICredentialVerifier(ctrl)
		h := NewAuthHandler(verifier)

		verifier.EXPECT().Verify(gomock.Any(), "admin", "wrong").Return(false, nil)

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockICredentialVerifier(ctrl)
		h := NewAuthHandler(verifier)

		verifier.EXPECT().Verify(gomock.Any(), "admin", "admin123").Return(true, nil)

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"username":"admin","password":"admin123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
