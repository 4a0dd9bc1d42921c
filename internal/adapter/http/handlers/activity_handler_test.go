package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/adapter/http/handlers/mocks"
	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestActivityHandler_CreateActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createBody := `{
		"nome": "Monitoramento mensal",
		"tipo_servico": "Monitoramento",
		"cliente_id": "cl-1",
		"data_vencimento": "2025-06-01T00:00:00Z",
		"tipo_recorrencia": "Mensal",
		"intervalo_recorrencia": 6
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := gin.New()
		r.POST("/api/activities", h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Activity{}, usecase.ErrClienteNaoEncontrado)

		r := gin.New()
		r.POST("/api/activities", h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid tipo servico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Activity{}, usecase.ErrTipoServicoInvalido)

		r := gin.New()
		r.POST("/api/activities", h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Activity{
			ID:     "at-1",
			Nome:   "Monitoramento mensal",
			Status: entities.ActivityStatusPendente,
		}, nil)

		r := gin.New()
		r.POST("/api/activities", h.CreateActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestActivityHandler_GetActivityByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "at-missing").Return(entities.Activity{}, usecase.ErrAtividadeNaoEncontrada)

		r := gin.New()
		r.GET("/api/activities/:id", h.GetActivityByID)

		req := httptest.NewRequest(http.MethodGet, "/api/activities/at-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("serves reconciled status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "at-1").Return(entities.Activity{
			ID:     "at-1",
			Status: entities.ActivityStatusAtrasada,
		}, nil)

		r := gin.New()
		r.GET("/api/activities/:id", h.GetActivityByID)

		req := httptest.NewRequest(http.MethodGet, "/api/activities/at-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "atrasada" {
			t.Fatalf("expected atrasada, got %v", resp["status"])
		}
	})
}

func TestActivityHandler_ListClientActivities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().ListByCliente(gomock.Any(), "cl-missing").Return(nil, usecase.ErrClienteNaoEncontrado)

		r := gin.New()
		r.GET("/api/clients/:id/activities", h.ListClientActivities)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/cl-missing/activities", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lists activities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().ListByCliente(gomock.Any(), "cl-1").Return([]entities.Activity{
			{ID: "at-1", ClienteID: "cl-1", Status: entities.ActivityStatusEmDia},
		}, nil)

		r := gin.New()
		r.GET("/api/clients/:id/activities", h.ListClientActivities)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/cl-1/activities", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestActivityHandler_CompleteActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "at-missing").Return(entities.Activity{}, usecase.ErrAtividadeNaoEncontrada)

		r := gin.New()
		r.POST("/api/activities/:id/complete", h.CompleteActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities/at-missing/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		done := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Complete(gomock.Any(), "at-1").Return(entities.Activity{
			ID:            "at-1",
			Status:        entities.ActivityStatusConcluida,
			Concluida:     true,
			DataConclusao: &done,
		}, nil)

		r := gin.New()
		r.POST("/api/activities/:id/complete", h.CompleteActivity)

		req := httptest.NewRequest(http.MethodPost, "/api/activities/at-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "concluida" || resp["concluida"] != true {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}
