package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/henriquewc/sistema-atividades/internal/adapter/http/handlers/mocks"
	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func storedClient() entities.Client {
	return entities.Client{
		ID:                  "cl-1",
		NomeCompleto:        "Maria Souza",
		Documento:           "11144477735",
		Endereco:            "Rua das Flores, 10",
		Celular:             "11988887777",
		NumeroContrato:      "CT-2025-001",
		LoginConcessionaria: "maria.souza",
		SenhaConcessionaria: "segredo",
		Ativo:               true,
	}
}

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createBody := `{
		"nome_completo": "Maria Souza",
		"documento": "111.444.777-35",
		"endereco": "Rua das Flores, 10",
		"celular": "11988887777",
		"numero_contrato": "CT-2025-001",
		"login_concessionaria": "maria.souza",
		"senha_concessionaria": "segredo"
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success sanitizes response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storedClient(), nil)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		body := w.Body.String()
		if strings.Contains(body, "segredo") || strings.Contains(body, "senha_concessionaria") {
			t.Fatalf("response must not expose the concession password: %s", body)
		}
		if strings.Contains(body, "11144477735") {
			t.Fatalf("response must not expose the raw documento: %s", body)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["documento"] != "111.***.477-35" {
			t.Fatalf("expected masked documento, got %v", resp["documento"])
		}
	})

	t.Run("duplicate documento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrDocumentoJaCadastrado)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid documento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrDocumentoInvalido)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestClientHandler_UpdateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "cl-missing", gomock.Any()).Return(entities.Client{}, usecase.ErrClienteNaoEncontrado)

		r := gin.New()
		r.PATCH("/api/clients/:id", h.UpdateClient)

		req := httptest.NewRequest(http.MethodPatch, "/api/clients/cl-missing", bytes.NewBufferString(`{"endereco":"Av. Paulista, 1000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		updated := storedClient()
		updated.Endereco = "Av. Paulista, 1000"
		uc.EXPECT().Update(gomock.Any(), "cl-1", gomock.Any()).Return(updated, nil)

		r := gin.New()
		r.PATCH("/api/clients/:id", h.UpdateClient)

		req := httptest.NewRequest(http.MethodPatch, "/api/clients/cl-1", bytes.NewBufferString(`{"endereco":"Av. Paulista, 1000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_GetClientByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "cl-missing").Return(entities.Client{}, usecase.ErrClienteNaoEncontrado)

		r := gin.New()
		r.GET("/api/clients/:id", h.GetClientByID)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/cl-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "cl-1").Return(storedClient(), nil)

		r := gin.New()
		r.GET("/api/clients/:id", h.GetClientByID)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/cl-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "segredo") {
			t.Fatalf("response must not expose the concession password")
		}
	})
}

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/api/clients", h.ListClients)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("lists sanitized clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Client{storedClient()}, nil)

		r := gin.New()
		r.GET("/api/clients", h.ListClients)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 || resp[0]["documento"] != "111.***.477-35" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}
