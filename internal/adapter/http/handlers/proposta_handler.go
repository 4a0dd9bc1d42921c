package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "github.com/henriquewc/sistema-atividades/internal/adapter/http/dto/request"
	response "github.com/henriquewc/sistema-atividades/internal/adapter/http/dto/response"
	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/domain/pricing"
	"github.com/henriquewc/sistema-atividades/internal/usecase"
	"github.com/henriquewc/sistema-atividades/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPropostaPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSTA_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// PropostaHandler handles HTTP requests for solar-installation proposals,
// their status flow and the down payment of approved ones.

type PropostaHandler struct {
	usecase usecase.IPropostaUseCase
}

func NewPropostaHandler(uc usecase.IPropostaUseCase) *PropostaHandler {
	return &PropostaHandler{usecase: uc}
}

func (h *PropostaHandler) CreateProposta(c *gin.Context) {
	var payload request.CreatePropostaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropostaPayload.HTTPStatus, errInvalidPropostaPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposta(p))
}

func (h *PropostaHandler) GetPropostaByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposta(p))
}

func (h *PropostaHandler) ListPropostas(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPropostas(ps))
}

func (h *PropostaHandler) EnviarProposta(c *gin.Context) {
	h.patchPropostaStatus(c, h.usecase.Enviar)
}

func (h *PropostaHandler) AprovarProposta(c *gin.Context) {
	h.patchPropostaStatus(c, h.usecase.Aprovar)
}

func (h *PropostaHandler) RejeitarProposta(c *gin.Context) {
	h.patchPropostaStatus(c, h.usecase.Rejeitar)
}

func (h *PropostaHandler) patchPropostaStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposta, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposta(p))
}

// CreatePagamento collects the down payment of an approved proposal.
func (h *PropostaHandler) CreatePagamento(c *gin.Context) {
	propostaID := c.Param("id")
	log.Printf("[pagamento][handler] create start proposta_id=%s", propostaID)
	mockMode := isPagamentoMockEnabled()
	payload, err := readPagamentoPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[pagamento][handler] payload invalid in mock mode; fallback to empty payload proposta_id=%s err=%v", propostaID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[pagamento][handler] invalid payload proposta_id=%s err=%v", propostaID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CriarPagamento(c.Request.Context(), propostaID, payload)
	if err != nil {
		log.Printf("[pagamento][handler] create failed proposta_id=%s err=%v", propostaID, err)
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pagamento][handler] create success proposta_id=%s payment_id=%s status=%s", propostaID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPagamento(created))
}

func (h *PropostaHandler) ListPagamentos(c *gin.Context) {
	pagamentos, err := h.usecase.ListarPagamentos(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropostaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPagamentos(pagamentos))
}

func readPagamentoPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPropostaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPropostaIDInvalido),
		errors.Is(err, usecase.ErrDadosPropostaInvalidos),
		errors.Is(err, usecase.ErrTipoTelhadoInvalido),
		errors.Is(err, usecase.ErrDiasInstalacaoInvalido),
		errors.Is(err, pricing.ErrPotenciaInvalida),
		errors.Is(err, pricing.ErrValorNegativo),
		errors.Is(err, usecase.ErrPagamentoPayloadInvalido),
		errors.Is(err, usecase.ErrGatewayRequisicaoInvalida):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSTA_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNaoAutorizado):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGatewayNaoConfigurado):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPropostaNaoEncontrada):
		return pkg.NewDomainErrorSimple("PROPOSTA_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrPotenciaNaoEncontrada),
		errors.Is(err, usecase.ErrCidadeNaoEncontrada),
		errors.Is(err, usecase.ErrMargemNaoEncontrada),
		errors.Is(err, usecase.ErrCondicaoPagamentoNaoEncontrada):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransicaoStatusInvalida),
		errors.Is(err, usecase.ErrPropostaNaoAprovada):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSTA_STATE", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPagamentoMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
