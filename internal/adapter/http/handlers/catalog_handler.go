package handlers

import (
	"errors"
	"net/http"

	request "github.com/henriquewc/sistema-atividades/internal/adapter/http/dto/request"
	response "github.com/henriquewc/sistema-atividades/internal/adapter/http/dto/response"
	"github.com/henriquewc/sistema-atividades/internal/usecase"
	"github.com/henriquewc/sistema-atividades/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the reference tables the proposal
// calculator reads from.

type CatalogHandler struct {
	usecase usecase.ICatalogoUseCase
}

func NewCatalogHandler(uc usecase.ICatalogoUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreatePotencia(c *gin.Context) {
	var payload request.CreatePotenciaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreatePotencia(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPotencia(p))
}

func (h *CatalogHandler) ListPotencias(c *gin.Context) {
	ps, err := h.usecase.ListPotencias(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPotencias(ps))
}

func (h *CatalogHandler) CreateCidade(c *gin.Context) {
	var payload request.CreateCidadeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	cidade, err := h.usecase.CreateCidade(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCidade(cidade))
}

func (h *CatalogHandler) ListCidades(c *gin.Context) {
	cs, err := h.usecase.ListCidades(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCidades(cs))
}

func (h *CatalogHandler) CreateMargem(c *gin.Context) {
	var payload request.CreateMargemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.CreateMargem(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMargem(m))
}

func (h *CatalogHandler) ListMargens(c *gin.Context) {
	ms, err := h.usecase.ListMargens(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMargens(ms))
}

func (h *CatalogHandler) CreateCondicaoPagamento(c *gin.Context) {
	var payload request.CreateCondicaoPagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	cp, err := h.usecase.CreateCondicaoPagamento(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCondicaoPagamento(cp))
}

func (h *CatalogHandler) ListCondicoesPagamento(c *gin.Context) {
	cps, err := h.usecase.ListCondicoesPagamento(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCondicoesPagamento(cps))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDadosCatalogoInvalidos):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCidadeJaCadastrada):
		return pkg.NewDomainErrorSimple("CIDADE_ALREADY_REGISTERED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPotenciaNaoEncontrada),
		errors.Is(err, usecase.ErrCidadeNaoEncontrada),
		errors.Is(err, usecase.ErrMargemNaoEncontrada),
		errors.Is(err, usecase.ErrCondicaoPagamentoNaoEncontrada):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
