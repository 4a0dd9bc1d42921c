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
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for the client registry. Every response
// body is built from the sanitized view, so the concession password and the
// unmasked document never leave the service.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient applies a partial update: absent fields keep their stored
// value.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.UpdateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClienteIDInvalido),
		errors.Is(err, usecase.ErrDadosClienteInvalidos),
		errors.Is(err, usecase.ErrDocumentoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentoJaCadastrado):
		return pkg.NewDomainErrorSimple("DOCUMENTO_ALREADY_REGISTERED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrClienteNaoEncontrado):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
