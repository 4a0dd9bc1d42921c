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
	errInvalidActivityPayload = pkg.NewDomainErrorSimple("INVALID_ACTIVITY_INPUT", "Invalid activity payload", http.StatusBadRequest)
)

// ActivityHandler handles HTTP requests for maintenance activities. Read
// endpoints serve the due-date status reconciled by the use case.

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var payload request.CreateActivityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	activity, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromActivity(activity))
}

func (h *ActivityHandler) GetActivityByID(c *gin.Context) {
	activity, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivity(activity))
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivities(activities))
}

// ListClientActivities serves GET /api/clients/:id/activities.
func (h *ActivityHandler) ListClientActivities(c *gin.Context) {
	activities, err := h.usecase.ListByCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivities(activities))
}

func (h *ActivityHandler) CompleteActivity(c *gin.Context) {
	activity, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivity(activity))
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAtividadeIDInvalido),
		errors.Is(err, usecase.ErrDadosAtividadeInvalidos),
		errors.Is(err, usecase.ErrTipoServicoInvalido),
		errors.Is(err, usecase.ErrTipoRecorrenciaInvalida),
		errors.Is(err, usecase.ErrIntervaloRecorrenciaInvalido),
		errors.Is(err, usecase.ErrDataVencimentoObrigatoria):
		return pkg.NewDomainErrorSimple("INVALID_ACTIVITY_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAtividadeNaoEncontrada):
		return pkg.NewDomainErrorSimple("ACTIVITY_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrClienteNaoEncontrado):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
