package handlers

import (
	"net/http"

	request "github.com/henriquewc/sistema-atividades/internal/adapter/http/dto/request"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"
	"github.com/henriquewc/sistema-atividades/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
)

// AuthHandler handles operator login.

type AuthHandler struct {
	verifier interfaces.ICredentialVerifier
}

func NewAuthHandler(verifier interfaces.ICredentialVerifier) *AuthHandler {
	return &AuthHandler{verifier: verifier}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	ok, err := h.verifier.Verify(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !ok {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": payload.Username})
}
