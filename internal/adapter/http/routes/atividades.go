package routes

import (
	"net/http"

	"github.com/henriquewc/sistema-atividades/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients    = "/clients"
	PathActivities = "/activities"
)

func addHealthcheckRoutes(r *gin.Engine) {
	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, activityHandler *handlers.ActivityHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.GET("/:id/activities", activityHandler.ListClientActivities)
	}
}

func addActivityRoutes(rg *gin.RouterGroup, activityHandler *handlers.ActivityHandler) {
	activities := rg.Group(PathActivities)
	{
		activities.GET("", activityHandler.ListActivities)
		activities.POST("", activityHandler.CreateActivity)
		activities.GET("/:id", activityHandler.GetActivityByID)
		activities.POST("/:id/complete", activityHandler.CompleteActivity)
	}
}
