package main

import (
	_ "github.com/henriquewc/sistema-atividades/docs"
	"github.com/henriquewc/sistema-atividades/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sistema de Atividades API
// @version         1.0
// @description     Client registry, maintenance activities and solar proposal pricing backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
