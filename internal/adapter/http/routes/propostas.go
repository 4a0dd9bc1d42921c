package routes

import (
	"github.com/henriquewc/sistema-atividades/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPropostas = "/propostas"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	potencias := rg.Group("/potencias")
	{
		potencias.GET("", catalogHandler.ListPotencias)
		potencias.POST("", catalogHandler.CreatePotencia)
	}

	cidades := rg.Group("/cidades")
	{
		cidades.GET("", catalogHandler.ListCidades)
		cidades.POST("", catalogHandler.CreateCidade)
	}

	margens := rg.Group("/margens")
	{
		margens.GET("", catalogHandler.ListMargens)
		margens.POST("", catalogHandler.CreateMargem)
	}

	condicoes := rg.Group("/condicoes-pagamento")
	{
		condicoes.GET("", catalogHandler.ListCondicoesPagamento)
		condicoes.POST("", catalogHandler.CreateCondicaoPagamento)
	}
}

func addPropostaRoutes(rg *gin.RouterGroup, propostaHandler *handlers.PropostaHandler) {
	propostas := rg.Group(PathPropostas)
	{
		propostas.GET("", propostaHandler.ListPropostas)
		propostas.POST("", propostaHandler.CreateProposta)
		propostas.GET("/:id", propostaHandler.GetPropostaByID)
		propostas.PATCH("/:id/enviar", propostaHandler.EnviarProposta)
		propostas.PATCH("/:id/aprovar", propostaHandler.AprovarProposta)
		propostas.PATCH("/:id/rejeitar", propostaHandler.RejeitarProposta)
		propostas.POST("/:id/pagamentos", propostaHandler.CreatePagamento)
		propostas.GET("/:id/pagamentos", propostaHandler.ListPagamentos)
	}
}
