package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/henriquewc/sistema-atividades/docs" // swag-generated docs
	"github.com/henriquewc/sistema-atividades/internal/adapter/http/handlers"
	"github.com/henriquewc/sistema-atividades/internal/adapter/persistence/repository"
	"github.com/henriquewc/sistema-atividades/internal/infrastructure/auth"
	"github.com/henriquewc/sistema-atividades/internal/infrastructure/database"
	"github.com/henriquewc/sistema-atividades/internal/infrastructure/payments"
	"github.com/henriquewc/sistema-atividades/internal/usecase"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	activityRepo := repository.NewActivityDynamoRepository(ddb)
	potenciaRepo := repository.NewPotenciaDynamoRepository(ddb)
	cidadeRepo := repository.NewCidadeDynamoRepository(ddb)
	margemRepo := repository.NewMargemDynamoRepository(ddb)
	condicaoRepo := repository.NewCondicaoPagamentoDynamoRepository(ddb)
	propostaRepo := repository.NewPropostaDynamoRepository(ddb)
	pagamentoRepo := repository.NewPropostaPagamentoDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	activityUseCase := usecase.NewActivityUseCase(activityRepo, clientRepo, nil)
	catalogoUseCase := usecase.NewCatalogoUseCase(potenciaRepo, cidadeRepo, margemRepo, condicaoRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	propostaUseCase := usecase.NewPropostaUseCase(
		propostaRepo,
		pagamentoRepo,
		potenciaRepo,
		cidadeRepo,
		margemRepo,
		condicaoRepo,
		paymentGateway,
		pricingConfigFromEnv(),
	)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	activityHandler := handlers.NewActivityHandler(activityUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogoUseCase)
	propostaHandler := handlers.NewPropostaHandler(propostaUseCase)
	authHandler := handlers.NewAuthHandler(auth.NewStaticVerifierFromEnv())

	addHealthcheckRoutes(router)

	// Rotas publicas
	api := router.Group("/api")
	addAuthRoutes(api, authHandler)
	addClientRoutes(api, clientHandler, activityHandler)
	addActivityRoutes(api, activityHandler)
	addCatalogRoutes(api, catalogHandler)
	addPropostaRoutes(api, propostaHandler)
}

// pricingConfigFromEnv loads the pricing knobs. Values are integer cents
// except the tax rate, which is basis points.
func pricingConfigFromEnv() usecase.PricingConfig {
	return usecase.PricingConfig{
		MaoObraDia:      getenvInt64("MAO_OBRA_DIA_CENTAVOS", 15000),
		ValorProjeto:    getenvInt64("VALOR_PROJETO_CENTAVOS", 150000),
		AliquotaImposto: getenvInt64("ALIQUOTA_IMPOSTO_BP", 600),
	}
}

func getenvInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
