package routes

import (
	"log"
	"os"
	"strconv"

	_ "towdispatch/docs" // This will be auto-generated
	"towdispatch/internal/adapter/http/handlers"
	"towdispatch/internal/adapter/persistence/repository"
	"towdispatch/internal/domain/pricing"
	"towdispatch/internal/infrastructure/database"
	"towdispatch/internal/infrastructure/geo"
	"towdispatch/internal/infrastructure/locks"
	"towdispatch/internal/infrastructure/notifications"
	"towdispatch/internal/infrastructure/payments"
	"towdispatch/internal/usecase"
	"towdispatch/internal/usecase/interfaces"

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
	jobRepo := newJobRepository()

	calculator := pricing.NewCalculator(pricing.RateTableFromEnv())
	dispatcher := notifications.NewLogDispatcher()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var batchLock interfaces.IBatchLock
	if redisClient := locks.ConnectRedis(); redisClient != nil {
		batchLock = locks.NewRedisBatchLock(redisClient)
	}

	lifecycleUseCase := usecase.NewJobLifecycleUseCase(jobRepo, calculator, dispatcher)
	ledgerUseCase := usecase.NewLedgerUseCase()
	payoutUseCase := usecase.NewPayoutUseCase(jobRepo, batchLock)

	jobHandler := handlers.NewJobHandler(lifecycleUseCase, ledgerUseCase)
	paymentHandler := handlers.NewPaymentHandler(lifecycleUseCase, paymentGateway)
	supplierHandler := handlers.NewSupplierHandler(lifecycleUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)
	quoteHandler := handlers.NewQuoteHandler(geo.NewRoutingDistanceProvider(), calculator)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDispatchRoutes(v1, jobHandler, paymentHandler, supplierHandler, payoutHandler, quoteHandler)
}

func newJobRepository() interfaces.IJobRepository {
	if mock, _ := strconv.ParseBool(os.Getenv("JOBSTORE_MOCK")); mock {
		log.Printf("[jobstore] mock mode enabled, using in-memory repository")
		return repository.NewJobMemoryRepository()
	}
	return repository.NewJobDynamoRepository(database.ConnectDynamoDB())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
