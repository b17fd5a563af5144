package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "carmarket/docs" // swagger docs registration
	"carmarket/internal/adapter/http/handlers"
	"carmarket/internal/adapter/persistence/repository"
	"carmarket/internal/infrastructure/payments"
	"carmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"
const defaultValuationDelay = 2 * time.Second

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	vehicleRepo := repository.NewVehicleMemoryRepository(repository.SeedVehicles())
	cartRepo := repository.NewCartMemoryRepository()
	wishlistRepo := repository.NewWishlistMemoryRepository()
	orderRepo := repository.NewOrderMemoryRepository()
	draftRepo := repository.NewDraftMemoryRepository()
	valuationRepo := repository.NewValuationMemoryRepository()
	listingRepo := repository.NewListingRepositoryFromEnv()

	paymentGateway, err := payments.NewGatewayFromEnv()
	if err != nil {
		log.Printf("[marketplace][routes] payment gateway not configured: %v", err)
	}

	catalogUseCase := usecase.NewCatalogUseCase(vehicleRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, vehicleRepo, orderRepo, paymentGateway)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, vehicleRepo)
	listingUseCase := usecase.NewListingUseCase(draftRepo, listingRepo)
	valuationUseCase := usecase.NewValuationUseCase(draftRepo, valuationRepo, usecase.NewEstimator(nil), valuationDelayFromEnv())

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	wishlistHandler := handlers.NewWishlistHandler(wishlistUseCase)
	listingHandler := handlers.NewListingHandler(listingUseCase)
	valuationHandler := handlers.NewValuationHandler(valuationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, catalogHandler, cartHandler, wishlistHandler, listingHandler, valuationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// valuationDelayFromEnv reads the simulated "calculating your estimate"
// pause. VALUATION_DELAY_MS=0 disables it.
func valuationDelayFromEnv() time.Duration {
	raw := os.Getenv("VALUATION_DELAY_MS")
	if raw == "" {
		return defaultValuationDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("[marketplace][routes] invalid VALUATION_DELAY_MS %q, using default", raw)
		return defaultValuationDelay
	}
	return time.Duration(ms) * time.Millisecond
}
