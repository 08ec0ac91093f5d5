package routes

import (
	"log"

	_ "imagine_hub/docs" // swag-generated OpenAPI registration
	"imagine_hub/internal/adapter/http/handlers"
	repository2 "imagine_hub/internal/adapter/persistence/repository"
	"imagine_hub/internal/config"
	"imagine_hub/internal/infrastructure/imaging"
	"imagine_hub/internal/infrastructure/printing"
	"imagine_hub/internal/usecase"
	"imagine_hub/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.FromEnv()

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(cfg.HTTPAddr)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	orderRepo := repository2.NewMemoryOrderRepository()
	ingestor := imaging.NewIngestor(cfg.MaxImageBytes)
	renderer := printing.NewHTMLRenderer()
	printer := printing.NewSpoolPrinter(renderer, cfg.PrintSpoolDir)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, ingestor, cfg.Contact)
	quoteUseCase := usecase.NewQuoteUseCase(orderUseCase, renderer, printer)

	v := validation.New()
	orderHandler := handlers.NewOrderHandler(orderUseCase, v, cfg.MaxImageBytes)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, quoteHandler)
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The quote editor runs in a browser on another origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))
}
