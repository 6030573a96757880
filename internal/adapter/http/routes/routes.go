package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "church_giving/docs"
	"church_giving/internal/adapter/http/handlers"
	"church_giving/internal/app"
	"church_giving/internal/infrastructure/config"
	"church_giving/internal/infrastructure/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups what NewRouter mounts.
type Handlers struct {
	Payments  *handlers.PaymentHandler
	Campaigns *handlers.CampaignHandler
	Auth      *handlers.AuthHandler
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config) error {
	services, err := app.Build(ctx, cfg, logging.NewJSONLogger(os.Stderr))
	if err != nil {
		return err
	}

	router := NewRouter(cfg.CORS, Handlers{
		Payments:  handlers.NewPaymentHandler(services.Payments),
		Campaigns: handlers.NewCampaignHandler(services.Campaigns),
		Auth:      handlers.NewAuthHandler(services.Auth),
	})

	log.Printf("[http] listening port=%s callback_url=%s", cfg.App.Port, cfg.CallbackURL())
	return router.Run(":" + cfg.App.Port)
}

func NewRouter(corsCfg config.CORSConfig, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, corsCfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments)
	addCampaignRoutes(v1, h.Campaigns)
	addAdminRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, corsCfg config.CORSConfig) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsCfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
