package main

import (
	"context"
	"log"

	_ "church_giving/docs"
	"church_giving/internal/adapter/http/routes"
	"church_giving/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Church Giving API
// @version         1.0
// @description     M-Pesa STK push giving (tithes, offerings, campaigns) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
