package main

import (
	"context"
	"log"

	"tickl-backend/controller"
	"tickl-backend/dal"
	"tickl-backend/infrastructure"
	"tickl-backend/middelware"
	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/services"
	"tickl-backend/utils"
	"tickl-backend/utils/logger"
	"tickl-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Tickl Backend API
// @version 1.0
// @description Organization and admin management backend: email-domain
// @description verification, admin provisioning, organization approval and
// @description anonymous messaging over public links.
// @description
// @description Authenticate via **POST /user/login** and pass the returned
// @description token as `Bearer YOUR_TOKEN` in the Authorization header.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme.
func main() {
	Init()

	ctx := context.Background()
	lg := logger.NewLogger(config.LogLevel, config.LogFormat)
	lg.Infof("Config loaded for environment: %s", config.AppEnv)

	dbclient, err := dal.NewDynamoDBClient(config, lg)
	if err != nil {
		lg.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	// Make sure the tables exist before accepting traffic
	setup := infrastructure.NewSetup(dbclient, config, lg)
	if err := setup.EnsureTables(ctx); err != nil {
		lg.Fatalf("Failed to ensure tables: %v", err)
	}

	r := gin.New()
	logging := middelware.NewLoggingMiddleware(lg)
	cors := middelware.NewCORSMiddleware(config)
	r.Use(logging.StructuredLogger(), logging.Recovery(), cors.CORS())

	c := controller.NewController(ctx, config, lg)

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			lg.Fatalf("Server error: %v", err)
		}
	}()

	// Background reconciler for public links missed by the profile trigger
	userRepo := repository.NewUserRepository(dbclient, config, lg)
	linkRepo := repository.NewPublicLinkRepository(dbclient, config, lg)
	linkService := services.NewPublicLinkService(linkRepo, userRepo, lg)

	reconciler, err := worker.NewReconciler(config, userRepo, linkService, lg)
	if err != nil {
		lg.Fatalf("Failed to create reconciler: %v", err)
	}
	if err := reconciler.Start(); err != nil {
		lg.Fatalf("Failed to start reconciler: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
