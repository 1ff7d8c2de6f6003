package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/config"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/handler"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/middleware"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)

	userHandler := handler.NewUserHandler(
		service.NewUserService(repository.NewUserRepository(db)))
	filmHandler := handler.NewFilmHandler(
		service.NewFilmService(repository.NewFilmRepository(db), redisClient))
	menuItemHandler := handler.NewMenuItemHandler(
		service.NewMenuItemService(repository.NewMenuItemRepository(db), redisClient))
	orderHandler := handler.NewOrderHandler(
		service.NewOrderService(repository.NewOrderRepository(db)))
	itemHandler := handler.NewItemHandler(
		service.NewItemService(repository.NewItemRepository(db)))

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit("100-M"))

	handler.RegisterRoutes(r, userHandler, filmHandler, menuItemHandler, orderHandler, itemHandler)

	r.GET("/health", healthCheckHandler(db, redisClient))

	port := ":" + cfg.Server.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheckHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		unavailable := []string{}
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			unavailable = append(unavailable, "database")
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			unavailable = append(unavailable, "redis")
		}

		if len(unavailable) > 0 {
			status = "degraded"
			httpStatus = http.StatusPartialContent
		}

		c.JSON(httpStatus, gin.H{
			"status":               status,
			"message":              "Server is running",
			"unavailable_services": unavailable,
			"timestamp":            time.Now(),
		})
	}
}
