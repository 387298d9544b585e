package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/kisahtegar/foodly-app-sub000/config"
	"github.com/kisahtegar/foodly-app-sub000/controllers"
	"github.com/kisahtegar/foodly-app-sub000/database"
	"github.com/kisahtegar/foodly-app-sub000/metrics"
	"github.com/kisahtegar/foodly-app-sub000/middleware"
	"github.com/kisahtegar/foodly-app-sub000/repository"
	"github.com/kisahtegar/foodly-app-sub000/routes"
	"github.com/kisahtegar/foodly-app-sub000/services"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	orderRepo := repository.NewMongoOrderRepository(database.OpenCollection(database.Client, "order"))
	restaurantRepo := repository.NewMongoRestaurantRepository(database.OpenCollection(database.Client, "restaurant"))
	driverRepo := repository.NewMongoDriverRepository(database.OpenCollection(database.Client, "driver"))

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	locations := services.NewLocationStore(rdb)

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.FCM.Enabled {
		notifier = services.NewFCMNotifier(cfg.FCM.Endpoint, cfg.FCM.ServerKey)
	}

	var events services.EventPublisher
	if cfg.Kafka.Enabled {
		events, err = services.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.WithError(err).Warn("Kafka unavailable, order events disabled")
			events = nil
		}
	}

	wsHub := services.NewHub()
	dispatcher := services.NewDispatcher(notifier, events, wsHub)

	controllers.Setup(
		services.NewOrderService(orderRepo, dispatcher),
		services.NewAssignmentService(orderRepo, driverRepo, locations, dispatcher),
		services.NewSettlementService(orderRepo, restaurantRepo, driverRepo, locations, dispatcher),
		services.NewListingService(orderRepo),
		driverRepo,
		locations,
		wsHub,
	)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.PrometheusMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Use(middleware.Authentication())
	routes.OrderRoutes(router)
	routes.DriverRoutes(router)
	router.GET("/ws", controllers.HandleWebSocket())

	log.WithFields(log.Fields{"port": cfg.Server.Port}).Info("Foodly order backend starting")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
