package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vinylswarm/internal/handlers"
	"vinylswarm/internal/models"
	"vinylswarm/internal/repositories"
	"vinylswarm/internal/services"
	"vinylswarm/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8000")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// DATABASE_URL is the one required setting; without it the process logs
	// and never binds a listener.
	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		log.Println("ERROR: DATABASE_URL must be set")
		return
	}

	// --- Persistence pool ---
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to the database: %v", err)
		return
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		sqlDB.SetMaxOpenConns(10)
	}
	log.Println("Connection to the database is successful")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Record{},
		&models.RecordStore{},
		&models.UserRecord{},
		&models.UserWishlist{},
		&models.UserRecordStore{},
	); err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return
	}

	// --- RabbitMQ (optional) ---
	// Library events are a side channel; the API runs fine without a broker.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, library events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	recordRepo := repositories.NewGORMRecordRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	collectionRepo := repositories.NewGORMCollectionRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteStoreRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, collectionRepo, wishlistRepo, favoriteRepo)
	recordService := services.NewRecordService(recordRepo)
	storeService := services.NewStoreService(storeRepo)
	libraryService := services.NewLibraryService(
		userRepo, recordRepo, storeRepo,
		collectionRepo, wishlistRepo, favoriteRepo,
		publisher,
	)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService, libraryService)
	recordHandler := handlers.NewRecordHandler(recordService, libraryService)
	storeHandler := handlers.NewStoreHandler(storeService, libraryService)

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// --- API Routes ---
	api := app.Group("/api")
	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "vinyl swarm running: 👽 ",
		})
	})

	userHandler.RegisterRoutes(api)
	recordHandler.RegisterRoutes(api)
	storeHandler.RegisterRoutes(api)

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for library events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Library Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeLibraryEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
