package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "portfolio.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Message{}, &models.Project{}, &models.Hit{})
	if err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Contact events are a best-effort side channel; the site must come
	// up even when no broker is configured or reachable.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, contact events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	messageRepo := repositories.NewGORMMessageRepository(db)
	projectRepo := repositories.NewGORMProjectRepository(db)
	hitRepo := repositories.NewGORMHitRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	projectService := services.NewProjectService(projectRepo)
	hitService := services.NewHitService(hitRepo)
	var messageService *services.MessageService
	if mqClient != nil {
		messageService = services.NewMessageService(messageRepo, mqClient)
	} else {
		messageService = services.NewMessageService(messageRepo, nil)
	}

	// --- Seed Admin User ---
	if adminPassword := viper.GetString("ADMIN_PASSWORD"); adminPassword != "" {
		if err := authService.EnsureAdmin(viper.GetString("ADMIN_USERNAME"), adminPassword); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	} else {
		log.Println("ADMIN_PASSWORD not set; skipping admin seeding")
	}

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, viper.GetBool("COOKIE_SECURE"))
	projectHandler := handlers.NewProjectHandler(projectService)
	messageHandler := handlers.NewMessageHandler(messageService)
	hitHandler := handlers.NewHitHandler(hitService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")

	// Public routes
	authHandler.RegisterRoutes(api)
	projectHandler.RegisterPublicRoutes(api)
	messageHandler.RegisterPublicRoutes(api)
	hitHandler.RegisterRoutes(api)

	// Admin routes (session cookie required)
	admin := api.Group("/admin", middleware.SessionRequired(authService))
	projectHandler.RegisterAdminRoutes(admin)
	messageHandler.RegisterAdminRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for contact events, e.g. to notify the admin of new
	// messages out of band.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for contact events...")
			contactEventHandler := func(msg amqp.Delivery) error {
				log.Printf("Received contact event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeContactEvents(contactEventHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
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

// openDatabase opens the configured store. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey and the
// repositories can map them to ErrDuplicateKey.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}
