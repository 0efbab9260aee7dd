package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"indiepulse/backend/internal/auth"
	"indiepulse/backend/internal/config"
	"indiepulse/backend/internal/database"
	"indiepulse/backend/internal/dataset"
	"indiepulse/backend/internal/handler"
	"indiepulse/backend/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"

	// Swagger imports
	_ "indiepulse/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           IndiePulse API
// @version         1.0
// @description     This is the API for the IndiePulse indie game analysis dashboard.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	// Connect to the database
	database.Connect(cfg.DatabaseURL)

	// Build the dataset pipeline the analysis endpoints serve from
	handler.Analytics = dataset.NewStore(
		cfg.DataDir,
		dataset.WithTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second),
		dataset.WithStrictCurrency(cfg.StrictCurrency),
	)

	if cfg.SMTPHost != "" {
		handler.Mail = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("Warning: SMTP not configured, contact replies are disabled")
	}

	if cfg.WarmCacheOnBoot {
		if err := handler.Analytics.Warm(); err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
		log.Println("Dataset cache warmed.")

		// Keep the derived tables warm so requests after expiry rarely pay
		// a cold load.
		scheduler := gocron.NewScheduler(time.UTC)
		if _, err := scheduler.Every(1).Hour().Do(func() {
			if err := handler.Analytics.Warm(); err != nil {
				log.Printf("Background dataset refresh failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("Failed to schedule dataset refresh: %v", err)
		}
		scheduler.StartAsync()
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Public contact form; a token is optional but links the message
		// to the submitter's account when present
		apiV1.POST("/contact", auth.OptionalAuthMiddleware(), handler.SubmitContact)

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
		}

		// Analysis routes (protected)
		analysisRoutes := apiV1.Group("/analysis")
		analysisRoutes.Use(auth.AuthMiddleware())
		{
			analysisRoutes.GET("/genres", handler.GetGenreAnalysis)
			analysisRoutes.GET("/prices", handler.GetPriceAnalysis)
			analysisRoutes.GET("/languages", handler.GetLanguageAnalysis)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Contact message triage
			messages := adminRoutes.Group("/messages")
			{
				messages.GET("", handler.ListContactMessages)
				messages.GET("/:id", handler.GetContactMessage)
				messages.POST("/:id/reply", handler.ReplyContactMessage)
			}

			// Cache control
			adminRoutes.POST("/analysis/refresh", handler.RefreshAnalysis)
		}
	}

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(":8080"))
}
