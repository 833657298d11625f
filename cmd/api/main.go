package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/anupks5942/lms-backend/internal/auth"
	"github.com/anupks5942/lms-backend/internal/config"
	"github.com/anupks5942/lms-backend/internal/database"
	"github.com/anupks5942/lms-backend/internal/routes"
	"github.com/anupks5942/lms-backend/internal/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.LoadConfig()
	auth.Init(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.Fatal("Failed to disconnect from MongoDB: ", err)
		}
	}()

	// Uploaded assignment files live on local disk
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create upload directory: %v", err)
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	// Initialize router
	router := routes.SetupRouter(client, cfg, mailer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(router)); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}
