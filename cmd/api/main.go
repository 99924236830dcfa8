package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/config"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/jwt"
	s3infra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/s3"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/sns"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/realtime"
	transporthttp "github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider. Every dealer-facing route needs it, so a missing secret
	// is fatal.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	// S3 store for listing media.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		AccountRepo:      dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
		FriendRepo:       dynamo.NewFriendRepo(dynamoClient, cfg.DynamoTables.Friends),
		NotificationRepo: dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		SettingsRepo:     dynamo.NewSettingsRepo(dynamoClient, cfg.DynamoTables.UserSettings),
		CarRepo:          dynamo.NewCarRepo(dynamoClient, cfg.DynamoTables.Cars),
		CustomerRepo:     dynamo.NewCustomerRepo(dynamoClient, cfg.DynamoTables.CustomerFeedback),
		ExpenseRepo:      dynamo.NewExpenseRepo(dynamoClient, cfg.DynamoTables.MonthlyExpenses),
		S3Store:          s3Store,
		SMSSender:        smsSender,
		JWTProvider:      jwtProvider,
		Hub:              realtime.NewHub(),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
