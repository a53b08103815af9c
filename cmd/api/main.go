package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyayasathi/nyayasathi-be/database"
	"github.com/nyayasathi/nyayasathi-be/internal/config"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/validate"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	db := database.New(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Migrations completed successfully")

	// The quiz engine assumes exactly one correct option per question;
	// fail fast on a bad catalog edit
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Catalog validation failed: %v", err)
	}
	log.Infof("Catalog validated: %d questions, %d laws, %d contacts",
		len(catalog.QuestionBank), len(catalog.Laws), len(catalog.EmergencyContacts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	defer stop()

	config.Bootstrap(&config.BootstrapConfig{
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
	})

	listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	log.Info("Shutting down server...")

}
