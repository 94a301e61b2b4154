package main

import (
	"context"
	"log"

	"fieldops/adapters/excel"
	"fieldops/adapters/postgres"
	"fieldops/app"
	"fieldops/internal/config"
	"fieldops/internal/errors"
	"fieldops/internal/migration"
	"fieldops/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	storeRepo := postgres.NewStoreRepository(db)
	priceRepo := postgres.NewPriceListRepository(db)

	importService := app.NewImportService(
		excel.NewUploadDecoder(),
		storeRepo,
		priceRepo,
		appConfig.Import.MaxConcurrent,
	)
	priceStats := app.NewPriceStatsService(priceRepo)

	if appConfig.Admin.Enabled {
		admin := ui.NewAdminApp(db)
		go func() {
			log.Printf("Admin server listening on :%s", appConfig.Admin.Port)
			if err := admin.Run(":" + appConfig.Admin.Port); err != nil {
				log.Printf("Admin server stopped: %v", err)
			}
		}()
	}

	server := ui.NewServer(appConfig, importService, priceStats, storeRepo, priceRepo)
	log.Printf("API server listening on :%s", appConfig.Server.Port)
	if err := server.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
