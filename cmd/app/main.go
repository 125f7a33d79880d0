package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/imagestore"
	"storefront/internal/adapters/out/postgres/grouprepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/orphanrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/adapters/out/queue"
	"storefront/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(config)
	store := mustCreateImageStore(config)
	ledger := orphanrepo.NewGormOrphanLedger(gormDB)
	publisher := createPublisher(config, logger)
	if publisher != nil {
		defer func() {
			_ = publisher.Close()
		}()
	}

	root := cmd.NewCompositionRoot(gormDB, store, ledger, publisher, logger)

	sweeper := root.CreateOrphanImageSweeperJob()
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start orphan image sweeper: %v", err)
	}
	defer sweeper.Stop()

	startWebServer(root, config)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		ImageStoreDriver: envOrDefault("IMAGE_STORE_DRIVER", "local"),
		ImageDir:         envOrDefault("IMAGE_DIR", "./images"),
		ImageBaseURL:     envOrDefault("IMAGE_BASE_URL", "/images"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: os.Getenv("CLOUDINARY_FOLDER"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&productrepo.MOQDTO{},
		&grouprepo.GroupDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&orphanrepo.OrphanImageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	return gormDB
}

func mustCreateImageStore(config cmd.Config) ports.ImageStore {
	switch config.ImageStoreDriver {
	case "cloudinary":
		store, err := imagestore.NewCloudinaryImageStore(config.CloudinaryURL, config.CloudinaryFolder)
		if err != nil {
			log.Fatalf("Failed to create cloudinary image store: %v", err)
		}
		return store
	case "local":
		store, err := imagestore.NewLocalImageStore(config.ImageDir, config.ImageBaseURL)
		if err != nil {
			log.Fatalf("Failed to create local image store: %v", err)
		}
		return store
	default:
		log.Fatalf("Unknown image store driver: %s", config.ImageStoreDriver)
		return nil
	}
}

func createPublisher(config cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if config.KafkaBrokers == "" {
		logger.Warn("KAFKA_BROKERS not set, event publishing disabled")
		return nil
	}
	return queue.NewKafkaEventPublisher(strings.Split(config.KafkaBrokers, ","))
}

func startWebServer(root cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if config.ImageStoreDriver == "local" {
		e.Static(strings.TrimRight(config.ImageBaseURL, "/"), config.ImageDir)
	}

	server := httpin.NewServer(root.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
