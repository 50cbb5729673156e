package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiss-tournament/handlers"
	"swiss-tournament/services"
	"swiss-tournament/utils"
	"swiss-tournament/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	tournamentService := services.NewTournamentService(store, cfg.TournamentName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.R2.Enabled() {
		r2, err := utils.NewR2Client(ctx, cfg.R2)
		if err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		publisher := workers.NewSnapshotPublisher(tournamentService, r2, cfg.TournamentName, cfg.SnapshotInterval)
		if err := publisher.Start(ctx); err != nil {
			log.Fatal("failed to start snapshot publisher:", err)
		}
		defer publisher.Stop()
	} else {
		log.Println("⚠️  R2 not configured, snapshot publishing disabled")
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	handlers.SetupTournamentRoutes(app, tournamentService, cfg.OperatorToken)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ CORS configured for origins: %s", cfg.AllowedOrigins)

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// openStore connects to PostgreSQL through a sized connection pool, or falls
// back to the in-memory store when no DATABASE_URL is configured.
func openStore(cfg *utils.Config) (services.TournamentStore, func()) {
	if cfg.DatabaseURL == "" {
		return services.NewMemoryStore(), func() {}
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	store := services.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		log.Fatal("failed to migrate database:", err)
	}
	return store, func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}
}
