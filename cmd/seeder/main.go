package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marketplace-seeder/internal/bootstrap"
	"github.com/marketplace-seeder/internal/config"
	httpDelivery "github.com/marketplace-seeder/internal/delivery/http"
	"github.com/marketplace-seeder/internal/delivery/http/handler"
	apperrors "github.com/marketplace-seeder/internal/pkg/errors"
	"github.com/marketplace-seeder/internal/pkg/logger"
	"github.com/marketplace-seeder/internal/repository/sqlstore"
	"github.com/marketplace-seeder/internal/seed"
	"github.com/marketplace-seeder/internal/verify"
	"go.uber.org/zap"
)

func main() {
	resetFlag := flag.Bool("reset", false, "drop all owned tables, re-apply migrations, and re-seed")
	verifyFlag := flag.Bool("verify", false, "run post-seed integrity checks")
	serveFlag := flag.Bool("serve", false, "serve the seed report API")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("starting marketplace seeder",
		zap.String("env", cfg.Server.Env),
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("reset", *resetFlag),
	)

	// 3. Connect to the database
	db, err := sqlstore.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("database health check failed", zap.Error(err))
	}
	cancel()

	// 4. Initialize repositories
	geoRepo := sqlstore.NewGeographyRepository(db, log)
	addressRepo := sqlstore.NewAddressRepository(db, log)
	userRepo := sqlstore.NewUserRepository(db, log)
	catalogRepo := sqlstore.NewCatalogRepository(db, log)
	ratingRepo := sqlstore.NewRatingRepository(db, log)
	proRepo := sqlstore.NewProfessionalRepository(db, log)
	statsRepo := sqlstore.NewStatsRepository(db, log)

	// 5. Initialize seeder and bootstrap
	seeder := seed.New(&cfg.Seed, geoRepo, addressRepo, userRepo, catalogRepo, ratingRepo, proRepo, log)
	boot := bootstrap.New(cfg, db, seeder, userRepo, log)
	verifier := verify.New(statsRepo, log)

	runCtx := context.Background()

	// 6. Run the requested provisioning path
	if *resetFlag {
		report, err := boot.Reset(runCtx)
		if err != nil {
			log.Fatal("reset failed", zap.Error(err))
		}
		log.Info("database reset and seeded",
			zap.String("run_id", report.RunID),
			zap.Int("cities", report.Cities),
			zap.Int("addresses", report.Addresses),
			zap.Int("professionals", report.Professionals),
		)
	} else {
		if err := boot.Ensure(runCtx); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
	}

	// 7. Verify seeded data if requested
	if *verifyFlag {
		report, err := verifier.Check(runCtx)
		if err != nil {
			log.Fatal("verification failed to run", zap.Error(err))
		}
		if !report.Passed {
			log.Error("integrity verification failed",
				zap.Error(apperrors.ErrVerifyFailed),
				zap.Any("checks", report.Checks),
			)
			os.Exit(1)
		}
	}

	if !*serveFlag {
		return
	}

	// 8. Serve the report API
	reportHandler := handler.NewReportHandler(statsRepo, verifier, log)
	server := httpDelivery.NewServer(cfg, log, reportHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("report API started", zap.String("address", cfg.GetServerAddr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
}
