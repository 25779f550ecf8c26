package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/fintamago/fintamago/internal/bot"
	"github.com/fintamago/fintamago/internal/config"
	"github.com/fintamago/fintamago/internal/logging"
	"github.com/fintamago/fintamago/pkg/repositories/ledger"
	petRepo "github.com/fintamago/fintamago/pkg/repositories/pet"
	"github.com/fintamago/fintamago/pkg/scheduler"
	petService "github.com/fintamago/fintamago/pkg/services/pet"
)

func main() {
	logger := logging.Default

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if cfg.IsDevelopment() {
		logger = logging.NewLogger(logging.DEBUG)
	}

	// Pick the repository backend, falling back to memory if SQLite fails
	var repo petRepo.Repository
	if cfg.StorageType == "sqlite" {
		sqliteRepo, err := petRepo.NewSQLiteRepository(cfg.DatabasePath())
		if err != nil {
			logger.Warn("Failed to initialize SQLite repository: %v", err)
			logger.Warn("Falling back to in-memory repository, data will be lost on restart")
			repo = petRepo.NewMemoryRepository()
		} else {
			logger.Info("Using SQLite repository at %s", cfg.DatabasePath())
			repo = sqliteRepo
		}
	} else {
		logger.Info("Using in-memory repository, data will be lost on restart")
		repo = petRepo.NewMemoryRepository()
	}
	defer repo.Close()

	pets := petService.NewService(repo, logger)

	// Optional gem-ledger archive
	var archiver *ledger.Archiver
	if cfg.ArchiveEnabled() {
		archiveCfg := ledger.DefaultConfig()
		archiveCfg.URL = cfg.ElasticsearchURL
		archiveCfg.Username = cfg.ElasticsearchUser
		archiveCfg.Password = cfg.ElasticsearchPassword

		archiver, err = ledger.NewArchiver(repo, archiveCfg, logger)
		if err != nil {
			logger.Warn("Ledger archive disabled: %v", err)
			archiver = nil
		}
	}

	discordBot, err := bot.New(cfg, pets, logger)
	if err != nil {
		logger.Error("Failed to create bot: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	maintenance := scheduler.NewEngineMaintenance(pets, archiver, cfg.DecayInterval, logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := discordBot.Start(); err != nil {
			return err
		}
		logger.Info("Bot is running, press Ctrl+C to exit")
		<-ctx.Done()
		discordBot.Shutdown()
		return nil
	})
	group.Go(func() error {
		maintenance.Start(ctx)
		<-ctx.Done()
		maintenance.Stop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("Shutting down after error: %v", err)
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}
