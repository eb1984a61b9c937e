package main

import (
	"fmt"
	"os"

	bid "slot-auction/internal/bidService"
	"slot-auction/internal/config"
	"slot-auction/internal/locker"
	product "slot-auction/internal/productService"
	"slot-auction/internal/repository"
	result "slot-auction/internal/resultService"
	"slot-auction/internal/server"
	slot "slot-auction/internal/slotService"
	"slot-auction/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("AUCTION_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	utils.Configure(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)

	repo, err := buildRepo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	locks := locker.New()

	productSvc := product.NewService(repo, utils.NewEntry("product"))
	slotSvc := slot.NewService(repo, utils.NewEntry("slot"))
	bidSvc := bid.NewService(repo, locks, utils.NewEntry("bid"))
	resultSvc := result.NewService(repo, locks, utils.NewEntry("result"), nil)

	router := server.SetupRouter(productSvc, slotSvc, bidSvc, resultSvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Info("Starting auction server", map[string]any{
		"addr":    addr,
		"backend": cfg.Storage.Backend,
	})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the persistence backend from config
func buildRepo(cfg *config.Config) (repository.AuctionDB, error) {
	if cfg.Storage.Backend == "sqlite" {
		return repository.NewSQLiteRepo(cfg.Storage.Path)
	}
	return repository.NewMemoryRepo(), nil
}
