package main

import (
	"log"

	"github.com/campuswatch/issues-backend-go/internal/api"
	"github.com/campuswatch/issues-backend-go/internal/cache"
	"github.com/campuswatch/issues-backend-go/internal/config"
	"github.com/campuswatch/issues-backend-go/internal/database"
	"github.com/campuswatch/issues-backend-go/internal/handler"
	"github.com/campuswatch/issues-backend-go/internal/repository"
	"github.com/campuswatch/issues-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	issueRepo := repository.NewIssueRepository(db)

	var fetchCache *cache.TTLCache
	if cfg.CacheTTL > 0 {
		fetchCache = cache.New(cfg.CacheTTL)
	}

	heatmapService := service.NewHeatmapService(issueRepo, fetchCache)
	heatmapHandler := handler.NewHeatmapHandler(heatmapService)

	router := api.SetupRouter(cfg, heatmapHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
