package main

import (
	"econnews/internal/config"
	"econnews/internal/dashboard"
	"econnews/internal/handler"
	"econnews/internal/repository"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	loader := dashboard.NewLoader(repository.NewDatasetRepository(cfg.CategorizedPath))
	dashboardHandler := handler.NewDashboardHandler(loader, cfg.ModelLabel)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	handler.LoadTemplates(r)
	dashboardHandler.RegisterRoutes(r)

	slog.Info("serving dashboard", "addr", cfg.ViewerAddr, "dataset", cfg.CategorizedPath)

	err = r.Run(cfg.ViewerAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
