package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/config"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/controllers"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/database"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/jobs"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/routes"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Load optional YAML service config
	cfg, err := config.Load(config.GetEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return
	}
	controllers.Configure(cfg)

	// Initialize DB
	database.InitDB()

	// Start background plan worker
	jobs.GetWorker()

	// Setup Router
	r := routes.SetupRouter(cfg)

	logger.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
