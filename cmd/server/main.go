package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/shadowmoulic/youtube-dashboard/internal/config"
	"github.com/shadowmoulic/youtube-dashboard/internal/handler"
	"github.com/shadowmoulic/youtube-dashboard/internal/middleware"
	"github.com/shadowmoulic/youtube-dashboard/internal/router"
	"github.com/shadowmoulic/youtube-dashboard/internal/service"
	"github.com/shadowmoulic/youtube-dashboard/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "ytseo-api")

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}

	ctx := context.Background()
	yt, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("failed to create YouTube client: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	analysisSvc := service.NewAnalysisService(yt, cache)

	handler.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName:      "YouTube SEO Analyzer API",
		ServerHeader: "ytseo",
	})

	h := &router.Handlers{
		Analysis: handler.NewAnalysisHandler(analysisSvc),
		Resolve:  handler.NewResolveHandler(),
		Report:   handler.NewReportHandler(analysisSvc),
		Health:   handler.NewHealthHandler(cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("SEO analyzer backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
