package main

import (
	"log"
	"log/slog"
	"os"

	"marketbrief/db"
	"marketbrief/internal/app"
	"marketbrief/internal/config"
	"marketbrief/internal/handler"
	"marketbrief/internal/repository"
	"marketbrief/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "time/tzdata"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	var store news.ArticleStore
	var pinger handler.Pinger
	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		store = repository.NewArticleRepository(db.DB)
		pinger = db.DB
	}

	briefHandler := handler.NewBriefHandler(app.NewService(cfg, store), pinger)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/brief", briefHandler.GetBrief)
	r.POST("/citations/normalize", briefHandler.NormalizeCitations)
	r.GET("/health", briefHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
