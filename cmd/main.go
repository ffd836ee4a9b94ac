package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/luisfelipe-wekan/knowledge-extractor/config"
	"github.com/luisfelipe-wekan/knowledge-extractor/routes"
	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("load config: ", err)
	}

	// Without an API key the server still serves /health and /api/files;
	// generation endpoints answer with a clear error instead.
	var generator services.TextGenerator
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set; generation endpoints are unavailable")
	} else {
		client, err := services.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, 0)
		if err != nil {
			log.Fatal("create gemini client: ", err)
		}
		defer client.Close()
		generator = client
	}

	gateway := services.NewGateway(generator, cfg.MaxPromptChars)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, gateway, cfg.DocumentsDir)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Knowledge Extractor server is running")
	})

	log.Println("Server running at Port:" + cfg.Port)
	r.Run(":" + cfg.Port)
}
