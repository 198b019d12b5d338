package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/genpersona/persona-service/internal/api"
	"github.com/genpersona/persona-service/internal/generator"
	"github.com/genpersona/persona-service/internal/seeds"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	sharedSecret := os.Getenv("PERSONA_API_KEY")
	if sharedSecret == "" {
		log.Fatal("PERSONA_API_KEY environment variable is required")
	}

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "data/personas.txt"
	}

	store, err := seeds.Load(seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed store: %v", err)
	}
	log.Printf("Loaded %d persona seeds from %s", store.Count(), seedFile)

	model, err := generator.NewGeminiClient(geminiKey)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer model.Close()

	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogging())

	handler := api.NewHandler(store, model)
	handler.Register(router, sharedSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Persona service starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
