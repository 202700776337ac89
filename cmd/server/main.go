package main

import (
	"fmt"
	"log"
	"os"

	"github.com/precoscan/backend/config"
	httpDelivery "github.com/precoscan/backend/internal/delivery/http"
	"github.com/precoscan/backend/internal/domain"
	"github.com/precoscan/backend/internal/infrastructure/registry"
	"github.com/precoscan/backend/internal/infrastructure/serpapi"
	"github.com/precoscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Precoscan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	productRegistry := registry.NewMemoryRegistry()
	if cfg.Seed.Enabled {
		seedRegistry(productRegistry)
	}

	shoppingClient := serpapi.NewClient(
		cfg.SerpAPI.APIKey,
		cfg.SerpAPI.BaseURL,
		cfg.SerpAPI.RateLimit,
		cfg.SerpAPI.RateBurst,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		shoppingClient.SetDebug(true)
		log.Printf("SerpAPI client debug mode enabled")
	}

	keyPreview := cfg.SerpAPI.APIKey
	if len(keyPreview) > 8 {
		keyPreview = keyPreview[:8]
	}
	log.Printf("SerpAPI configured: %s (key: %s...)", cfg.SerpAPI.BaseURL, keyPreview)

	// Initialize usecase layer
	priceService := usecase.NewPriceService(
		productRegistry,
		shoppingClient,
		usecase.PriceServiceConfig{
			EnableDebugLogging: cfg.Server.Environment == "development",
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productRegistry, priceService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedRegistry loads the sample products the service ships with
func seedRegistry(r *registry.MemoryRegistry) {
	samples := []domain.Product{
		{Name: "Playstation 5"},
		{Name: "Smart TV 50 4K"},
		{Name: "Notebook Dell Inspiron", Category: "Informática"},
	}

	for _, product := range samples {
		if err := r.Add(product); err != nil {
			log.Printf("Failed to seed product %q: %v", product.Name, err)
		}
	}

	log.Printf("Seeded %d sample products", r.Len())
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
