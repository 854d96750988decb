package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/auth"
	"github.com/enset/dashboard/internal/backend"
	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <name>")
		fmt.Println("Example: go run cmd/find-product/main.go \"laptop\"")
		os.Exit(1)
	}

	query := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx := context.Background()

	keycloak := auth.NewKeycloak(cfg.Auth, logger)
	ok, err := keycloak.Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to authenticate: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "No credentials configured: set AUTH_USERNAME/AUTH_PASSWORD or AUTH_REFRESH_TOKEN")
		os.Exit(1)
	}

	client := backend.NewClient(cfg.API, keycloak, logger)
	catalog := service.NewCatalogService(client, logger)

	fmt.Printf("🔍 Searching for products matching: %s\n\n", query)

	products, err := catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load products: %v\n", err)
		os.Exit(1)
	}

	matches := service.ProductViews(service.FindProducts(products, query))
	if len(matches) == 0 {
		fmt.Printf("❌ No product matching '%s' among %d products.\n", query, len(products))
		os.Exit(1)
	}

	fmt.Printf("✅ Found %d product(s)!\n\n", len(matches))
	for _, p := range matches {
		fmt.Printf("Product ID: %d\n", p.ID)
		fmt.Printf("Name: %s\n", p.Name)
		if p.Description != "" {
			fmt.Printf("Description: %s\n", p.Description)
		}
		fmt.Printf("Price: %.2f\n", p.Price)
		fmt.Printf("Quantity: %d (%s)\n\n", p.Quantity, p.StockLevel)
	}
}
