package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/auth"
	"github.com/enset/dashboard/internal/backend"
	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/internal/service"
	"github.com/enset/dashboard/internal/session"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/set-order-status/main.go <order-id> <status>")
		fmt.Println("Example: go run cmd/set-order-status/main.go 42 SHIPPED")
		os.Exit(1)
	}

	orderID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil || orderID <= 0 {
		fmt.Fprintf(os.Stderr, "Invalid order ID: %s\n", os.Args[1])
		os.Exit(1)
	}
	status := domain.OrderStatus(os.Args[2])
	if !status.IsAdminTarget() {
		fmt.Fprintf(os.Stderr, "Invalid status %q, expected one of %v\n", status, domain.AdminTargets())
		os.Exit(1)
	}

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
	client := backend.NewClient(cfg.API, keycloak, logger)
	sess := session.New(
		keycloak,
		service.NewCatalogService(client, logger),
		service.NewOrderService(client, logger),
		logger,
	)

	if err := sess.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to authenticate: %v\n", err)
		os.Exit(1)
	}
	if sess.State() != session.StateAuthenticated {
		fmt.Fprintln(os.Stderr, "No credentials configured: set AUTH_USERNAME/AUTH_PASSWORD or AUTH_REFRESH_TOKEN")
		os.Exit(1)
	}

	order, err := sess.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to update order status: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Order status updated successfully!\n\n")
	fmt.Printf("Order ID: %d\n", order.ID)
	fmt.Printf("Customer: %s <%s>\n", order.CustomerName, order.CustomerEmail)
	fmt.Printf("Status: %s\n", order.Status)
	fmt.Printf("Total: %.2f\n", order.TotalAmount)

	if err := sess.Logout(ctx); err != nil {
		fmt.Printf("\n⚠️  Could not end the identity provider session: %v\n", err)
	}
}
