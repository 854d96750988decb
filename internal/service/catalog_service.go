package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/backend"
	"github.com/enset/dashboard/internal/domain"
)

type catalogService struct {
	client *backend.Client
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client *backend.Client, logger *zap.Logger) *catalogService {
	return &catalogService{
		client: client,
		logger: logger,
	}
}

// ListProducts fetches the full catalog in a single attempt
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to load products", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("Loaded products", zap.Int("count", len(products)))
	return products, nil
}

// ProductViews annotates products with their stock level.
// Products that are out of stock cannot be added to the cart.
func ProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		level := p.StockLevel()
		views = append(views, ProductView{
			Product:    p,
			StockLevel: level,
			CanAdd:     level != domain.StockLevelOut,
		})
	}
	return views
}

// FindProducts returns the products whose name or description contains
// query, ignoring case. An empty query matches everything.
func FindProducts(products []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	matches := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindProductByID looks up a product in a cached catalog
func FindProductByID(products []domain.Product, id int64) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
