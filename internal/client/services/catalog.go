package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// CatalogService reads the product catalog. It needs no credential; results
// are returned in backend order with no client-side re-sorting. An empty
// result is not an error.
type CatalogService interface {
	List(ctx context.Context, category, search string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	client api.Client
	log    logging.Logger
}

func NewCatalogService(client api.Client, log logging.Logger) CatalogService {
	return &catalogService{client: client, log: log}
}

// List fetches products matching the optional category and search filters,
// both encoded into a single request.
func (s *catalogService) List(ctx context.Context, category, search string) ([]models.Product, error) {
	products, err := s.client.Products(ctx, category, search)
	if err != nil {
		return nil, fmt.Errorf("product list error: %w", err)
	}
	s.log.Debug(ctx, "products fetched", "count", len(products), "category", category, "search", search)
	return products, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.client.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product fetch error: %w", err)
	}
	return product, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category list error: %w", err)
	}
	return categories, nil
}
