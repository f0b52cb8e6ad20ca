package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// ProductForm carries raw user input for a new product. The only client-side
// validation is type coercion: price must parse as a float, stock as an
// integer. Everything else is the backend's business.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	Stock       string
}

// Coerce converts the form into a create payload, failing on unparsable
// numeric fields.
func (f ProductForm) Coerce() (models.ProductCreate, error) {
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		return models.ProductCreate{}, fmt.Errorf("invalid price %q: %w", f.Price, err)
	}
	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		return models.ProductCreate{}, fmt.Errorf("invalid stock %q: %w", f.Stock, err)
	}
	return models.ProductCreate{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
		Stock:       stock,
	}, nil
}

// AdminService is the authenticated product-management surface: full list,
// create and delete. There is deliberately no edit operation, and no
// client-side role check; authorization is the server's concern.
type AdminService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, form ProductForm) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type adminService struct {
	client  api.Client
	session SessionService
	log     logging.Logger
}

func NewAdminService(client api.Client, session SessionService, log logging.Logger) AdminService {
	return &adminService{client: client, session: session, log: log}
}

func (s *adminService) credential() (string, error) {
	if !s.session.IsAuthenticated() {
		return "", common.ErrNotAuthenticated
	}
	return s.session.Token(), nil
}

// List fetches the full, unfiltered product list.
func (s *adminService) List(ctx context.Context) ([]models.Product, error) {
	if _, err := s.credential(); err != nil {
		return nil, err
	}
	products, err := s.client.Products(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("product list error: %w", err)
	}
	return products, nil
}

func (s *adminService) Create(ctx context.Context, form ProductForm) (*models.Product, error) {
	token, err := s.credential()
	if err != nil {
		return nil, err
	}

	in, err := form.Coerce()
	if err != nil {
		return nil, err
	}

	product, err := s.client.CreateProduct(ctx, token, in)
	if err != nil {
		return nil, fmt.Errorf("product create error: %w", err)
	}
	s.log.Info(ctx, "product created", "id", product.ID, "name", product.Name)
	return product, nil
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	token, err := s.credential()
	if err != nil {
		return err
	}

	if err := s.client.DeleteProduct(ctx, token, id); err != nil {
		return fmt.Errorf("product delete error: %w", err)
	}
	s.log.Info(ctx, "product deleted", "id", id)
	return nil
}
