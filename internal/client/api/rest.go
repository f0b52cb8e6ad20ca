package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// RESTClient is the concrete Client over the backend's REST/JSON surface.
// Every request is a single attempt with no client-enforced timeout; the
// caller's context is the only cancellation mechanism.
type RESTClient struct {
	baseURL string
	http    *http.Client

	// newRequestID is a test seam for the X-Request-Id header.
	newRequestID func() string
}

func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{},
		newRequestID: uuid.NewString,
	}
}

// do issues one HTTP request to {base}/api{path} and decodes the JSON body
// into out on 2xx. A non-empty token is attached as a bearer credential.
func (c *RESTClient) do(ctx context.Context, method, path, token string, query url.Values, payload, out any) error {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", c.newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Status: resp.StatusCode, Message: errorDetail(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// errorDetail extracts the backend's error message from a failure body.
// Returns "" when the body is not the expected {"detail": "..."} shape,
// which makes Error fall back to a generic message.
func errorDetail(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Detail
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *RESTClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: string(password)}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *RESTClient) Register(ctx context.Context, email string, password []byte, fullName string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}{Email: email, FullName: fullName, Password: string(password)}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *RESTClient) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) Products(ctx context.Context, category, search string) ([]models.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RESTClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RESTClient) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, token string, in models.ProductCreate) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, nil, in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RESTClient) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil, nil)
}

func (c *RESTClient) Cart(ctx context.Context, token string) (models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, nil, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (c *RESTClient) AddCartItem(ctx context.Context, token, productID string, quantity int) error {
	payload := struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	return c.do(ctx, http.MethodPost, "/cart", token, nil, payload, nil)
}

// UpdateCartItem sends the absolute quantity, not a delta. The backend takes
// it as a query parameter.
func (c *RESTClient) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))

	return c.do(ctx, http.MethodPut, "/cart/"+url.PathEscape(itemID), token, query, nil, nil)
}

func (c *RESTClient) RemoveCartItem(ctx context.Context, token, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(itemID), token, nil, nil, nil)
}

func (c *RESTClient) CreateOrder(ctx context.Context, token string, in models.OrderCreate) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, nil, in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *RESTClient) Orders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
