package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func renderProducts(products []models.Product) {
	if len(products) == 0 {
		printlnFn("No products found")
		return
	}
	for _, p := range products {
		printlnFn(fmt.Sprintf("%s  %-30s  %8.2f  %-12s  stock:%d", p.ID, p.Name, p.Price, p.Category, p.Stock))
	}
}

// Products lists the catalog, optionally narrowed to a category given as the
// first argument.
func (a *App) Products(ctx context.Context, args []string) error {
	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	products, err := a.catalog.List(ctx, category, "")
	if err != nil {
		a.log.Error(ctx, "product list failed", "error", err)
		return err
	}

	renderProducts(products)
	return nil
}

// Search runs a free-text search over the catalog. The whole argument list is
// the search phrase.
func (a *App) Search(ctx context.Context, args []string) error {
	search := strings.Join(args, " ")

	products, err := a.catalog.List(ctx, "", search)
	if err != nil {
		a.log.Error(ctx, "product search failed", "error", err)
		return err
	}

	renderProducts(products)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		a.log.Error(ctx, "category list failed", "error", err)
		return err
	}

	for _, c := range categories {
		printlnFn(fmt.Sprintf("%-20s %d", c.Category, c.Count))
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	product, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "product fetch failed", "error", err)
		return err
	}

	printlnFn(product.Name)
	printlnFn(product.Description)
	printlnFn(fmt.Sprintf("Price: %.2f  Category: %s  Stock: %d", product.Price, product.Category, product.Stock))
	printlnFn("Image:", product.ImageURL)
	return nil
}
