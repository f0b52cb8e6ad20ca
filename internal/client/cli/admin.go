package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/services"
)

// AddProduct collects the product fields and creates the record. Price and
// stock are only checked by type coercion; everything else the backend
// validates. On success the admin list is reloaded and shown.
func (a *App) AddProduct(ctx context.Context) error {
	form := services.ProductForm{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter product name", &form.Name},
		{"Enter description", &form.Description},
		{"Enter price", &form.Price},
		{"Enter image URL", &form.ImageURL},
		{"Enter category", &form.Category},
		{"Enter stock count", &form.Stock},
	}
	for _, p := range prompts {
		value, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			a.log.Error(ctx, "input error", "error", err)
			return err
		}
		*p.dst = value
	}

	product, err := a.admin.Create(ctx, form)
	if err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "product create failed", "error", err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Created product %s (%s)", product.ID, product.Name))
	return a.reloadAdminList(ctx)
}

// DeleteProduct deletes a product after an explicit confirmation. Declining
// issues no request.
func (a *App) DeleteProduct(ctx context.Context, args []string) error {
	id := args[0]

	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete product %s? This cannot be undone.", id), os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	if !ok {
		printlnFn("Aborted")
		return nil
	}

	if err := a.admin.Delete(ctx, id); err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "product delete failed", "error", err)
		}
		return err
	}

	printlnFn("Deleted product", id)
	return a.reloadAdminList(ctx)
}

func (a *App) reloadAdminList(ctx context.Context) error {
	products, err := a.admin.List(ctx)
	if err != nil {
		a.log.Error(ctx, "product list failed", "error", err)
		return err
	}
	renderProducts(products)
	return nil
}
