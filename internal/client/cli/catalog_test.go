package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestProductsPassesCategory(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{{ID: "p1", Name: "Sneakers", Price: 10, Category: "Fashion"}}}
	app := newTestApp(nil, nil, catalog, nil, nil)
	lines := capturePrintln(t)

	err := app.Products(context.Background(), []string{"Fashion"})
	require.NoError(t, err)

	assert.Equal(t, "Fashion", catalog.lastCategory)
	assert.Empty(t, catalog.lastSearch)
	assert.Contains(t, strings.Join(*lines, "\n"), "Sneakers")
}

func TestProductsNoFilter(t *testing.T) {
	catalog := &fakeCatalog{}
	app := newTestApp(nil, nil, catalog, nil, nil)
	capturePrintln(t)

	err := app.Products(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, catalog.lastCategory)
}

func TestProductsEmptyResult(t *testing.T) {
	app := newTestApp(nil, nil, &fakeCatalog{}, nil, nil)
	lines := capturePrintln(t)

	err := app.Products(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, *lines, "No products found")
}

func TestSearchJoinsPhrase(t *testing.T) {
	catalog := &fakeCatalog{}
	app := newTestApp(nil, nil, catalog, nil, nil)
	capturePrintln(t)

	err := app.Search(context.Background(), []string{"running", "shoes"})
	require.NoError(t, err)

	assert.Equal(t, "running shoes", catalog.lastSearch)
	assert.Empty(t, catalog.lastCategory)
}

func TestShowRendersProduct(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{{
		ID:          "p1",
		Name:        "Sneakers",
		Description: "Comfortable",
		Price:       59.90,
		Category:    "Fashion",
		Stock:       8,
		ImageURL:    "http://img/p1.png",
	}}}
	app := newTestApp(nil, nil, catalog, nil, nil)
	lines := capturePrintln(t)

	err := app.Show(context.Background(), []string{"p1"})
	require.NoError(t, err)

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Sneakers")
	assert.Contains(t, out, "Comfortable")
	assert.Contains(t, out, "Price: 59.90")
}
