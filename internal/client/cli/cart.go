package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// notifySignIn translates the client-side auth gate into a user-facing
// notice. Returns true when err was the gate.
func notifySignIn(err error) bool {
	if errors.Is(err, common.ErrNotAuthenticated) {
		printlnFn("Please sign in first (type 'login' or 'register')")
		return true
	}
	return false
}

func (a *App) renderCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty")
		return
	}
	for _, item := range items {
		printlnFn(fmt.Sprintf("%s  %-30s  %d x %.2f", item.ID, item.Product.Name, item.Quantity, item.Product.Price))
	}
	printlnFn(fmt.Sprintf("Total: %d items, %.2f", a.cart.TotalItems(), a.cart.TotalPrice()))
}

// ShowCart re-fetches and renders the cart with totals.
func (a *App) ShowCart(ctx context.Context) error {
	if err := a.cart.Refresh(ctx); err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "cart fetch failed", "error", err)
		}
		return err
	}
	a.renderCart()
	return nil
}

// AddToCart adds a product, defaulting the quantity to 1. The server decides
// whether to merge into an existing line.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	productID := args[0]
	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			printlnFn("Quantity must be a number:", args[1])
			return err
		}
		quantity = q
	}

	if err := a.cart.Add(ctx, productID, quantity); err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "add to cart failed", "error", err)
		}
		return err
	}

	a.renderCart()
	return nil
}

// SetQuantity sets an absolute line quantity; values below 1 are clamped by
// the cart store before they go out.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	itemID := args[0]
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Quantity must be a number:", args[1])
		return err
	}

	if err := a.cart.SetQuantity(ctx, itemID, quantity); err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "cart update failed", "error", err)
		}
		return err
	}

	a.renderCart()
	return nil
}

func (a *App) RemoveItem(ctx context.Context, args []string) error {
	if err := a.cart.Remove(ctx, args[0]); err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "cart remove failed", "error", err)
		}
		return err
	}

	a.renderCart()
	return nil
}

// Checkout collects a shipping address and places an order from the current
// cart snapshot. The backend clears the cart.
func (a *App) Checkout(ctx context.Context) error {
	if len(a.cart.Items()) == 0 {
		printlnFn("Your cart is empty")
		return services.ErrEmptyCart
	}

	address, err := getSimpleText(a.reader, "Enter street address", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	city, err := getSimpleText(a.reader, "Enter city", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	zip, err := getSimpleText(a.reader, "Enter zip code", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	order, err := a.orders.Checkout(ctx, models.ShippingAddress{Address: address, City: city, Zip: zip})
	if err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "checkout failed", "error", err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Order %s placed, total %.2f", order.ID, order.TotalAmount))
	return nil
}

// Orders prints the order history, newest last, as returned by the backend.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.orders.History(ctx)
	if err != nil {
		if !notifySignIn(err) {
			a.log.Error(ctx, "order history failed", "error", err)
		}
		return err
	}

	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  %-10s  %.2f  (%d lines)", o.ID, o.Status, o.TotalAmount, len(o.Items)))
	}
	return nil
}
