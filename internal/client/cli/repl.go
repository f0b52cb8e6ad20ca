package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	SetQuantity(ctx context.Context, args []string) error
	RemoveItem(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	AddProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                  - show available commands
//	  - products [category]   - list products, optionally by category
//	  - search <text>         - free-text product search
//	  - categories            - list categories with product counts
//	  - show <product-id>     - show one product
//	  - exit | quit           - leave the program
//
//	Not signed in:
//	  - login | register
//
//	Signed in:
//	  - cart                  - show the cart with totals
//	  - add <product-id> [qty]
//	  - qty <item-id> <n>     - set an absolute line quantity
//	  - remove <item-id>
//	  - checkout | orders
//	  - addproduct | delproduct <product-id>
//	  - logout
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: products [category], search <text>, categories, show <id>, exit")
			if a.isLoggedIn() {
				printlnFn("Signed in: cart, add <id> [qty], qty <item> <n>, remove <item>, checkout, orders, addproduct, delproduct <id>, logout")
			} else {
				printlnFn("Not signed in: login, register")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <product-id>")
				continue
			}
			_ = a.Show(ctx, args)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product-id> [quantity]")
				continue
			}
			_ = a.AddToCart(ctx, args)

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <item-id> <quantity>")
				continue
			}
			_ = a.SetQuantity(ctx, args)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <item-id>")
				continue
			}
			_ = a.RemoveItem(ctx, args)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "delproduct":
			if len(args) == 0 {
				printlnFn("Usage: delproduct <product-id>")
				continue
			}
			_ = a.DeleteProduct(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
