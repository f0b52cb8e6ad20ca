// Package cli implements the interactive shell of the storefront client.
//
// # Overview
//
// The shell is a read-eval-print loop over the application stores: catalog
// browsing and search are available to everyone, the cart, checkout, order
// history and the admin product commands require a signed-in session. On
// start the app restores a persisted session from the local database, so a
// still-valid credential signs the user back in without a prompt.
//
// Command handlers log failures and keep the loop running; no error is fatal
// to the process.
package cli
