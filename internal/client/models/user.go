// Package models contains the client-side data types exchanged with the
// storefront backend. JSON field names follow the backend's wire contract;
// fields the client never reads (timestamps, server-internal flags) are
// deliberately not mapped.
package models

// User is the authenticated user's profile as returned by the backend.
// It is read-only on the client: created at registration, fetched after
// login, never mutated locally.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
