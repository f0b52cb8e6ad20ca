// Package api contains the transport layer for talking to the storefront
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     authentication, catalog reads, cart mutations, admin product CRUD and
//     orders.
//  2. A concrete REST/JSON implementation (see RESTClient) that issues
//     single-attempt HTTP requests to {base}/api{path}, attaches the bearer
//     credential passed explicitly per call, tags every request with an
//     X-Request-Id, and maps failures to sentinel errors.
//
// # Error Handling
//
// Server-reported failures come back as *Error carrying the HTTP status and
// the backend's "detail" message when the body provides one. 401/403 match
// common.ErrUnauthorized and transport failures match common.ErrUnavailable
// via errors.Is.
//
// # Concurrency & Contexts
//
// RESTClient holds no mutable per-session state and is safe for concurrent
// use. All operations accept context.Context; no retry, timeout or backoff is
// applied beyond what the caller's context enforces.
package api
