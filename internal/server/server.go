// Package server implements the HTTP API for the items service.
package server

import (
	"net/http"

	"itemsvc/internal/storage"
)

// API holds the dependencies shared by all request handlers. The store is
// injected at construction; handlers never reach for globals.
type API struct {
	store storage.Store
}

// New creates an API backed by the given store.
func New(store storage.Store) *API {
	return &API{store: store}
}

// Routes returns a ServeMux with all API routes registered.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.Root)
	mux.HandleFunc("GET /health", a.Health)

	mux.HandleFunc("POST /items", a.CreateItem)
	mux.HandleFunc("GET /items", a.ListItems)
	mux.HandleFunc("GET /items/{id}", a.GetItem)
	mux.HandleFunc("PUT /items/{id}", a.UpdateItem)
	mux.HandleFunc("DELETE /items/{id}", a.DeleteItem)

	return mux
}
