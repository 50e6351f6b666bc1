package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

// maxBodySize bounds request bodies at 1 MiB; item payloads are tiny.
const maxBodySize = 1 << 20

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
}

// writeStoreError maps storage errors onto the HTTP contract: malformed id
// is 422, missing item is 404, everything else is a generic 500.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		writeError(w, http.StatusUnprocessableEntity, "invalid item id")
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	default:
		slog.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Root is a lightweight liveness response that never touches the store.
func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Healthy"})
}

// Health verifies the service and its MongoDB dependency. A failed probe
// maps to 503.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Ping(r.Context()); err != nil {
		slog.Error("Health probe failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "error",
			"mongodb": "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "mongodb": "ok"})
}

// CreateItem creates a new item. The server assigns the id and the creation
// timestamp.
func (a *API) CreateItem(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateItem
	if err := readJSON(r, &payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item := payload.Item(time.Now())
	if err := a.store.CreateItem(r.Context(), item); err != nil {
		writeStoreError(w, "CreateItem", err)
		return
	}

	slog.Info("Item created", "item_id", item.ID)
	writeJSON(w, http.StatusCreated, item)
}

// ListItems returns items newest first, capped at the store's list limit.
func (a *API) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := a.store.ListItems(r.Context())
	if err != nil {
		writeStoreError(w, "ListItems", err)
		return
	}

	slog.Debug("Items listed", "count", len(items))
	writeJSON(w, http.StatusOK, items)
}

// GetItem fetches a single item by id.
func (a *API) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, "GetItem", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItem applies a partial update. An empty payload is a no-op probe:
// it returns the current item, and still 404s if the id is missing.
func (a *API) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload models.UpdateItem
	if err := readJSON(r, &payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	set := payload.Fields()
	if len(set) == 0 {
		item, err := a.store.GetItem(r.Context(), id)
		if err != nil {
			writeStoreError(w, "UpdateItem", err)
			return
		}
		writeJSON(w, http.StatusOK, item)
		return
	}

	item, err := a.store.UpdateItem(r.Context(), id, set)
	if err != nil {
		writeStoreError(w, "UpdateItem", err)
		return
	}

	slog.Info("Item updated", "item_id", item.ID)
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item by id.
func (a *API) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := a.store.DeleteItem(r.Context(), id); err != nil {
		writeStoreError(w, "DeleteItem", err)
		return
	}

	slog.Info("Item deleted", "item_id", id)
	w.WriteHeader(http.StatusNoContent)
}
