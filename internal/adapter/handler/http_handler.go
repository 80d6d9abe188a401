package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"go.uber.org/zap"

	"github.com/rl1809/pinkstock/internal/adapter/export"
	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/service"
	"github.com/rl1809/pinkstock/internal/core/view"
)

type HTTPHandler struct {
	inventory  *service.InventoryService
	logger     *zap.Logger
	exportStem string
}

type AddItemHTTPRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
	Category string `json:"category"`
}

type AdjustHTTPRequest struct {
	Delta *int `json:"delta"`
}

type ItemHTTPResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category,omitempty"`
	DateAdded string `json:"dateAdded"`
	LowStock  bool   `json:"lowStock"`
}

type MutationHTTPResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	ID      string            `json:"id,omitempty"`
	Item    *ItemHTTPResponse `json:"item,omitempty"`
	Warning string            `json:"warning,omitempty"`
}

type SummaryHTTPResponse struct {
	TotalItems    int `json:"totalItems"`
	TotalQuantity int `json:"totalQuantity"`
	LowStockCount int `json:"lowStockCount"`
}

type ErrorHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(inventory *service.InventoryService, logger *zap.Logger, exportStem string) *HTTPHandler {
	if exportStem == "" {
		exportStem = export.DefaultStem
	}
	return &HTTPHandler{inventory: inventory, logger: logger, exportStem: exportStem}
}

// Routes builds the router for the JSON API.
func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/health", h.HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Post("/items", h.AddItem)
		r.Post("/items/{id}/adjust", h.AdjustQuantity)
		r.Delete("/items/{id}", h.DeleteItem)
		r.Get("/categories", h.ListCategories)
		r.Get("/summary", h.Summary)
		r.Get("/export", h.Export)
	})
	return r
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := view.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if raw := q.Get("low_stock"); raw != "" {
		lowStock, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "low_stock must be a boolean")
			return
		}
		filter.LowStockOnly = lowStock
	}

	items := h.inventory.Filter(filter)
	resp := make([]ItemHTTPResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "invalid quantity: must not be empty")
		return
	}

	newItem := domain.NewItem{Name: req.Name, Quantity: *req.Quantity, Category: req.Category}
	if err := newItem.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.inventory.AddItem(r.Context(), newItem)
	resp, status, ok := h.mutationResult(w, err, http.StatusCreated)
	if !ok {
		return
	}
	resp.ID = id
	resp.Message = "item added"
	writeJSON(w, status, resp)
}

func (h *HTTPHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req AdjustHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Delta == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.inventory.AdjustQuantity(r.Context(), chi.URLParam(r, "id"), *req.Delta)
	resp, status, ok := h.mutationResult(w, err, http.StatusOK)
	if !ok {
		return
	}
	itemResp := toItemResponse(item)
	resp.ID = item.ID
	resp.Item = &itemResp
	resp.Message = "quantity updated"
	writeJSON(w, status, resp)
}

func (h *HTTPHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.inventory.DeleteItem(r.Context(), id)
	resp, status, ok := h.mutationResult(w, err, http.StatusOK)
	if !ok {
		return
	}
	resp.ID = id
	resp.Message = "item deleted"
	writeJSON(w, status, resp)
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.inventory.ListCategories())
}

func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s := h.inventory.Summary()
	writeJSON(w, http.StatusOK, SummaryHTTPResponse{
		TotalItems:    s.TotalItems,
		TotalQuantity: s.TotalQuantity,
		LowStockCount: s.LowStockCount,
	})
}

// Export streams the full, unfiltered collection as a CSV download.
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	stem := r.URL.Query().Get("stem")
	if stem == "" {
		stem = h.exportStem
	}
	if err := export.ValidateStem(stem); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, h.inventory.Items()); err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			writeError(w, http.StatusConflict, "No items to export.")
			return
		}
		h.logger.Error("export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(stem)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// mutationResult maps a store error to a response. ok is false when an
// error response has already been written.
func (h *HTTPHandler) mutationResult(w http.ResponseWriter, err error, successStatus int) (MutationHTTPResponse, int, bool) {
	resp := MutationHTTPResponse{Success: true}
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotPersisted):
		resp.Warning = notPersistedWarning
	case errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
		return resp, 0, false
	case errors.Is(err, domain.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, err.Error())
		return resp, 0, false
	default:
		h.logger.Error("inventory mutation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return resp, 0, false
	}
	return resp, successStatus, true
}

func (h *HTTPHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())))
	})
}

func toItemResponse(item domain.InventoryItem) ItemHTTPResponse {
	return ItemHTTPResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Category:  item.Category,
		DateAdded: domain.FormatTimestamp(item.DateAdded),
		LowStock:  item.IsLowStock(),
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorHTTPResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
