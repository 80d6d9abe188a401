package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/service"
	"github.com/rl1809/pinkstock/internal/core/view"
)

const notPersistedWarning = "change saved for this session but could not be written to storage"

type GRPCHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

var _ InventoryServiceServer = (*GRPCHandler)(nil)

func NewGRPCHandler(inventory *service.InventoryService, logger *zap.Logger) *GRPCHandler {
	return &GRPCHandler{inventory: inventory, logger: logger}
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
	newItem := domain.NewItem{Name: req.Name, Quantity: int(req.Quantity), Category: req.Category}
	if err := newItem.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.inventory.AddItem(ctx, newItem)
	warning, err := h.classify(err)
	if err != nil {
		return nil, err
	}
	return &AddItemResponse{Id: id, Warning: warning}, nil
}

func (h *GRPCHandler) AdjustQuantity(ctx context.Context, req *AdjustQuantityRequest) (*AdjustQuantityResponse, error) {
	item, err := h.inventory.AdjustQuantity(ctx, req.Id, int(req.Delta))
	warning, err := h.classify(err)
	if err != nil {
		return nil, err
	}
	return &AdjustQuantityResponse{Item: toGRPCItem(item), Warning: warning}, nil
}

func (h *GRPCHandler) DeleteItem(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	warning, err := h.classify(h.inventory.DeleteItem(ctx, req.Id))
	if err != nil {
		return nil, err
	}
	return &DeleteItemResponse{Warning: warning}, nil
}

func (h *GRPCHandler) ListItems(ctx context.Context, req *ListItemsRequest) (*ListItemsResponse, error) {
	items := h.inventory.Filter(view.Filter{
		Search:       req.Search,
		Category:     req.Category,
		LowStockOnly: req.LowStockOnly,
	})
	resp := &ListItemsResponse{Items: make([]*Item, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toGRPCItem(item))
	}
	return resp, nil
}

func (h *GRPCHandler) ListCategories(ctx context.Context, req *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return &ListCategoriesResponse{Categories: h.inventory.ListCategories()}, nil
}

func (h *GRPCHandler) GetSummary(ctx context.Context, req *GetSummaryRequest) (*GetSummaryResponse, error) {
	s := h.inventory.Summary()
	return &GetSummaryResponse{
		TotalItems:    int32(s.TotalItems),
		TotalQuantity: int64(s.TotalQuantity),
		LowStockCount: int32(s.LowStockCount),
	}, nil
}

// classify turns a store error into either a warning for a successful
// response or a gRPC status error.
func (h *GRPCHandler) classify(err error) (string, error) {
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, service.ErrNotPersisted):
		return notPersistedWarning, nil
	case errors.Is(err, service.ErrItemNotFound):
		return "", status.Error(codes.NotFound, "item not found")
	case errors.Is(err, domain.ErrInvalidItem):
		return "", status.Error(codes.InvalidArgument, err.Error())
	default:
		h.logger.Error("inventory mutation failed", zap.Error(err))
		return "", status.Error(codes.Internal, "internal error")
	}
}

func toGRPCItem(item domain.InventoryItem) *Item {
	return &Item{
		Id:        item.ID,
		Name:      item.Name,
		Quantity:  int64(item.Quantity),
		Category:  item.Category,
		DateAdded: domain.FormatTimestamp(item.DateAdded),
	}
}
