package handler

import (
	"context"

	"google.golang.org/grpc"
)

const inventoryServiceName = "pinkstock.v1.InventoryService"

type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Category string `json:"category,omitempty"`
}

type AddItemResponse struct {
	Id      string `json:"id"`
	Warning string `json:"warning,omitempty"`
}

type AdjustQuantityRequest struct {
	Id    string `json:"id"`
	Delta int64  `json:"delta"`
}

type AdjustQuantityResponse struct {
	Item    *Item  `json:"item"`
	Warning string `json:"warning,omitempty"`
}

type DeleteItemRequest struct {
	Id string `json:"id"`
}

type DeleteItemResponse struct {
	Warning string `json:"warning,omitempty"`
}

type ListItemsRequest struct {
	Search       string `json:"search,omitempty"`
	Category     string `json:"category,omitempty"`
	LowStockOnly bool   `json:"low_stock_only,omitempty"`
}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	TotalItems    int32 `json:"total_items"`
	TotalQuantity int64 `json:"total_quantity"`
	LowStockCount int32 `json:"low_stock_count"`
}

type Item struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Category  string `json:"category,omitempty"`
	DateAdded string `json:"date_added"`
}

type InventoryServiceServer interface {
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	AdjustQuantity(context.Context, *AdjustQuantityRequest) (*AdjustQuantityResponse, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	GetSummary(context.Context, *GetSummaryRequest) (*GetSummaryResponse, error)
}

// InventoryServiceDesc is registered on a grpc.Server in place of generated stubs.
var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: inventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddItem", Handler: unaryHandler("AddItem", func(s InventoryServiceServer, ctx context.Context, in *AddItemRequest) (any, error) {
			return s.AddItem(ctx, in)
		})},
		{MethodName: "AdjustQuantity", Handler: unaryHandler("AdjustQuantity", func(s InventoryServiceServer, ctx context.Context, in *AdjustQuantityRequest) (any, error) {
			return s.AdjustQuantity(ctx, in)
		})},
		{MethodName: "DeleteItem", Handler: unaryHandler("DeleteItem", func(s InventoryServiceServer, ctx context.Context, in *DeleteItemRequest) (any, error) {
			return s.DeleteItem(ctx, in)
		})},
		{MethodName: "ListItems", Handler: unaryHandler("ListItems", func(s InventoryServiceServer, ctx context.Context, in *ListItemsRequest) (any, error) {
			return s.ListItems(ctx, in)
		})},
		{MethodName: "ListCategories", Handler: unaryHandler("ListCategories", func(s InventoryServiceServer, ctx context.Context, in *ListCategoriesRequest) (any, error) {
			return s.ListCategories(ctx, in)
		})},
		{MethodName: "GetSummary", Handler: unaryHandler("GetSummary", func(s InventoryServiceServer, ctx context.Context, in *GetSummaryRequest) (any, error) {
			return s.GetSummary(ctx, in)
		})},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pinkstock/v1/inventory",
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc's untyped method handler,
// running the server interceptor chain when one is installed.
func unaryHandler[Req any](method string, call func(InventoryServiceServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	fullMethod := "/" + inventoryServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(InventoryServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		h := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, h)
	}
}

// InventoryClient calls InventoryService over an existing connection.
type InventoryClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryClient(cc grpc.ClientConnInterface) *InventoryClient {
	return &InventoryClient{cc: cc}
}

func (c *InventoryClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(JSONCodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+inventoryServiceName+"/"+method, in, out, opts...)
}

func (c *InventoryClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	out := new(AddItemResponse)
	if err := c.invoke(ctx, "AddItem", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryClient) AdjustQuantity(ctx context.Context, in *AdjustQuantityRequest, opts ...grpc.CallOption) (*AdjustQuantityResponse, error) {
	out := new(AdjustQuantityResponse)
	if err := c.invoke(ctx, "AdjustQuantity", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error) {
	out := new(DeleteItemResponse)
	if err := c.invoke(ctx, "DeleteItem", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	out := new(ListItemsResponse)
	if err := c.invoke(ctx, "ListItems", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.invoke(ctx, "ListCategories", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryClient) GetSummary(ctx context.Context, in *GetSummaryRequest, opts ...grpc.CallOption) (*GetSummaryResponse, error) {
	out := new(GetSummaryResponse)
	if err := c.invoke(ctx, "GetSummary", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
