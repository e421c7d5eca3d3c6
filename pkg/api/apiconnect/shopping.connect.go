package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/pkg/api"
)

// ShoppingServiceName is the fully-qualified name of the ShoppingService.
const ShoppingServiceName = "saladbowl.v1.ShoppingService"

const (
	// ShoppingServiceGetShoppingListProcedure is the path of the ShoppingService.GetShoppingList RPC.
	ShoppingServiceGetShoppingListProcedure = "/saladbowl.v1.ShoppingService/GetShoppingList"
	// ShoppingServiceGetExclusionsProcedure is the path of the ShoppingService.GetExclusions RPC.
	ShoppingServiceGetExclusionsProcedure = "/saladbowl.v1.ShoppingService/GetExclusions"
	// ShoppingServiceSetExclusionsProcedure is the path of the ShoppingService.SetExclusions RPC.
	ShoppingServiceSetExclusionsProcedure = "/saladbowl.v1.ShoppingService/SetExclusions"
)

// ShoppingServiceClient is a client for the saladbowl.v1.ShoppingService service.
// The aggregated shopping list and per-user exclusions.
type ShoppingServiceClient interface {
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.ShoppingList], error)
	GetExclusions(context.Context, *connect.Request[api.GetExclusionsRequest]) (*connect.Response[api.GetExclusionsResponse], error)
	SetExclusions(context.Context, *connect.Request[api.SetExclusionsRequest]) (*connect.Response[api.SetExclusionsResponse], error)
}

// NewShoppingServiceClient constructs a client for the saladbowl.v1.ShoppingService service.
// baseURL is the server root, e.g. http://localhost:4000.
func NewShoppingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShoppingServiceClient {
	opts = clientOptions(opts)
	return &shoppingServiceClient{
		getShoppingList: connect.NewClient[api.GetShoppingListRequest, api.ShoppingList](httpClient, baseURL+ShoppingServiceGetShoppingListProcedure, opts...),
		getExclusions:   connect.NewClient[api.GetExclusionsRequest, api.GetExclusionsResponse](httpClient, baseURL+ShoppingServiceGetExclusionsProcedure, opts...),
		setExclusions:   connect.NewClient[api.SetExclusionsRequest, api.SetExclusionsResponse](httpClient, baseURL+ShoppingServiceSetExclusionsProcedure, opts...),
	}
}

type shoppingServiceClient struct {
	getShoppingList *connect.Client[api.GetShoppingListRequest, api.ShoppingList]
	getExclusions   *connect.Client[api.GetExclusionsRequest, api.GetExclusionsResponse]
	setExclusions   *connect.Client[api.SetExclusionsRequest, api.SetExclusionsResponse]
}

func (c *shoppingServiceClient) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.ShoppingList], error) {
	return c.getShoppingList.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) GetExclusions(ctx context.Context, req *connect.Request[api.GetExclusionsRequest]) (*connect.Response[api.GetExclusionsResponse], error) {
	return c.getExclusions.CallUnary(ctx, req)
}

func (c *shoppingServiceClient) SetExclusions(ctx context.Context, req *connect.Request[api.SetExclusionsRequest]) (*connect.Response[api.SetExclusionsResponse], error) {
	return c.setExclusions.CallUnary(ctx, req)
}

// ShoppingServiceHandler is implemented by the server side of saladbowl.v1.ShoppingService.
type ShoppingServiceHandler interface {
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.ShoppingList], error)
	GetExclusions(context.Context, *connect.Request[api.GetExclusionsRequest]) (*connect.Response[api.GetExclusionsResponse], error)
	SetExclusions(context.Context, *connect.Request[api.SetExclusionsRequest]) (*connect.Response[api.SetExclusionsResponse], error)
}

// NewShoppingServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewShoppingServiceHandler(svc ShoppingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getShoppingListHandler := connect.NewUnaryHandler(ShoppingServiceGetShoppingListProcedure, svc.GetShoppingList, opts...)
	getExclusionsHandler := connect.NewUnaryHandler(ShoppingServiceGetExclusionsProcedure, svc.GetExclusions, opts...)
	setExclusionsHandler := connect.NewUnaryHandler(ShoppingServiceSetExclusionsProcedure, svc.SetExclusions, opts...)
	return "/saladbowl.v1.ShoppingService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ShoppingServiceGetShoppingListProcedure:
			getShoppingListHandler.ServeHTTP(w, r)
		case ShoppingServiceGetExclusionsProcedure:
			getExclusionsHandler.ServeHTTP(w, r)
		case ShoppingServiceSetExclusionsProcedure:
			setExclusionsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
