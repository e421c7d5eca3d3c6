package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/pkg/api"
)

// BillingServiceName is the fully-qualified name of the BillingService.
const BillingServiceName = "saladbowl.v1.BillingService"

const (
	// BillingServiceGetBillingSplitProcedure is the path of the BillingService.GetBillingSplit RPC.
	BillingServiceGetBillingSplitProcedure = "/saladbowl.v1.BillingService/GetBillingSplit"
)

// BillingServiceClient is a client for the saladbowl.v1.BillingService service.
// Even cost splitting across the roster.
type BillingServiceClient interface {
	GetBillingSplit(context.Context, *connect.Request[api.GetBillingSplitRequest]) (*connect.Response[api.BillingSplit], error)
}

// NewBillingServiceClient constructs a client for the saladbowl.v1.BillingService service.
// baseURL is the server root, e.g. http://localhost:4000.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillingServiceClient {
	opts = clientOptions(opts)
	return &billingServiceClient{
		getBillingSplit: connect.NewClient[api.GetBillingSplitRequest, api.BillingSplit](httpClient, baseURL+BillingServiceGetBillingSplitProcedure, opts...),
	}
}

type billingServiceClient struct {
	getBillingSplit *connect.Client[api.GetBillingSplitRequest, api.BillingSplit]
}

func (c *billingServiceClient) GetBillingSplit(ctx context.Context, req *connect.Request[api.GetBillingSplitRequest]) (*connect.Response[api.BillingSplit], error) {
	return c.getBillingSplit.CallUnary(ctx, req)
}

// BillingServiceHandler is implemented by the server side of saladbowl.v1.BillingService.
type BillingServiceHandler interface {
	GetBillingSplit(context.Context, *connect.Request[api.GetBillingSplitRequest]) (*connect.Response[api.BillingSplit], error)
}

// NewBillingServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewBillingServiceHandler(svc BillingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getBillingSplitHandler := connect.NewUnaryHandler(BillingServiceGetBillingSplitProcedure, svc.GetBillingSplit, opts...)
	return "/saladbowl.v1.BillingService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillingServiceGetBillingSplitProcedure:
			getBillingSplitHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
