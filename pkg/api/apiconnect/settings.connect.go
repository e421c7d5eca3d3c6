package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/pkg/api"
)

// SettingsServiceName is the fully-qualified name of the SettingsService.
const SettingsServiceName = "saladbowl.v1.SettingsService"

const (
	// SettingsServiceGetResetSettingsProcedure is the path of the SettingsService.GetResetSettings RPC.
	SettingsServiceGetResetSettingsProcedure = "/saladbowl.v1.SettingsService/GetResetSettings"
	// SettingsServiceUpdateResetSettingsProcedure is the path of the SettingsService.UpdateResetSettings RPC.
	SettingsServiceUpdateResetSettingsProcedure = "/saladbowl.v1.SettingsService/UpdateResetSettings"
)

// SettingsServiceClient is a client for the saladbowl.v1.SettingsService service.
// The weekly reset schedule.
type SettingsServiceClient interface {
	GetResetSettings(context.Context, *connect.Request[api.GetResetSettingsRequest]) (*connect.Response[api.GetResetSettingsResponse], error)
	UpdateResetSettings(context.Context, *connect.Request[api.UpdateResetSettingsRequest]) (*connect.Response[api.UpdateResetSettingsResponse], error)
}

// NewSettingsServiceClient constructs a client for the saladbowl.v1.SettingsService service.
// baseURL is the server root, e.g. http://localhost:4000.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	opts = clientOptions(opts)
	return &settingsServiceClient{
		getResetSettings:    connect.NewClient[api.GetResetSettingsRequest, api.GetResetSettingsResponse](httpClient, baseURL+SettingsServiceGetResetSettingsProcedure, opts...),
		updateResetSettings: connect.NewClient[api.UpdateResetSettingsRequest, api.UpdateResetSettingsResponse](httpClient, baseURL+SettingsServiceUpdateResetSettingsProcedure, opts...),
	}
}

type settingsServiceClient struct {
	getResetSettings    *connect.Client[api.GetResetSettingsRequest, api.GetResetSettingsResponse]
	updateResetSettings *connect.Client[api.UpdateResetSettingsRequest, api.UpdateResetSettingsResponse]
}

func (c *settingsServiceClient) GetResetSettings(ctx context.Context, req *connect.Request[api.GetResetSettingsRequest]) (*connect.Response[api.GetResetSettingsResponse], error) {
	return c.getResetSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdateResetSettings(ctx context.Context, req *connect.Request[api.UpdateResetSettingsRequest]) (*connect.Response[api.UpdateResetSettingsResponse], error) {
	return c.updateResetSettings.CallUnary(ctx, req)
}

// SettingsServiceHandler is implemented by the server side of saladbowl.v1.SettingsService.
type SettingsServiceHandler interface {
	GetResetSettings(context.Context, *connect.Request[api.GetResetSettingsRequest]) (*connect.Response[api.GetResetSettingsResponse], error)
	UpdateResetSettings(context.Context, *connect.Request[api.UpdateResetSettingsRequest]) (*connect.Response[api.UpdateResetSettingsResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getResetSettingsHandler := connect.NewUnaryHandler(SettingsServiceGetResetSettingsProcedure, svc.GetResetSettings, opts...)
	updateResetSettingsHandler := connect.NewUnaryHandler(SettingsServiceUpdateResetSettingsProcedure, svc.UpdateResetSettings, opts...)
	return "/saladbowl.v1.SettingsService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettingsServiceGetResetSettingsProcedure:
			getResetSettingsHandler.ServeHTTP(w, r)
		case SettingsServiceUpdateResetSettingsProcedure:
			updateResetSettingsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
