package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/pkg/api"
)

// RecipeServiceName is the fully-qualified name of the RecipeService.
const RecipeServiceName = "saladbowl.v1.RecipeService"

const (
	// RecipeServiceListTemplatesProcedure is the path of the RecipeService.ListTemplates RPC.
	RecipeServiceListTemplatesProcedure = "/saladbowl.v1.RecipeService/ListTemplates"
	// RecipeServiceGetActiveTemplateProcedure is the path of the RecipeService.GetActiveTemplate RPC.
	RecipeServiceGetActiveTemplateProcedure = "/saladbowl.v1.RecipeService/GetActiveTemplate"
	// RecipeServiceCreateTemplateProcedure is the path of the RecipeService.CreateTemplate RPC.
	RecipeServiceCreateTemplateProcedure = "/saladbowl.v1.RecipeService/CreateTemplate"
	// RecipeServiceUpdateTemplateProcedure is the path of the RecipeService.UpdateTemplate RPC.
	RecipeServiceUpdateTemplateProcedure = "/saladbowl.v1.RecipeService/UpdateTemplate"
	// RecipeServiceDeleteTemplateProcedure is the path of the RecipeService.DeleteTemplate RPC.
	RecipeServiceDeleteTemplateProcedure = "/saladbowl.v1.RecipeService/DeleteTemplate"
	// RecipeServiceActivateTemplateProcedure is the path of the RecipeService.ActivateTemplate RPC.
	RecipeServiceActivateTemplateProcedure = "/saladbowl.v1.RecipeService/ActivateTemplate"
)

// RecipeServiceClient is a client for the saladbowl.v1.RecipeService service.
// The recipe template library and the active template.
type RecipeServiceClient interface {
	ListTemplates(context.Context, *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error)
	GetActiveTemplate(context.Context, *connect.Request[api.GetActiveTemplateRequest]) (*connect.Response[api.GetActiveTemplateResponse], error)
	CreateTemplate(context.Context, *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error)
	UpdateTemplate(context.Context, *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error)
	DeleteTemplate(context.Context, *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error)
	ActivateTemplate(context.Context, *connect.Request[api.ActivateTemplateRequest]) (*connect.Response[api.ActivateTemplateResponse], error)
}

// NewRecipeServiceClient constructs a client for the saladbowl.v1.RecipeService service.
// baseURL is the server root, e.g. http://localhost:4000.
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecipeServiceClient {
	opts = clientOptions(opts)
	return &recipeServiceClient{
		listTemplates:     connect.NewClient[api.ListTemplatesRequest, api.ListTemplatesResponse](httpClient, baseURL+RecipeServiceListTemplatesProcedure, opts...),
		getActiveTemplate: connect.NewClient[api.GetActiveTemplateRequest, api.GetActiveTemplateResponse](httpClient, baseURL+RecipeServiceGetActiveTemplateProcedure, opts...),
		createTemplate:    connect.NewClient[api.CreateTemplateRequest, api.CreateTemplateResponse](httpClient, baseURL+RecipeServiceCreateTemplateProcedure, opts...),
		updateTemplate:    connect.NewClient[api.UpdateTemplateRequest, api.UpdateTemplateResponse](httpClient, baseURL+RecipeServiceUpdateTemplateProcedure, opts...),
		deleteTemplate:    connect.NewClient[api.DeleteTemplateRequest, api.DeleteTemplateResponse](httpClient, baseURL+RecipeServiceDeleteTemplateProcedure, opts...),
		activateTemplate:  connect.NewClient[api.ActivateTemplateRequest, api.ActivateTemplateResponse](httpClient, baseURL+RecipeServiceActivateTemplateProcedure, opts...),
	}
}

type recipeServiceClient struct {
	listTemplates     *connect.Client[api.ListTemplatesRequest, api.ListTemplatesResponse]
	getActiveTemplate *connect.Client[api.GetActiveTemplateRequest, api.GetActiveTemplateResponse]
	createTemplate    *connect.Client[api.CreateTemplateRequest, api.CreateTemplateResponse]
	updateTemplate    *connect.Client[api.UpdateTemplateRequest, api.UpdateTemplateResponse]
	deleteTemplate    *connect.Client[api.DeleteTemplateRequest, api.DeleteTemplateResponse]
	activateTemplate  *connect.Client[api.ActivateTemplateRequest, api.ActivateTemplateResponse]
}

func (c *recipeServiceClient) ListTemplates(ctx context.Context, req *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error) {
	return c.listTemplates.CallUnary(ctx, req)
}

func (c *recipeServiceClient) GetActiveTemplate(ctx context.Context, req *connect.Request[api.GetActiveTemplateRequest]) (*connect.Response[api.GetActiveTemplateResponse], error) {
	return c.getActiveTemplate.CallUnary(ctx, req)
}

func (c *recipeServiceClient) CreateTemplate(ctx context.Context, req *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error) {
	return c.createTemplate.CallUnary(ctx, req)
}

func (c *recipeServiceClient) UpdateTemplate(ctx context.Context, req *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error) {
	return c.updateTemplate.CallUnary(ctx, req)
}

func (c *recipeServiceClient) DeleteTemplate(ctx context.Context, req *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error) {
	return c.deleteTemplate.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ActivateTemplate(ctx context.Context, req *connect.Request[api.ActivateTemplateRequest]) (*connect.Response[api.ActivateTemplateResponse], error) {
	return c.activateTemplate.CallUnary(ctx, req)
}

// RecipeServiceHandler is implemented by the server side of saladbowl.v1.RecipeService.
type RecipeServiceHandler interface {
	ListTemplates(context.Context, *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error)
	GetActiveTemplate(context.Context, *connect.Request[api.GetActiveTemplateRequest]) (*connect.Response[api.GetActiveTemplateResponse], error)
	CreateTemplate(context.Context, *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error)
	UpdateTemplate(context.Context, *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error)
	DeleteTemplate(context.Context, *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error)
	ActivateTemplate(context.Context, *connect.Request[api.ActivateTemplateRequest]) (*connect.Response[api.ActivateTemplateResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listTemplatesHandler := connect.NewUnaryHandler(RecipeServiceListTemplatesProcedure, svc.ListTemplates, opts...)
	getActiveTemplateHandler := connect.NewUnaryHandler(RecipeServiceGetActiveTemplateProcedure, svc.GetActiveTemplate, opts...)
	createTemplateHandler := connect.NewUnaryHandler(RecipeServiceCreateTemplateProcedure, svc.CreateTemplate, opts...)
	updateTemplateHandler := connect.NewUnaryHandler(RecipeServiceUpdateTemplateProcedure, svc.UpdateTemplate, opts...)
	deleteTemplateHandler := connect.NewUnaryHandler(RecipeServiceDeleteTemplateProcedure, svc.DeleteTemplate, opts...)
	activateTemplateHandler := connect.NewUnaryHandler(RecipeServiceActivateTemplateProcedure, svc.ActivateTemplate, opts...)
	return "/saladbowl.v1.RecipeService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecipeServiceListTemplatesProcedure:
			listTemplatesHandler.ServeHTTP(w, r)
		case RecipeServiceGetActiveTemplateProcedure:
			getActiveTemplateHandler.ServeHTTP(w, r)
		case RecipeServiceCreateTemplateProcedure:
			createTemplateHandler.ServeHTTP(w, r)
		case RecipeServiceUpdateTemplateProcedure:
			updateTemplateHandler.ServeHTTP(w, r)
		case RecipeServiceDeleteTemplateProcedure:
			deleteTemplateHandler.ServeHTTP(w, r)
		case RecipeServiceActivateTemplateProcedure:
			activateTemplateHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
