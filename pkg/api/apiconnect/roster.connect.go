package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/pkg/api"
)

// RosterServiceName is the fully-qualified name of the RosterService.
const RosterServiceName = "saladbowl.v1.RosterService"

const (
	// RosterServiceListParticipantsProcedure is the path of the RosterService.ListParticipants RPC.
	RosterServiceListParticipantsProcedure = "/saladbowl.v1.RosterService/ListParticipants"
	// RosterServiceJoinProcedure is the path of the RosterService.Join RPC.
	RosterServiceJoinProcedure = "/saladbowl.v1.RosterService/Join"
	// RosterServiceLeaveProcedure is the path of the RosterService.Leave RPC.
	RosterServiceLeaveProcedure = "/saladbowl.v1.RosterService/Leave"
	// RosterServiceUpdateParticipantProcedure is the path of the RosterService.UpdateParticipant RPC.
	RosterServiceUpdateParticipantProcedure = "/saladbowl.v1.RosterService/UpdateParticipant"
	// RosterServiceRemoveParticipantProcedure is the path of the RosterService.RemoveParticipant RPC.
	RosterServiceRemoveParticipantProcedure = "/saladbowl.v1.RosterService/RemoveParticipant"
)

// RosterServiceClient is a client for the saladbowl.v1.RosterService service.
// The weekly participant roster.
type RosterServiceClient interface {
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	Join(context.Context, *connect.Request[api.JoinRequest]) (*connect.Response[api.JoinResponse], error)
	Leave(context.Context, *connect.Request[api.LeaveRequest]) (*connect.Response[api.LeaveResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
}

// NewRosterServiceClient constructs a client for the saladbowl.v1.RosterService service.
// baseURL is the server root, e.g. http://localhost:4000.
func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RosterServiceClient {
	opts = clientOptions(opts)
	return &rosterServiceClient{
		listParticipants:  connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](httpClient, baseURL+RosterServiceListParticipantsProcedure, opts...),
		join:              connect.NewClient[api.JoinRequest, api.JoinResponse](httpClient, baseURL+RosterServiceJoinProcedure, opts...),
		leave:             connect.NewClient[api.LeaveRequest, api.LeaveResponse](httpClient, baseURL+RosterServiceLeaveProcedure, opts...),
		updateParticipant: connect.NewClient[api.UpdateParticipantRequest, api.UpdateParticipantResponse](httpClient, baseURL+RosterServiceUpdateParticipantProcedure, opts...),
		removeParticipant: connect.NewClient[api.RemoveParticipantRequest, api.RemoveParticipantResponse](httpClient, baseURL+RosterServiceRemoveParticipantProcedure, opts...),
	}
}

type rosterServiceClient struct {
	listParticipants  *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	join              *connect.Client[api.JoinRequest, api.JoinResponse]
	leave             *connect.Client[api.LeaveRequest, api.LeaveResponse]
	updateParticipant *connect.Client[api.UpdateParticipantRequest, api.UpdateParticipantResponse]
	removeParticipant *connect.Client[api.RemoveParticipantRequest, api.RemoveParticipantResponse]
}

func (c *rosterServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *rosterServiceClient) Join(ctx context.Context, req *connect.Request[api.JoinRequest]) (*connect.Response[api.JoinResponse], error) {
	return c.join.CallUnary(ctx, req)
}

func (c *rosterServiceClient) Leave(ctx context.Context, req *connect.Request[api.LeaveRequest]) (*connect.Response[api.LeaveResponse], error) {
	return c.leave.CallUnary(ctx, req)
}

func (c *rosterServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

func (c *rosterServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

// RosterServiceHandler is implemented by the server side of saladbowl.v1.RosterService.
type RosterServiceHandler interface {
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	Join(context.Context, *connect.Request[api.JoinRequest]) (*connect.Response[api.JoinResponse], error)
	Leave(context.Context, *connect.Request[api.LeaveRequest]) (*connect.Response[api.LeaveResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error)
}

// NewRosterServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listParticipantsHandler := connect.NewUnaryHandler(RosterServiceListParticipantsProcedure, svc.ListParticipants, opts...)
	joinHandler := connect.NewUnaryHandler(RosterServiceJoinProcedure, svc.Join, opts...)
	leaveHandler := connect.NewUnaryHandler(RosterServiceLeaveProcedure, svc.Leave, opts...)
	updateParticipantHandler := connect.NewUnaryHandler(RosterServiceUpdateParticipantProcedure, svc.UpdateParticipant, opts...)
	removeParticipantHandler := connect.NewUnaryHandler(RosterServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...)
	return "/saladbowl.v1.RosterService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RosterServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case RosterServiceJoinProcedure:
			joinHandler.ServeHTTP(w, r)
		case RosterServiceLeaveProcedure:
			leaveHandler.ServeHTTP(w, r)
		case RosterServiceUpdateParticipantProcedure:
			updateParticipantHandler.ServeHTTP(w, r)
		case RosterServiceRemoveParticipantProcedure:
			removeParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
