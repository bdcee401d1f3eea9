package tabapi

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// TabServiceName is the fully-qualified name of the TabService service.
const TabServiceName = "tabcalc.v1.TabService"

// Procedure paths for each TabService RPC.
const (
	TabServiceStartSessionProcedure          = "/tabcalc.v1.TabService/StartSession"
	TabServiceEndSessionProcedure            = "/tabcalc.v1.TabService/EndSession"
	TabServiceAddParticipantProcedure        = "/tabcalc.v1.TabService/AddParticipant"
	TabServiceCalculateProportionalProcedure = "/tabcalc.v1.TabService/CalculateProportional"
	TabServiceCalculateEvenProcedure         = "/tabcalc.v1.TabService/CalculateEven"
	TabServiceResetProcedure                 = "/tabcalc.v1.TabService/Reset"
	TabServiceGetTabProcedure                = "/tabcalc.v1.TabService/GetTab"
)

// TabServiceHandler is implemented by the server.
type TabServiceHandler interface {
	StartSession(context.Context, *connect.Request[StartSessionRequest]) (*connect.Response[StartSessionResponse], error)
	EndSession(context.Context, *connect.Request[EndSessionRequest]) (*connect.Response[EndSessionResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	CalculateProportional(context.Context, *connect.Request[CalculateProportionalRequest]) (*connect.Response[CalculateProportionalResponse], error)
	CalculateEven(context.Context, *connect.Request[CalculateEvenRequest]) (*connect.Response[CalculateEvenResponse], error)
	Reset(context.Context, *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error)
	GetTab(context.Context, *connect.Request[GetTabRequest]) (*connect.Response[GetTabResponse], error)
}

// NewTabServiceHandler builds an HTTP handler for every TabService RPC. It
// returns the path prefix to mount the handler on.
func NewTabServiceHandler(svc TabServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	routes := map[string]http.Handler{
		TabServiceStartSessionProcedure:          connect.NewUnaryHandler(TabServiceStartSessionProcedure, svc.StartSession, opts...),
		TabServiceEndSessionProcedure:            connect.NewUnaryHandler(TabServiceEndSessionProcedure, svc.EndSession, opts...),
		TabServiceAddParticipantProcedure:        connect.NewUnaryHandler(TabServiceAddParticipantProcedure, svc.AddParticipant, opts...),
		TabServiceCalculateProportionalProcedure: connect.NewUnaryHandler(TabServiceCalculateProportionalProcedure, svc.CalculateProportional, opts...),
		TabServiceCalculateEvenProcedure:         connect.NewUnaryHandler(TabServiceCalculateEvenProcedure, svc.CalculateEven, opts...),
		TabServiceResetProcedure:                 connect.NewUnaryHandler(TabServiceResetProcedure, svc.Reset, opts...),
		TabServiceGetTabProcedure:                connect.NewUnaryHandler(TabServiceGetTabProcedure, svc.GetTab, opts...),
	}

	return "/" + TabServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// TabServiceClient is a client for tabcalc.v1.TabService.
type TabServiceClient interface {
	StartSession(context.Context, *connect.Request[StartSessionRequest]) (*connect.Response[StartSessionResponse], error)
	EndSession(context.Context, *connect.Request[EndSessionRequest]) (*connect.Response[EndSessionResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	CalculateProportional(context.Context, *connect.Request[CalculateProportionalRequest]) (*connect.Response[CalculateProportionalResponse], error)
	CalculateEven(context.Context, *connect.Request[CalculateEvenRequest]) (*connect.Response[CalculateEvenResponse], error)
	Reset(context.Context, *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error)
	GetTab(context.Context, *connect.Request[GetTabRequest]) (*connect.Response[GetTabResponse], error)
}

// NewTabServiceClient constructs a client for the service at baseURL
// (e.g. "http://localhost:8080").
func NewTabServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TabServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &tabServiceClient{
		startSession:          connect.NewClient[StartSessionRequest, StartSessionResponse](httpClient, baseURL+TabServiceStartSessionProcedure, opts...),
		endSession:            connect.NewClient[EndSessionRequest, EndSessionResponse](httpClient, baseURL+TabServiceEndSessionProcedure, opts...),
		addParticipant:        connect.NewClient[AddParticipantRequest, AddParticipantResponse](httpClient, baseURL+TabServiceAddParticipantProcedure, opts...),
		calculateProportional: connect.NewClient[CalculateProportionalRequest, CalculateProportionalResponse](httpClient, baseURL+TabServiceCalculateProportionalProcedure, opts...),
		calculateEven:         connect.NewClient[CalculateEvenRequest, CalculateEvenResponse](httpClient, baseURL+TabServiceCalculateEvenProcedure, opts...),
		reset:                 connect.NewClient[ResetRequest, ResetResponse](httpClient, baseURL+TabServiceResetProcedure, opts...),
		getTab:                connect.NewClient[GetTabRequest, GetTabResponse](httpClient, baseURL+TabServiceGetTabProcedure, opts...),
	}
}

type tabServiceClient struct {
	startSession          *connect.Client[StartSessionRequest, StartSessionResponse]
	endSession            *connect.Client[EndSessionRequest, EndSessionResponse]
	addParticipant        *connect.Client[AddParticipantRequest, AddParticipantResponse]
	calculateProportional *connect.Client[CalculateProportionalRequest, CalculateProportionalResponse]
	calculateEven         *connect.Client[CalculateEvenRequest, CalculateEvenResponse]
	reset                 *connect.Client[ResetRequest, ResetResponse]
	getTab                *connect.Client[GetTabRequest, GetTabResponse]
}

func (c *tabServiceClient) StartSession(ctx context.Context, req *connect.Request[StartSessionRequest]) (*connect.Response[StartSessionResponse], error) {
	return c.startSession.CallUnary(ctx, req)
}

func (c *tabServiceClient) EndSession(ctx context.Context, req *connect.Request[EndSessionRequest]) (*connect.Response[EndSessionResponse], error) {
	return c.endSession.CallUnary(ctx, req)
}

func (c *tabServiceClient) AddParticipant(ctx context.Context, req *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *tabServiceClient) CalculateProportional(ctx context.Context, req *connect.Request[CalculateProportionalRequest]) (*connect.Response[CalculateProportionalResponse], error) {
	return c.calculateProportional.CallUnary(ctx, req)
}

func (c *tabServiceClient) CalculateEven(ctx context.Context, req *connect.Request[CalculateEvenRequest]) (*connect.Response[CalculateEvenResponse], error) {
	return c.calculateEven.CallUnary(ctx, req)
}

func (c *tabServiceClient) Reset(ctx context.Context, req *connect.Request[ResetRequest]) (*connect.Response[ResetResponse], error) {
	return c.reset.CallUnary(ctx, req)
}

func (c *tabServiceClient) GetTab(ctx context.Context, req *connect.Request[GetTabRequest]) (*connect.Response[GetTabResponse], error) {
	return c.getTab.CallUnary(ctx, req)
}
