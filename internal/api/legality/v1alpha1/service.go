package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Fully qualified names of the service and its methods
const (
	LegalityService_ServiceName                     = "legality.v1alpha1.LegalityService"
	LegalityService_ResolveLevelUp_FullMethodName   = "/legality.v1alpha1.LegalityService/ResolveLevelUp"
	LegalityService_ListLevelUpMoves_FullMethodName = "/legality.v1alpha1.LegalityService/ListLevelUpMoves"
	LegalityService_EncounterMoves_FullMethodName   = "/legality.v1alpha1.LegalityService/EncounterMoves"
	LegalityService_VerifyLevel_FullMethodName      = "/legality.v1alpha1.LegalityService/VerifyLevel"
	LegalityService_VerifyBatch_FullMethodName      = "/legality.v1alpha1.LegalityService/VerifyBatch"
)

// LegalityServiceServer is the server API for LegalityService.
// Implementations must embed UnimplementedLegalityServiceServer.
type LegalityServiceServer interface {
	ResolveLevelUp(context.Context, *ResolveLevelUpRequest) (*ResolveLevelUpResponse, error)
	ListLevelUpMoves(context.Context, *ListLevelUpMovesRequest) (*ListLevelUpMovesResponse, error)
	EncounterMoves(context.Context, *EncounterMovesRequest) (*EncounterMovesResponse, error)
	VerifyLevel(context.Context, *VerifyLevelRequest) (*VerifyLevelResponse, error)
	VerifyBatch(context.Context, *VerifyBatchRequest) (*VerifyBatchResponse, error)
	mustEmbedUnimplementedLegalityServiceServer()
}

// UnimplementedLegalityServiceServer answers every method with Unimplemented
type UnimplementedLegalityServiceServer struct{}

// ResolveLevelUp is not implemented
func (UnimplementedLegalityServiceServer) ResolveLevelUp(context.Context, *ResolveLevelUpRequest) (*ResolveLevelUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolveLevelUp not implemented")
}

// ListLevelUpMoves is not implemented
func (UnimplementedLegalityServiceServer) ListLevelUpMoves(context.Context, *ListLevelUpMovesRequest) (*ListLevelUpMovesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLevelUpMoves not implemented")
}

// EncounterMoves is not implemented
func (UnimplementedLegalityServiceServer) EncounterMoves(context.Context, *EncounterMovesRequest) (*EncounterMovesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EncounterMoves not implemented")
}

// VerifyLevel is not implemented
func (UnimplementedLegalityServiceServer) VerifyLevel(context.Context, *VerifyLevelRequest) (*VerifyLevelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyLevel not implemented")
}

// VerifyBatch is not implemented
func (UnimplementedLegalityServiceServer) VerifyBatch(context.Context, *VerifyBatchRequest) (*VerifyBatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyBatch not implemented")
}

func (UnimplementedLegalityServiceServer) mustEmbedUnimplementedLegalityServiceServer() {}

// RegisterLegalityServiceServer registers srv on s
func RegisterLegalityServiceServer(s grpc.ServiceRegistrar, srv LegalityServiceServer) {
	s.RegisterService(&LegalityService_ServiceDesc, srv)
}

// unaryHandler adapts one typed method to the grpc.MethodDesc handler shape
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(LegalityServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(LegalityServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// LegalityService_ServiceDesc describes LegalityService for grpc.RegisterService
var LegalityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: LegalityService_ServiceName,
	HandlerType: (*LegalityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveLevelUp",
			Handler:    unaryHandler(LegalityService_ResolveLevelUp_FullMethodName, LegalityServiceServer.ResolveLevelUp),
		},
		{
			MethodName: "ListLevelUpMoves",
			Handler:    unaryHandler(LegalityService_ListLevelUpMoves_FullMethodName, LegalityServiceServer.ListLevelUpMoves),
		},
		{
			MethodName: "EncounterMoves",
			Handler:    unaryHandler(LegalityService_EncounterMoves_FullMethodName, LegalityServiceServer.EncounterMoves),
		},
		{
			MethodName: "VerifyLevel",
			Handler:    unaryHandler(LegalityService_VerifyLevel_FullMethodName, LegalityServiceServer.VerifyLevel),
		},
		{
			MethodName: "VerifyBatch",
			Handler:    unaryHandler(LegalityService_VerifyBatch_FullMethodName, LegalityServiceServer.VerifyBatch),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "legality/v1alpha1/legality.json",
}

// LegalityServiceClient is the client API for LegalityService
type LegalityServiceClient interface {
	ResolveLevelUp(ctx context.Context, in *ResolveLevelUpRequest, opts ...grpc.CallOption) (*ResolveLevelUpResponse, error)
	ListLevelUpMoves(ctx context.Context, in *ListLevelUpMovesRequest, opts ...grpc.CallOption) (*ListLevelUpMovesResponse, error)
	EncounterMoves(ctx context.Context, in *EncounterMovesRequest, opts ...grpc.CallOption) (*EncounterMovesResponse, error)
	VerifyLevel(ctx context.Context, in *VerifyLevelRequest, opts ...grpc.CallOption) (*VerifyLevelResponse, error)
	VerifyBatch(ctx context.Context, in *VerifyBatchRequest, opts ...grpc.CallOption) (*VerifyBatchResponse, error)
}

type legalityServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLegalityServiceClient creates a client on cc
func NewLegalityServiceClient(cc grpc.ClientConnInterface) LegalityServiceClient {
	return &legalityServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *legalityServiceClient) ResolveLevelUp(ctx context.Context, in *ResolveLevelUpRequest, opts ...grpc.CallOption) (*ResolveLevelUpResponse, error) {
	return invoke[ResolveLevelUpResponse](ctx, c.cc, LegalityService_ResolveLevelUp_FullMethodName, in, opts)
}

func (c *legalityServiceClient) ListLevelUpMoves(ctx context.Context, in *ListLevelUpMovesRequest, opts ...grpc.CallOption) (*ListLevelUpMovesResponse, error) {
	return invoke[ListLevelUpMovesResponse](ctx, c.cc, LegalityService_ListLevelUpMoves_FullMethodName, in, opts)
}

func (c *legalityServiceClient) EncounterMoves(ctx context.Context, in *EncounterMovesRequest, opts ...grpc.CallOption) (*EncounterMovesResponse, error) {
	return invoke[EncounterMovesResponse](ctx, c.cc, LegalityService_EncounterMoves_FullMethodName, in, opts)
}

func (c *legalityServiceClient) VerifyLevel(ctx context.Context, in *VerifyLevelRequest, opts ...grpc.CallOption) (*VerifyLevelResponse, error) {
	return invoke[VerifyLevelResponse](ctx, c.cc, LegalityService_VerifyLevel_FullMethodName, in, opts)
}

func (c *legalityServiceClient) VerifyBatch(ctx context.Context, in *VerifyBatchRequest, opts ...grpc.CallOption) (*VerifyBatchResponse, error) {
	return invoke[VerifyBatchResponse](ctx, c.cc, LegalityService_VerifyBatch_FullMethodName, in, opts)
}
