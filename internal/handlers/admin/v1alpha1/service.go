// Package v1alpha1 serves the operator gRPC API. Messages are plain Go
// structs carried by the JSON codec, so the service descriptor is declared
// here rather than generated.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified admin service name
const ServiceName = "thetaarc.admin.v1alpha1.AdminService"

// Full method names
const (
	MethodGetAccount  = "/" + ServiceName + "/GetAccount"
	MethodLeaderboard = "/" + ServiceName + "/Leaderboard"
	MethodSummonBoss  = "/" + ServiceName + "/SummonBoss"
	MethodSummonSpawn = "/" + ServiceName + "/SummonSpawn"
	MethodGetBoss     = "/" + ServiceName + "/GetBoss"
)

// AdminServiceServer is implemented by Handler
type AdminServiceServer interface {
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
	Leaderboard(context.Context, *LeaderboardRequest) (*LeaderboardResponse, error)
	SummonBoss(context.Context, *SummonBossRequest) (*BossResponse, error)
	SummonSpawn(context.Context, *SummonSpawnRequest) (*SummonSpawnResponse, error)
	GetBoss(context.Context, *GetBossRequest) (*BossResponse, error)
}

// RegisterAdminServiceServer registers srv on s
func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminServiceDesc, srv)
}

// unary adapts one typed method to the grpc.MethodHandler shape
func unary[Req any, Resp any](
	method string,
	call func(AdminServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AdminServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AdminServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AdminServiceDesc describes the admin service for grpc.Server
var AdminServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAccount", Handler: unary(MethodGetAccount, AdminServiceServer.GetAccount)},
		{MethodName: "Leaderboard", Handler: unary(MethodLeaderboard, AdminServiceServer.Leaderboard)},
		{MethodName: "SummonBoss", Handler: unary(MethodSummonBoss, AdminServiceServer.SummonBoss)},
		{MethodName: "SummonSpawn", Handler: unary(MethodSummonSpawn, AdminServiceServer.SummonSpawn)},
		{MethodName: "GetBoss", Handler: unary(MethodGetBoss, AdminServiceServer.GetBoss)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "thetaarc/admin/v1alpha1/admin.json",
}

// AdminServiceClient calls the admin service over the JSON codec
type AdminServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdminServiceClient wraps a connection
func NewAdminServiceClient(cc grpc.ClientConnInterface) *AdminServiceClient {
	return &AdminServiceClient{cc: cc}
}

func (c *AdminServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

// GetAccount fetches an account summary
func (c *AdminServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	out := new(GetAccountResponse)
	if err := c.invoke(ctx, MethodGetAccount, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaderboard fetches the top of a board
func (c *AdminServiceClient) Leaderboard(ctx context.Context, in *LeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardResponse, error) {
	out := new(LeaderboardResponse)
	if err := c.invoke(ctx, MethodLeaderboard, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// SummonBoss opens a boss encounter
func (c *AdminServiceClient) SummonBoss(ctx context.Context, in *SummonBossRequest, opts ...grpc.CallOption) (*BossResponse, error) {
	out := new(BossResponse)
	if err := c.invoke(ctx, MethodSummonBoss, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// SummonSpawn puts a wild TAC in a channel
func (c *AdminServiceClient) SummonSpawn(ctx context.Context, in *SummonSpawnRequest, opts ...grpc.CallOption) (*SummonSpawnResponse, error) {
	out := new(SummonSpawnResponse)
	if err := c.invoke(ctx, MethodSummonSpawn, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBoss fetches a guild's active boss
func (c *AdminServiceClient) GetBoss(ctx context.Context, in *GetBossRequest, opts ...grpc.CallOption) (*BossResponse, error) {
	out := new(BossResponse)
	if err := c.invoke(ctx, MethodGetBoss, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
