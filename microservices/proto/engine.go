// Package proto describes the MoveEngine gRPC service. Messages are
// google.protobuf.Struct values so no generated message types are needed;
// the descriptor below has the same shape protoc-gen-go-grpc emits.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName                          = "ttt.MoveEngine"
	MoveEngine_SelectMove_FullMethodName = "/ttt.MoveEngine/SelectMove"
)

type MoveEngineClient interface {
	SelectMove(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type moveEngineClient struct {
	cc grpc.ClientConnInterface
}

func NewMoveEngineClient(cc grpc.ClientConnInterface) MoveEngineClient {
	return &moveEngineClient{cc}
}

func (c *moveEngineClient) SelectMove(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, MoveEngine_SelectMove_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type MoveEngineServer interface {
	SelectMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type UnimplementedMoveEngineServer struct{}

func (UnimplementedMoveEngineServer) SelectMove(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectMove not implemented")
}

func RegisterMoveEngineServer(s grpc.ServiceRegistrar, srv MoveEngineServer) {
	s.RegisterService(&MoveEngine_ServiceDesc, srv)
}

func _MoveEngine_SelectMove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoveEngineServer).SelectMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoveEngine_SelectMove_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoveEngineServer).SelectMove(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var MoveEngine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MoveEngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SelectMove",
			Handler:    _MoveEngine_SelectMove_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "engine.proto",
}
