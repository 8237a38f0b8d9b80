package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// EngineServiceServer is implemented by anything that can answer the
// engine's single Execute RPC. EngineServiceImpl is the only
// implementation; the interface exists so _Engine_serviceDesc can
// reference it without importing the concrete type.
type EngineServiceServer interface {
	Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func _Engine_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Execute",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).Execute(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var engineServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Execute", Handler: _Engine_Execute_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stowagemaster/internal/adapters/grpc/engine.go",
}

// RegisterEngineServiceServer registers srv against s, mirroring the
// registration call a generated pb.RegisterXServer function would make.
func RegisterEngineServiceServer(s grpc.ServiceRegistrar, srv EngineServiceServer) {
	s.RegisterService(&engineServiceDesc, srv)
}

// engineExecuteMethod is the fully qualified method name the client
// dials directly via grpc.ClientConn.Invoke, in place of a generated
// client stub's method call.
const engineExecuteMethod = "/" + ServiceName + "/Execute"

func callExecute(ctx context.Context, cc *grpc.ClientConn, in *structpb.Struct) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, engineExecuteMethod, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
