// Package v1alpha1 serves the progression API over gRPC. Messages are
// google.protobuf.Struct documents whose fields mirror the entity JSON.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "progression.v1alpha1.ProgressionService"

// ProgressionServiceServer is the server API for ProgressionService
type ProgressionServiceServer interface {
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListThemes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidateTransition(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyTransition(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTransitionSuggestions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTransitionHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateEvent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyEvent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RevertEvent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddExperience(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordMilestone(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnlockAchievement(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProgress(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ProgressionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ProgressionServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ProgressionServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ProgressionServiceDesc describes ProgressionService for grpc.Server
var ProgressionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProgressionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("CreateCharacter", ProgressionServiceServer.CreateCharacter),
		unaryHandler("GetCharacter", ProgressionServiceServer.GetCharacter),
		unaryHandler("ListThemes", ProgressionServiceServer.ListThemes),
		unaryHandler("ValidateTransition", ProgressionServiceServer.ValidateTransition),
		unaryHandler("ApplyTransition", ProgressionServiceServer.ApplyTransition),
		unaryHandler("GetTransitionSuggestions", ProgressionServiceServer.GetTransitionSuggestions),
		unaryHandler("GetTransitionHistory", ProgressionServiceServer.GetTransitionHistory),
		unaryHandler("CreateEvent", ProgressionServiceServer.CreateEvent),
		unaryHandler("ApplyEvent", ProgressionServiceServer.ApplyEvent),
		unaryHandler("RevertEvent", ProgressionServiceServer.RevertEvent),
		unaryHandler("AddExperience", ProgressionServiceServer.AddExperience),
		unaryHandler("RecordMilestone", ProgressionServiceServer.RecordMilestone),
		unaryHandler("UnlockAchievement", ProgressionServiceServer.UnlockAchievement),
		unaryHandler("GetProgress", ProgressionServiceServer.GetProgress),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "progression/v1alpha1/progression.proto",
}

// RegisterProgressionServiceServer registers srv on s
func RegisterProgressionServiceServer(s grpc.ServiceRegistrar, srv ProgressionServiceServer) {
	s.RegisterService(&ProgressionServiceDesc, srv)
}

// Client calls ProgressionService methods by name
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
