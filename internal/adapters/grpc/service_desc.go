package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "craftsolver.v1.CraftSolver"

// CraftSolverServer is the server API of the daemon service
type CraftSolverServer interface {
	BuildRecipe(context.Context, *BuildRecipeRequest) (*BuildRecipeResponse, error)
	BuildStatus(context.Context, *BuildStatusRequest) (*BuildStatusResponse, error)
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
	ListRecipes(context.Context, *ListRecipesRequest) (*ListRecipesResponse, error)
	CreateSolver(context.Context, *CreateSolverRequest) (*CreateSolverResponse, error)
	ReadSolver(context.Context, *ReadSolverRequest) (*ReadSolverResponse, error)
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

// unaryMethod adapts a typed server method to a grpc.MethodDesc
func unaryMethod[Req any, Resp any](name string, call func(CraftSolverServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CraftSolverServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CraftSolverServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var craftSolverServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CraftSolverServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("BuildRecipe", CraftSolverServer.BuildRecipe),
		unaryMethod("BuildStatus", CraftSolverServer.BuildStatus),
		unaryMethod("Simulate", CraftSolverServer.Simulate),
		unaryMethod("ListRecipes", CraftSolverServer.ListRecipes),
		unaryMethod("CreateSolver", CraftSolverServer.CreateSolver),
		unaryMethod("ReadSolver", CraftSolverServer.ReadSolver),
		unaryMethod("ListPresets", CraftSolverServer.ListPresets),
		unaryMethod("Health", CraftSolverServer.Health),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "craftsolver/v1",
}

// RegisterCraftSolverServer registers the service implementation on s
func RegisterCraftSolverServer(s grpc.ServiceRegistrar, srv CraftSolverServer) {
	s.RegisterService(&craftSolverServiceDesc, srv)
}
