package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DaemonClient calls the daemon's CraftSolver service
type DaemonClient struct {
	conn *grpc.ClientConn
}

// NewDaemonClient connects to the daemon's unix socket
func NewDaemonClient(socketPath string) (*DaemonClient, error) {
	return Dial("unix:"+socketPath, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// Dial connects to target with the JSON codec as the default content-subtype
func Dial(target string, opts ...grpc.DialOption) (*DaemonClient, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)))
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w", err)
	}
	return &DaemonClient{conn: conn}, nil
}

// Close closes the gRPC connection
func (c *DaemonClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// call invokes one unary method, returning the status error untouched so
// callers can inspect its code
func call[Resp any](ctx context.Context, c *DaemonClient, method string, req interface{}) (*Resp, error) {
	resp := new(Resp)
	if err := c.conn.Invoke(ctx, fullMethod(method), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *DaemonClient) BuildRecipe(ctx context.Context, req *BuildRecipeRequest) (*BuildRecipeResponse, error) {
	return call[BuildRecipeResponse](ctx, c, "BuildRecipe", req)
}

func (c *DaemonClient) BuildStatus(ctx context.Context, req *BuildStatusRequest) (*BuildStatusResponse, error) {
	return call[BuildStatusResponse](ctx, c, "BuildStatus", req)
}

func (c *DaemonClient) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	return call[SimulateResponse](ctx, c, "Simulate", req)
}

func (c *DaemonClient) ListRecipes(ctx context.Context, req *ListRecipesRequest) (*ListRecipesResponse, error) {
	return call[ListRecipesResponse](ctx, c, "ListRecipes", req)
}

func (c *DaemonClient) CreateSolver(ctx context.Context, req *CreateSolverRequest) (*CreateSolverResponse, error) {
	return call[CreateSolverResponse](ctx, c, "CreateSolver", req)
}

func (c *DaemonClient) ReadSolver(ctx context.Context, req *ReadSolverRequest) (*ReadSolverResponse, error) {
	return call[ReadSolverResponse](ctx, c, "ReadSolver", req)
}

func (c *DaemonClient) ListPresets(ctx context.Context) (*ListPresetsResponse, error) {
	return call[ListPresetsResponse](ctx, c, "ListPresets", &ListPresetsRequest{})
}

func (c *DaemonClient) Health(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, "Health", &HealthRequest{})
}
