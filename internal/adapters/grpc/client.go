package grpc

import (
	"context"
	"fmt"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	domain "github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// EngineClientGRPC implements engine.Client over a real gRPC
// connection to a running stowage daemon, pairing with
// engine.LocalClient the way the teacher's DaemonClientGRPC pairs
// with DaemonClientLocal.
type EngineClientGRPC struct {
	conn *grpc.ClientConn
}

// DialEngine connects to a daemon listening on target (typically
// "unix:///path/to/stowage.sock").
func DialEngine(target string) (*EngineClientGRPC, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial engine at %s: %w", target, err)
	}
	return &EngineClientGRPC{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *EngineClientGRPC) Close() error {
	return c.conn.Close()
}

func (c *EngineClientGRPC) call(ctx context.Context, operation string, payload interface{}, out interface{}) error {
	req, err := encodePayload(operation, payload)
	if err != nil {
		return err
	}
	respStruct, err := callExecute(ctx, c.conn, req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	resp, err := decodeEnvelope(respStruct)
	if err != nil {
		return err
	}
	return decodePayload(resp, out)
}

func (c *EngineClientGRPC) Optimize(ctx context.Context, req engine.OptimizeArgs) (*domain.Plan, error) {
	var out planWire
	if err := c.call(ctx, "optimize", toOptimizeWire(req), &out); err != nil {
		return nil, err
	}
	return out.Plan, nil
}

func (c *EngineClientGRPC) OptimizeWithRetries(ctx context.Context, req engine.OptimizeArgs, numRetries int) (*domain.Plan, error) {
	var out planWire
	wire := optimizeWithRetriesWire{optimizeWire: toOptimizeWire(req), NumRetries: numRetries}
	if err := c.call(ctx, "optimizeWithRetries", wire, &out); err != nil {
		return nil, err
	}
	return out.Plan, nil
}

func (c *EngineClientGRPC) Score(ctx context.Context, plan *domain.Plan, ship *domain.Ship, cargoes []*domain.Cargo) (float64, error) {
	var out scoreResultWire
	wire := scoreWire{Plan: plan, Ship: ship, Cargoes: cargoes}
	if err := c.call(ctx, "score", wire, &out); err != nil {
		return 0, err
	}
	return out.Score, nil
}

func (c *EngineClientGRPC) Validate(ctx context.Context, ship *domain.Ship, cargoes []*domain.Cargo) (bool, string, error) {
	var out validateResultWire
	wire := validateWire{Ship: ship, Cargoes: cargoes}
	if err := c.call(ctx, "validate", wire, &out); err != nil {
		return false, "", err
	}
	return out.OK, out.Message, nil
}

func (c *EngineClientGRPC) Unfulfilled(ctx context.Context, plan *domain.Plan, cargoes []*domain.Cargo) ([]engine.ShortfallEntry, error) {
	var out unfulfilledResultWire
	wire := unfulfilledWire{Plan: plan, Cargoes: cargoes}
	if err := c.call(ctx, "unfulfilled", wire, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

var _ engine.Client = (*EngineClientGRPC)(nil)
