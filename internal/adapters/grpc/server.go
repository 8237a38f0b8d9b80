package grpc

import (
	"context"
	"fmt"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"google.golang.org/protobuf/types/known/structpb"
)

// EngineServiceImpl adapts an engine.Client to the hand-authored
// Execute RPC: it decodes the operation envelope, dispatches to the
// matching Client method, and re-encodes the result (or error) as a
// response envelope. It never returns a gRPC-level error for a
// domain failure, mirroring the teacher's daemon service impl, which
// always returns a well-formed response and lets the payload carry
// the failure.
type EngineServiceImpl struct {
	client engine.Client
}

// NewEngineServiceImpl wraps client for serving over gRPC.
func NewEngineServiceImpl(client engine.Client) *EngineServiceImpl {
	return &EngineServiceImpl{client: client}
}

var _ EngineServiceServer = (*EngineServiceImpl)(nil)

// Execute is the single RPC method the hand-authored service desc wires up.
func (s *EngineServiceImpl) Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := decodeEnvelope(req)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	var out *structpb.Struct
	switch in.Operation {
	case "optimize":
		out, err = s.optimize(ctx, in)
	case "optimizeWithRetries":
		out, err = s.optimizeWithRetries(ctx, in)
	case "score":
		out, err = s.score(ctx, in)
	case "validate":
		out, err = s.validate(ctx, in)
	case "unfulfilled":
		out, err = s.unfulfilled(ctx, in)
	default:
		return nil, fmt.Errorf("unknown operation %q", in.Operation)
	}
	if err != nil {
		return encodeEnvelope(Envelope{Operation: in.Operation, Error: err.Error()})
	}
	return out, nil
}

func (s *EngineServiceImpl) optimize(ctx context.Context, in Envelope) (*structpb.Struct, error) {
	var wire optimizeWire
	if err := decodePayload(in, &wire); err != nil {
		return nil, err
	}
	plan, err := s.client.Optimize(ctx, wire.toArgs())
	if err != nil {
		return nil, err
	}
	return encodePayload("optimize", planWire{Plan: plan})
}

func (s *EngineServiceImpl) optimizeWithRetries(ctx context.Context, in Envelope) (*structpb.Struct, error) {
	var wire optimizeWithRetriesWire
	if err := decodePayload(in, &wire); err != nil {
		return nil, err
	}
	plan, err := s.client.OptimizeWithRetries(ctx, wire.toArgs(), wire.NumRetries)
	if err != nil {
		return nil, err
	}
	return encodePayload("optimizeWithRetries", planWire{Plan: plan})
}

func (s *EngineServiceImpl) score(ctx context.Context, in Envelope) (*structpb.Struct, error) {
	var wire scoreWire
	if err := decodePayload(in, &wire); err != nil {
		return nil, err
	}
	score, err := s.client.Score(ctx, wire.Plan, wire.Ship, wire.Cargoes)
	if err != nil {
		return nil, err
	}
	return encodePayload("score", scoreResultWire{Score: score})
}

func (s *EngineServiceImpl) validate(ctx context.Context, in Envelope) (*structpb.Struct, error) {
	var wire validateWire
	if err := decodePayload(in, &wire); err != nil {
		return nil, err
	}
	ok, msg, err := s.client.Validate(ctx, wire.Ship, wire.Cargoes)
	if err != nil {
		return nil, err
	}
	return encodePayload("validate", validateResultWire{OK: ok, Message: msg})
}

func (s *EngineServiceImpl) unfulfilled(ctx context.Context, in Envelope) (*structpb.Struct, error) {
	var wire unfulfilledWire
	if err := decodePayload(in, &wire); err != nil {
		return nil, err
	}
	entries, err := s.client.Unfulfilled(ctx, wire.Plan, wire.Cargoes)
	if err != nil {
		return nil, err
	}
	return encodePayload("unfulfilled", unfulfilledResultWire{Entries: entries})
}
