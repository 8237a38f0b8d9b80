package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the gRPC service exposed over the daemon's Unix
// socket. There is no generated .pb.go backing it: the single Execute
// method ships structpb.Struct envelopes (a real, already-compiled
// protobuf message from the protobuf module itself) instead of a
// codegen'd request/response pair, so the wire contract never needs a
// protoc run to stay in sync with internal/domain/stowage.
const ServiceName = "stowagemaster.engine.Engine"

// Envelope is the JSON-shaped payload carried inside every
// structpb.Struct request or response. Operation selects the
// dispatch target on the server side; Payload carries that
// operation's own argument or result shape, left as raw JSON so each
// operation can define its own wire struct without widening Envelope.
type Envelope struct {
	Operation string          `json:"operation"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func encodeEnvelope(e Envelope) (*structpb.Struct, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("envelope to map: %w", err)
	}
	return structpb.NewStruct(m)
}

func decodeEnvelope(s *structpb.Struct) (Envelope, error) {
	var e Envelope
	if s == nil {
		return e, fmt.Errorf("nil envelope struct")
	}
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return e, fmt.Errorf("marshal struct map: %w", err)
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return e, nil
}

func encodePayload(operation string, payload interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", operation, err)
	}
	return encodeEnvelope(Envelope{Operation: operation, Payload: raw})
}

func decodePayload(e Envelope, out interface{}) error {
	if e.Error != "" {
		return fmt.Errorf("%s", e.Error)
	}
	if len(e.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(e.Payload, out)
}
