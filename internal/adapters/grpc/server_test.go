package grpc_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	structpb "google.golang.org/protobuf/types/known/structpb"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	stowagegrpc "github.com/akinaridici/stowagemaster/internal/adapters/grpc"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/test/helpers"
)

func newEnvelopeRequest(t *testing.T, operation string, payload interface{}) *structpb.Struct {
	t.Helper()
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	m := map[string]interface{}{"operation": operation, "payload": json.RawMessage(raw)}
	s, err := structpb.NewStruct(toStructCompatible(t, m))
	assert.NoError(t, err)
	return s
}

// structpb.NewStruct requires plain Go values (no json.RawMessage), so
// round-trip the map through JSON once to normalize it the same way
// the real client-side encodePayload does.
func toStructCompatible(t *testing.T, m map[string]interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(m)
	assert.NoError(t, err)
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestEngineServiceImplExecuteOptimizeRoundTrips(t *testing.T) {
	ship := helpers.NewTestShip(1, 1000)
	cargo := helpers.NewTestCargo("crude", 800)
	settings := stowage.DefaultSettings()
	settings.OptimizationAlgorithm = stowage.AlgorithmPhase

	impl := stowagegrpc.NewEngineServiceImpl(engine.NewLocalClient())
	req := newEnvelopeRequest(t, "optimize", map[string]interface{}{
		"ship":     ship,
		"cargoes":  []*stowage.Cargo{cargo},
		"settings": settings,
	})

	resp, err := impl.Execute(context.Background(), req)
	assert.NoError(t, err)

	m := resp.AsMap()
	assert.Equal(t, "optimize", m["operation"])
	assert.Empty(t, m["error"])
	assert.NotNil(t, m["payload"])
}

func TestEngineServiceImplExecuteRejectsUnknownOperation(t *testing.T) {
	impl := stowagegrpc.NewEngineServiceImpl(engine.NewLocalClient())
	req := newEnvelopeRequest(t, "teleport", map[string]interface{}{})

	_, err := impl.Execute(context.Background(), req)
	assert.Error(t, err)
}
