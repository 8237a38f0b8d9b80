package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func TestEncodeDecodeEnvelopeRoundTrips(t *testing.T) {
	req := sampleRequest{Name: "crude", Amount: 1234.5}
	s, err := encodePayload("Optimize", req)
	assert.NoError(t, err)
	assert.NotNil(t, s)

	env, err := decodeEnvelope(s)
	assert.NoError(t, err)
	assert.Equal(t, "Optimize", env.Operation)
	assert.Empty(t, env.Error)

	var out sampleRequest
	assert.NoError(t, decodePayload(env, &out))
	assert.Equal(t, req, out)
}

func TestDecodeEnvelopeRejectsNilStruct(t *testing.T) {
	_, err := decodeEnvelope(nil)
	assert.Error(t, err)
}

func TestDecodePayloadSurfacesTheEnvelopesError(t *testing.T) {
	env := Envelope{Operation: "Optimize", Error: "ship must have at least one tank"}
	var out sampleRequest
	err := decodePayload(env, &out)
	assert.EqualError(t, err, "ship must have at least one tank")
}

func TestDecodePayloadIsANoOpWhenPayloadIsEmpty(t *testing.T) {
	env := Envelope{Operation: "Unfulfilled"}
	var out sampleRequest
	assert.NoError(t, decodePayload(env, &out))
	assert.Equal(t, sampleRequest{}, out)
}
