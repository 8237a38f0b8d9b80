package common_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinaridici/stowagemaster/internal/application/common"
)

type pingRequest struct{ name string }
type pongResponse struct{ echoed string }

type pingHandler struct{}

func (pingHandler) Handle(_ context.Context, request common.Request) (common.Response, error) {
	req := request.(*pingRequest)
	return &pongResponse{echoed: req.name}, nil
}

func TestRegisterHandlerDispatchesByRequestType(t *testing.T) {
	m := common.NewMediator()
	assert.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	resp, err := m.Send(context.Background(), &pingRequest{name: "hull-1"})
	assert.NoError(t, err)
	assert.Equal(t, "hull-1", resp.(*pongResponse).echoed)
}

func TestRegisterHandlerRejectsDuplicateRegistration(t *testing.T) {
	m := common.NewMediator()
	assert.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))
	err := common.RegisterHandler[*pingRequest](m, pingHandler{})
	assert.Error(t, err)
}

func TestSendRejectsNilRequest(t *testing.T) {
	m := common.NewMediator()
	_, err := m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestSendRejectsUnregisteredRequestType(t *testing.T) {
	m := common.NewMediator()
	_, err := m.Send(context.Background(), &pingRequest{name: "x"})
	assert.Error(t, err)
}

// middlewares must run in registration order, with each one able to
// observe and rewrite what the next one (and ultimately the handler) sees.
func TestMiddlewareChainExecutesInRegistrationOrder(t *testing.T) {
	m := common.NewMediator()
	assert.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	var trace []string
	tag := func(label string) common.Middleware {
		return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
			trace = append(trace, "before:"+label)
			resp, err := next(ctx, request)
			trace = append(trace, "after:"+label)
			return resp, err
		}
	}
	m.RegisterMiddleware(tag("outer"))
	m.RegisterMiddleware(tag("inner"))

	_, err := m.Send(context.Background(), &pingRequest{name: "hull-1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"before:outer", "before:inner", "after:inner", "after:outer"}, trace)
}

func TestMiddlewareCanShortCircuitWithoutCallingNext(t *testing.T) {
	m := common.NewMediator()
	assert.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	m.RegisterMiddleware(func(_ context.Context, _ common.Request, _ common.HandlerFunc) (common.Response, error) {
		return nil, fmt.Errorf("blocked")
	})

	_, err := m.Send(context.Background(), &pingRequest{name: "hull-1"})
	assert.EqualError(t, err, "blocked")
}
