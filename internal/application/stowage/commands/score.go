package commands

import (
	"context"
	"fmt"

	"github.com/akinaridici/stowagemaster/internal/application/common"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/types"
)

// ScoreCommand asks for a plan's composite score.
type ScoreCommand = types.ScoreRequest

// ScoreHandler computes C6's composite 0..100 score for a plan.
type ScoreHandler struct{}

func NewScoreHandler() *ScoreHandler { return &ScoreHandler{} }

func (h *ScoreHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	req, ok := request.(ScoreCommand)
	if !ok {
		return nil, fmt.Errorf("score handler: unexpected request type %T", request)
	}
	score := services.Score(req.Plan, req.Ship, req.Cargoes)
	return types.ScoreResponse{Score: score}, nil
}

// ValidateCommand asks whether a ship/cargo combination is structurally sound.
type ValidateCommand = types.ValidateRequest

// ValidateHandler checks ship/cargo structural validity and capacity feasibility.
type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler { return &ValidateHandler{} }

func (h *ValidateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	req, ok := request.(ValidateCommand)
	if !ok {
		return nil, fmt.Errorf("validate handler: unexpected request type %T", request)
	}
	ok2, msg := services.ValidatePhase(req.Ship, req.Cargoes)
	return types.ValidateResponse{OK: ok2, Message: msg}, nil
}
