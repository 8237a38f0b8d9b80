package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// PlanRepository persists computed plans, newest first.
type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Save upserts a plan by id. ExcludedTanks is always written, even
// when empty, so a future load never needs to guess.
func (r *PlanRepository) Save(plan *stowage.Plan, shipProfileID string) error {
	assignments, err := json.Marshal(plan.Assignments)
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}
	excluded := make([]string, 0, len(plan.ExcludedTanks))
	for id := range plan.ExcludedTanks {
		excluded = append(excluded, id)
	}
	excludedJSON, err := json.Marshal(excluded)
	if err != nil {
		return fmt.Errorf("failed to marshal excluded tanks: %w", err)
	}
	cargoJSON, err := json.Marshal(plan.CargoRequests)
	if err != nil {
		return fmt.Errorf("failed to marshal cargo requests: %w", err)
	}

	model := PlanModel{
		ID:                plan.ID,
		Name:              plan.Name,
		ShipProfileID:     shipProfileID,
		AssignmentsJSON:   string(assignments),
		ExcludedTanksJSON: string(excludedJSON),
		CargoRequestsJSON: string(cargoJSON),
		Notes:             plan.Notes,
		CreatedAt:         plan.CreatedAt,
	}
	return r.db.Save(&model).Error
}

// FindByID loads a plan, returning nil (no error) when absent.
// Missing ExcludedTanksJSON (an old row) decodes to an empty set.
func (r *PlanRepository) FindByID(id string) (*stowage.Plan, error) {
	var model PlanModel
	result := r.db.First(&model, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return modelToPlan(model)
}

// ListAll returns every saved plan, newest first.
func (r *PlanRepository) ListAll() ([]*stowage.Plan, error) {
	var models []PlanModel
	if err := r.db.Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}
	plans := make([]*stowage.Plan, 0, len(models))
	for _, m := range models {
		plan, err := modelToPlan(m)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Delete removes a plan by id.
func (r *PlanRepository) Delete(id string) error {
	return r.db.Delete(&PlanModel{}, "id = ?", id).Error
}

func modelToPlan(m PlanModel) (*stowage.Plan, error) {
	assignments := make(map[string]stowage.Assignment)
	if m.AssignmentsJSON != "" {
		if err := json.Unmarshal([]byte(m.AssignmentsJSON), &assignments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assignments: %w", err)
		}
	}

	excludedTanks := make(map[string]bool)
	if m.ExcludedTanksJSON != "" {
		var ids []string
		if err := json.Unmarshal([]byte(m.ExcludedTanksJSON), &ids); err != nil {
			return nil, fmt.Errorf("failed to unmarshal excluded tanks: %w", err)
		}
		for _, id := range ids {
			excludedTanks[id] = true
		}
	}

	var cargoRequests []string
	if m.CargoRequestsJSON != "" {
		if err := json.Unmarshal([]byte(m.CargoRequestsJSON), &cargoRequests); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cargo requests: %w", err)
		}
	}

	return &stowage.Plan{
		ID:            m.ID,
		Name:          m.Name,
		ShipRef:       m.ShipProfileID,
		CargoRequests: cargoRequests,
		Assignments:   assignments,
		ExcludedTanks: excludedTanks,
		CreatedAt:     m.CreatedAt,
		Notes:         m.Notes,
	}, nil
}
