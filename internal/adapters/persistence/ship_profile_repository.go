package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// ShipProfileRepository persists named ship layouts.
type ShipProfileRepository struct {
	db *gorm.DB
}

func NewShipProfileRepository(db *gorm.DB) *ShipProfileRepository {
	return &ShipProfileRepository{db: db}
}

// Save upserts a ship profile by id.
func (r *ShipProfileRepository) Save(ship *stowage.Ship) error {
	tanksJSON, err := json.Marshal(ship.Tanks)
	if err != nil {
		return fmt.Errorf("failed to marshal tanks: %w", err)
	}
	model := ShipProfileModel{
		ID:        ship.ID,
		Name:      ship.Name,
		TanksJSON: string(tanksJSON),
	}
	return r.db.Save(&model).Error
}

// FindByID loads a ship profile, returning nil (no error) when absent.
func (r *ShipProfileRepository) FindByID(id string) (*stowage.Ship, error) {
	var model ShipProfileModel
	result := r.db.First(&model, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return modelToShip(model)
}

// ListAll returns every saved ship profile.
func (r *ShipProfileRepository) ListAll() ([]*stowage.Ship, error) {
	var models []ShipProfileModel
	if err := r.db.Find(&models).Error; err != nil {
		return nil, err
	}
	ships := make([]*stowage.Ship, 0, len(models))
	for _, m := range models {
		ship, err := modelToShip(m)
		if err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}
	return ships, nil
}

// Delete removes a ship profile by id.
func (r *ShipProfileRepository) Delete(id string) error {
	return r.db.Delete(&ShipProfileModel{}, "id = ?", id).Error
}

func modelToShip(m ShipProfileModel) (*stowage.Ship, error) {
	var tanks []stowage.Tank
	if err := json.Unmarshal([]byte(m.TanksJSON), &tanks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tanks: %w", err)
	}
	return &stowage.Ship{ID: m.ID, Name: m.Name, Tanks: tanks}, nil
}
