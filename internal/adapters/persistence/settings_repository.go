package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// SettingsRepository persists the single shared settings bag. Load
// deep-merges the stored document onto the defaults so a settings
// file saved by an older version, missing a field a newer version
// added, still gets that field's default rather than a zero value.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the stored settings merged onto stowage.DefaultSettings,
// or the defaults outright if nothing has been saved yet.
func (r *SettingsRepository) Load() (stowage.Settings, error) {
	settings := stowage.DefaultSettings()

	var model SettingsModel
	result := r.db.First(&model, "id = ?", SettingsSingletonID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return settings, nil
	}
	if result.Error != nil {
		return settings, result.Error
	}

	if err := json.Unmarshal([]byte(model.SettingsJSON), &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}

// Save persists the settings bag, overwriting the prior row.
func (r *SettingsRepository) Save(settings stowage.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	model := SettingsModel{ID: SettingsSingletonID, SettingsJSON: string(data)}
	return r.db.Save(&model).Error
}
