package persistence

import "time"

// ShipProfileModel is the gorm row for a saved ship layout. Tanks are
// stored as an ordered JSON array so index parity (port/starboard,
// row) round-trips exactly — geometry is never persisted, only
// re-derived from this order on load.
type ShipProfileModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	TanksJSON string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShipProfileModel) TableName() string { return "ship_profiles" }

// PlanModel is the gorm row for a saved plan. ExcludedTanksJSON may be
// empty on old rows — that decodes to an empty set, matching the
// backward-compatible load rule.
type PlanModel struct {
	ID                 string `gorm:"primaryKey"`
	Name               string `gorm:"index"`
	ShipProfileID      string `gorm:"index"`
	AssignmentsJSON    string `gorm:"type:text"`
	ExcludedTanksJSON  string `gorm:"type:text"`
	CargoRequestsJSON  string `gorm:"type:text"`
	Notes              string
	CreatedAt          time.Time
}

func (PlanModel) TableName() string { return "plans" }

// SettingsModel persists one row of the settings bag keyed by a fixed
// singleton id, mirroring the document's "load or use defaults and
// deep-merge in any missing keys" behavior at the application layer.
type SettingsModel struct {
	ID          string `gorm:"primaryKey"`
	SettingsJSON string `gorm:"type:text"`
	UpdatedAt   time.Time
}

func (SettingsModel) TableName() string { return "settings" }

// SettingsSingletonID is the fixed row id the settings table always uses.
const SettingsSingletonID = "default"
