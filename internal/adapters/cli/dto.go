package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// shipFile is the on-disk JSON shape accepted by `ship create --file` and
// `optimize --ship-file`. Kept deliberately flat — this is an input
// format, not a wire protocol.
type shipFile struct {
	ID    string         `json:"id"`
	Name  string          `json:"name"`
	Tanks []shipFileTank `json:"tanks"`
}

type shipFileTank struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
}

func loadShipFile(path string) (*stowage.Ship, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ship file: %w", err)
	}
	var sf shipFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse ship file: %w", err)
	}
	tanks := make([]stowage.Tank, 0, len(sf.Tanks))
	for _, t := range sf.Tanks {
		tanks = append(tanks, stowage.Tank{ID: t.ID, Name: t.Name, Volume: t.Volume})
	}
	return &stowage.Ship{ID: sf.ID, Name: sf.Name, Tanks: tanks}, nil
}

// cargoFileEntry is one requested cargo in a `--cargo` JSON file.
type cargoFileEntry struct {
	ID              string   `json:"id"`
	KindLabel       string   `json:"kind"`
	RequestedVolume float64  `json:"requested_volume"`
	Ton             float64  `json:"ton"`
	Density         float64  `json:"density"`
	Receivers       []string `json:"receivers"`
	Mandatory       bool     `json:"mandatory"`
}

func loadCargoFile(path string) ([]*stowage.Cargo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cargo file: %w", err)
	}
	var entries []cargoFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse cargo file: %w", err)
	}
	cargoes := make([]*stowage.Cargo, 0, len(entries))
	for _, e := range entries {
		cargo := stowage.NewCargoFromPersisted(e.ID, e.KindLabel, e.RequestedVolume, e.Ton, e.Density, e.Receivers, e.Mandatory)
		cargoes = append(cargoes, cargo)
	}
	return cargoes, nil
}
