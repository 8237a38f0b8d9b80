package services

import "github.com/akinaridici/stowagemaster/internal/domain/shared"

// SystemClock timestamps plans as the three solver entry points
// create them. Tests swap it for a shared.MockClock to pin S6's
// reproducibility checks against a fixed CreatedAt.
var SystemClock shared.Clock = shared.NewRealClock()
