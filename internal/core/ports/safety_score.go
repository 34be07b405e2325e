package ports

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
)

// SafetyScoreProvider supplies per-driver safety scores for the safety report.
// Scores come from an external telematics system; the in-repo stub returns a
// fixed baseline until that integration lands.
type SafetyScoreProvider interface {
	// Score returns the driver's safety score on a 0 to 100 scale.
	Score(ctx context.Context, d *driver.Driver) (float64, error)
}
