// Package safety provides safety score sources for the safety report.
package safety

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
)

// DefaultBaselineScore is the score reported for every driver until the
// telematics integration supplies real per-driver data.
const DefaultBaselineScore = 85.0

// StaticProvider reports a fixed baseline score for every driver. It stands in
// for the external telematics system; swap it out behind
// ports.SafetyScoreProvider when that integration lands.
type StaticProvider struct {
	score float64
}

// NewStaticProvider creates a provider that returns the given score for every
// driver.
func NewStaticProvider(score float64) *StaticProvider {
	return &StaticProvider{score: score}
}

// Score returns the configured baseline score regardless of driver.
func (p *StaticProvider) Score(_ context.Context, _ *driver.Driver) (float64, error) {
	return p.score, nil
}
