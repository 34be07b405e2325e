package queries_test

import (
	"testing"

	"fleetflow/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFleetMetricsQuery_Valid(t *testing.T) {
	query := queries.NewGetFleetMetricsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetFleetMetricsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFleetMetricsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFleetMetricsQueryIsNotConstructed)
}
