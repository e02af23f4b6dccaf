package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

func TestStatisticsServiceGetKnownKinds(t *testing.T) {
	svc := NewStatisticsService(nil)

	for _, kind := range []string{StatsKindChats, StatsKindEmployees, StatsKindImages, StatsKindKpi, StatsKindReports, StatsKindReviews} {
		data, err := svc.Get(kind, 7)
		require.NoError(t, err, "kind %s", kind)
		assert.NotNil(t, data, "kind %s", kind)
	}
}

func TestStatisticsServiceGetUnknownKind(t *testing.T) {
	svc := NewStatisticsService(nil)

	_, err := svc.Get("velocity", 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStatisticsServiceExportDefaultsToCSV(t *testing.T) {
	svc := NewStatisticsService(nil)

	result, err := svc.Export("", 7)
	require.NoError(t, err)
	assert.Equal(t, "statistics.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, string(result.Body), "Metric,Value")
}

func TestStatisticsServiceExportPDF(t *testing.T) {
	svc := NewStatisticsService(nil)

	result, err := svc.Export("pdf", 7)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, result.Body)
}

func TestStatisticsServiceExportUnsupportedFormat(t *testing.T) {
	svc := NewStatisticsService(nil)

	_, err := svc.Export("xlsx", 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
