package observability

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, activity string) float64 {
	t.Helper()

	metric := &dto.Metric{}
	require.NoError(t, signupCounter.WithLabelValues(activity).Write(metric))
	return metric.GetCounter().GetValue()
}

func TestRecordSignupIncrementsCounter(t *testing.T) {
	before := counterValue(t, "Observability Club")
	RecordSignup("Observability Club")
	RecordSignup("Observability Club")
	require.Equal(t, before+2, counterValue(t, "Observability Club"))
}

func TestRecordRemovalIncrementsCounter(t *testing.T) {
	RecordRemoval("Observability Club")

	metric := &dto.Metric{}
	require.NoError(t, removalCounter.WithLabelValues("Observability Club").Write(metric))
	require.GreaterOrEqual(t, metric.GetCounter().GetValue(), 1.0)
}

func TestSetRosterSize(t *testing.T) {
	SetRosterSize("Observability Club", 7)

	metric := &dto.Metric{}
	require.NoError(t, rosterSizeGauge.WithLabelValues("Observability Club").Write(metric))
	require.Equal(t, 7.0, metric.GetGauge().GetValue())
}
