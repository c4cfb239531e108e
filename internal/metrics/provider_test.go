package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("clinic")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.NotNil(t, provider.MeterProvider())

	body := scrape(t, provider)
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, `service_name="clinic"`)

	assert.Contains(t, scrape(t, provider), `promhttp_metric_handler_requests_total{code="200"} 1`)
}

func TestProvider_ExportsInstruments(t *testing.T) {
	provider, err := NewProvider("clinic")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	counter, err := provider.MeterProvider().Meter("clinic").Int64Counter("clinic_test_events_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	assert.Regexp(t, `clinic_test_events_total(\{[^}]*\})? 3`, scrape(t, provider))
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Provider", func(t *testing.T) {
		provider, err := NewProvider("clinic")
		require.NoError(t, err)
		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("ZeroValue", func(t *testing.T) {
		assert.NoError(t, (&Provider{}).Shutdown(context.Background()))
	})
}
