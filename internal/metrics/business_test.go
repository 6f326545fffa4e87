package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric line
// matching the given name, partial label pattern, and value. Uses a regex to
// tolerate the extra OTel scope labels injected by the exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("places")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "places")

	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("places")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "places")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulOperation", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "user", "login", "success")
	})

	t.Run("Success_RecordFailedOperation", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "user", "login", "error")
	})

	t.Run("Success_RecordMultipleModules", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "location", "search_locations", "success")
		bm.RecordOperation(context.Background(), "review", "create_review", "success")
		bm.RecordOperation(context.Background(), "favorite", "toggle_favorite", "error")
	})
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("places")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "places")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulDuration", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "user", "login", 123*time.Millisecond, "success")
	})

	t.Run("Success_RecordFailedDuration", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "location", "get_nearby", 456*time.Millisecond, "error")
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOp)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)

	t.Run("NoOp_RecordOperationDoesNotPanic", func(t *testing.T) {
		noOp.RecordOperation(context.Background(), "user", "login", "success")
	})

	t.Run("NoOp_RecordDurationDoesNotPanic", func(t *testing.T) {
		noOp.RecordDuration(context.Background(), "user", "login", 100*time.Millisecond, "success")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("places_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "places_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "user", "login", "success")
	bm.RecordOperation(ctx, "user", "login", "success")
	bm.RecordOperation(ctx, "user", "login", "error")
	bm.RecordOperation(ctx, "location", "search_locations", "success")

	bm.RecordDuration(ctx, "user", "login", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "user", "login", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "location", "search_locations", 10*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	output := w.Body.String()

	assertMetricLine(
		t,
		output,
		`places_test_operations_total`,
		`module="user".*operation="login".*status="success"`,
		`2`,
	)
	assertMetricLine(
		t,
		output,
		`places_test_operations_total`,
		`module="user".*operation="login".*status="error"`,
		`1`,
	)
	assertMetricLine(
		t,
		output,
		`places_test_operation_duration_seconds_count`,
		`module="user".*operation="login".*status="success"`,
		`2`,
	)
}
