package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitDisabledInstallsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "schedule.parse", attribute.String("file", "acme.xlsx"))
	defer span.End()

	assert.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsValid(), "noop spans carry no trace id")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("COMMISSION_TEST_VALUE", "set")
	assert.Equal(t, "set", envOr("COMMISSION_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", envOr("COMMISSION_TEST_MISSING", "fallback"))
}
