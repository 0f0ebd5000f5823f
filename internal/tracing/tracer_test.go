package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider("order-tracking", "")
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_Enabled(t *testing.T) {
	// экспортер не подключается при создании, коллектор не нужен
	p, err := NewProvider("order-tracking", "http://localhost:14268/api/traces")
	require.NoError(t, err)

	assert.True(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}
