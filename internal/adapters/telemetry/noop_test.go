package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tribuild/internal/adapters/telemetry"
	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
)

func TestNoOp_RecordAttachesVertex(t *testing.T) {
	ctx, v := telemetry.NoOp{}.Record(context.Background(), "probing")

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, got)

	n, err := v.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	v.Log(domain.LogLevelInfo, "ignored")
	v.Complete(errors.New("ignored"))
	assert.NoError(t, telemetry.NoOp{}.Close())
}
