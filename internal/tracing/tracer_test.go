package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	for _, exporter := range []string{"", ExporterNone} {
		provider, err := NewProvider(context.Background(), Config{Exporter: exporter})
		require.NoError(t, err)
		require.False(t, provider.Enabled())

		ctx, span := provider.Tracer().Start(context.Background(), "test-span")
		require.NotNil(t, ctx)
		require.False(t, span.SpanContext().IsValid(), "no-op spans carry no context")
		span.End()

		require.NoError(t, provider.Shutdown(context.Background()))
	}
}

func TestNewProvider_FileExporter(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	provider, err := NewProvider(context.Background(), Config{
		Exporter:    ExporterFile,
		FilePath:    tracePath,
		ServiceName: "test-service",
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), "test-span")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Contains(t, string(data), "test-span")
}

func TestNewProvider_FileExporterNeedsPath(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Exporter: ExporterFile})
	require.Error(t, err)
}

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Exporter: "zipkin"})
	require.ErrorContains(t, err, "unsupported exporter type")
}

func TestNewProvider_OTLP(t *testing.T) {
	// The gRPC exporter connects lazily, so construction succeeds without a
	// collector.
	provider, err := NewProvider(context.Background(), Config{Exporter: ExporterOTLP, OTLPEndpoint: "127.0.0.1:1"})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = provider.Shutdown(ctx)
}
