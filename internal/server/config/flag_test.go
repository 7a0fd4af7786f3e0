package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{
			"-a", "127.0.0.1:9090", "-k", "postgres", "-d", "db", "-i", "prog", "-s", "secret",
			"-t", "5", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-x", "otlp", "-o", "collector:4317", "-m", "2", "-l", "debug",
		},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				StorageDriver:               "postgres",
				DatabaseDSN:                 "db",
				ProgramID:                   "prog",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 5 * time.Minute,
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
				TracingExporter:             "otlp",
				OTLPEndpoint:                "collector:4317",
				AddressCacheTTL:             2 * time.Minute,
				LogLevel:                    "debug",
			}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad int", args: []string{"-t", "many"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
