// Package config handles configuration for the registry node, including
// defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
)

// Config holds runtime settings for the registry node.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StorageDriver / DatabaseDSN: "postgres" (pgx DSN) or "sqlite" (file path).
//   - ProgramID: address the registry program answers to.
//   - SecretKey: HMAC secret for operator JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of tokens issued by cmd/issuetoken.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: snapshot storage.
//   - TracingExporter / TracingFilePath / OTLPEndpoint: OpenTelemetry export.
//   - AddressCacheTTL: lifetime of cached canonical addresses.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC            string
	StorageDriver               string
	DatabaseDSN                 string
	ProgramID                   string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	S3RootUser                  string
	S3RootPassword              string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
	TracingExporter             string
	TracingFilePath             string
	OTLPEndpoint                string
	AddressCacheTTL             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "tokenregister.db"
	c.ProgramID = common.DefaultProgramID
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "registry"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.TracingExporter = "none"
	c.OTLPEndpoint = "localhost:4317"
	c.AddressCacheTTL = 10 * time.Minute
	c.LogLevel = "info"
}

// Load builds a Config from defaults, then an optional JSON file, then flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on malformed input.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
