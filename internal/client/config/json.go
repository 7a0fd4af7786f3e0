package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tokenregister/internal/flagx"
	"github.com/dmitrijs2005/tokenregister/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	KeystoreDir        string         `json:"keystore_dir"`
	ProgramID          string         `json:"program_id"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.KeystoreDir != "" {
		cfg.KeystoreDir = jc.KeystoreDir
	}
	if jc.ProgramID != "" {
		cfg.ProgramID = jc.ProgramID
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
