// Package config loads runtime configuration for the tokenregister CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Global command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the registry node
//	-w string   keystore directory
//	-i string   registry program id
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "keystore_dir": "~/.tokenregister/keys",
//	  "program_id": "4DHXD1JVCTYQnWVXpqG1HY9LbAocbsfQUbDqmK4qBB4o",
//	  "request_timeout": "10s"
//	}
package config
