// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-d string   path of the local database file
//	-v          enable debug logging
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:8000",
//	  "database_path": "storefront.db",
//	  "debug": false
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
