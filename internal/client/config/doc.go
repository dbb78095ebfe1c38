// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. ADMIN_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the admin REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local credential store
//	-o string   directory CSV exports are written to
//	-p int      default page size
//
// # File schema
//
// Durations may be strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "request_timeout": "15s",
//	  "store_path": "admin.db",
//	  "export_dir": "exports",
//	  "page_size": 10,
//	  "log_level": "info",
//	  "s3": {"bucket": "reports", "region": "eu-west-1"}
//	}
//
// The store secret is never read from a file, only from ADMIN_STORE_SECRET.
package config
