// Package config loads runtime configuration for the job dispatcher.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite job store (":memory:" for a throwaway store)
//	-p string   passphrase the store key is derived from ("" prompts for it)
//	-k string   key derivation: "sha256-hex" or "argon2id"
//	-s string   salt for argon2id
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "database_path": "jobs.db",
//	  "passphrase": "Secret Password",
//	  "kdf": "sha256-hex",
//	  "kdf_salt": "job-dispatcher",
//	  "log_level": "warn"
//	}
//
// Keys absent from the file keep their earlier value. Environment variables
// are not read.
package config
