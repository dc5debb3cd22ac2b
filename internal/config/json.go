package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/digitalai-opensource/job-dispatcher/internal/flagx"
)

// JsonConfig is the on-disk form of Config. Pointer fields tell an absent
// key from an empty value.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	Passphrase   *string `json:"passphrase"`
	KDF          *string `json:"kdf"`
	KDFSalt      *string `json:"kdf_salt"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.Passphrase, jc.Passphrase)
	overlay(&cfg.KDF, jc.KDF)
	overlay(&cfg.KDFSalt, jc.KDFSalt)
	overlay(&cfg.LogLevel, jc.LogLevel)

	return nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
