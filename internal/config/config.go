package config

import (
	"fmt"
	"os"
)

const (
	KDFSHA256Hex = "sha256-hex"
	KDFArgon2ID  = "argon2id"
)

// Config holds runtime settings for the job dispatcher.
type Config struct {
	DatabasePath string
	Passphrase   string
	KDF          string
	KDFSalt      string
	LogLevel     string
}

// LoadDefaults populates c with defaults that read stores written by earlier
// releases.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "jobs.db"
	c.Passphrase = "Secret Password"
	c.KDF = KDFSHA256Hex
	c.KDFSalt = "job-dispatcher"
	c.LogLevel = "warn"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.KDF {
	case KDFSHA256Hex:
	case KDFArgon2ID:
		if c.KDFSalt == "" {
			return fmt.Errorf("kdf %q requires a salt", c.KDF)
		}
	default:
		return fmt.Errorf("unknown kdf %q", c.KDF)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named on the
// command line (if any), then command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
