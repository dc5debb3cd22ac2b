package config

import (
	"flag"
	"io"

	"github.com/digitalai-opensource/job-dispatcher/internal/flagx"
)

// parseFlags populates Config fields from command-line flags in args.
// Flags owned by other parsers (e.g. -c) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "d", "p", "k", "s", "l")

	fs := flag.NewFlagSet("dispatcher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the job store database")
	fs.StringVar(&cfg.Passphrase, "p", cfg.Passphrase, "passphrase for the store key")
	fs.StringVar(&cfg.KDF, "k", cfg.KDF, "key derivation (sha256-hex, argon2id)")
	fs.StringVar(&cfg.KDFSalt, "s", cfg.KDFSalt, "salt for argon2id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
