package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/digitalai-opensource/job-dispatcher/internal/config"
	"github.com/digitalai-opensource/job-dispatcher/internal/cryptox"
	"github.com/digitalai-opensource/job-dispatcher/internal/filex"
	"github.com/digitalai-opensource/job-dispatcher/internal/jobs"
	"github.com/digitalai-opensource/job-dispatcher/internal/logging"
	"github.com/digitalai-opensource/job-dispatcher/internal/models"
	"github.com/digitalai-opensource/job-dispatcher/internal/store"
)

const (
	alertLoad   = "Error in obtaining jobs, some jobs may not have loaded."
	alertToggle = "Error in changing job status."
)

// jobService is the part of jobs.Repository the client uses.
type jobService interface {
	Initialize(ctx context.Context, seeds []models.Job) bool
	ListJobs() (open, closed []models.Job)
	Job(id int) (models.Job, bool)
	ToggleOpenState(ctx context.Context, id int) bool
}

type App struct {
	jobs       jobService
	log        logging.Logger
	out        io.Writer
	db         *sql.DB
	passphrase []byte
}

// NewApp opens the job store named in c and prepares the repository.
// The passphrase is prompted for when c.Passphrase is empty.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, out io.Writer) (*App, error) {
	passphrase := []byte(c.Passphrase)
	if len(passphrase) == 0 {
		pw, err := GetPassphrase(out)
		if err != nil {
			return nil, fmt.Errorf("failed to read passphrase: %w", err)
		}
		passphrase = pw
	}

	keys, err := keySource(c, passphrase)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	repo := jobs.NewRepository(store.NewSQLiteStore(db), keys, log.With("store", c.DatabasePath))

	return &App{
		jobs:       repo,
		log:        log,
		out:        out,
		db:         db,
		passphrase: passphrase,
	}, nil
}

func keySource(c *config.Config, passphrase []byte) (cryptox.KeySource, error) {
	switch c.KDF {
	case config.KDFSHA256Hex:
		return cryptox.PassphraseKeySource{Passphrase: passphrase}, nil
	case config.KDFArgon2ID:
		return cryptox.Argon2KeySource{Passphrase: passphrase, Salt: []byte(c.KDFSalt)}, nil
	default:
		return nil, fmt.Errorf("unknown kdf %q", c.KDF)
	}
}

// Run loads the job store and serves commands read from in.
func (a *App) Run(ctx context.Context, in io.Reader) {
	if !a.jobs.Initialize(ctx, jobs.SeedJobs()) {
		fmt.Fprintln(a.out, alertLoad)
	}
	// the repository keeps the derived key; the passphrase is no longer needed
	cryptox.Wipe(a.passphrase)

	fmt.Fprintln(a.out, "Job dispatcher (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(in), a.out)
}

// Close releases the job store.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
