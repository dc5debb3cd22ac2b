package jobs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/digitalai-opensource/job-dispatcher/internal/cryptox"
	"github.com/digitalai-opensource/job-dispatcher/internal/logging"
	"github.com/digitalai-opensource/job-dispatcher/internal/models"
	"github.com/digitalai-opensource/job-dispatcher/internal/store"
)

// SeededFlagKey is the store key marking that every seed record was written.
const SeededFlagKey = "areJobsAdded"

// RecordKey returns the store key for the job with the given id.
func RecordKey(id int) string {
	return strconv.Itoa(id)
}

// Repository is the encrypted job store. Create it with NewRepository.
type Repository struct {
	store store.Store
	keys  cryptox.KeySource
	log   logging.Logger

	key   []byte
	cache map[int]models.Job
	state State
}

// NewRepository returns an uninitialized Repository. Nothing is read from the
// store and no key is derived until Initialize is called.
func NewRepository(s store.Store, keys cryptox.KeySource, log logging.Logger) *Repository {
	return &Repository{
		store: s,
		keys:  keys,
		log:   log,
		cache: make(map[int]models.Job),
		state: StateUninitialized,
	}
}

// State reports the current lifecycle phase.
func (r *Repository) State() State {
	return r.state
}

// Initialize seeds the store with seeds (once per store) and loads every seed
// id into the cache (once per process).
//
// A failure in either phase makes Initialize return false, but never stops the
// other phase from running: all seeds are attempted, and every record that
// can be loaded is loaded. Calling Initialize again is safe.
func (r *Repository) Initialize(ctx context.Context, seeds []models.Job) bool {
	key, err := r.acquireKey(ctx)
	if err != nil {
		r.log.Error(ctx, "failed to derive store key", "error", err)
		return false
	}

	r.state = StateSeeding
	seeded := r.seed(ctx, key, seeds)

	loaded := r.load(ctx, key, seeds)
	r.state = StateLoaded
	r.log.Info(ctx, "job store initialized", "jobs", len(r.cache), "seeded", seeded, "loaded", loaded, "state", r.state)

	// Ready even after a partial load: the cache holds whatever decrypted.
	r.state = StateReady

	return seeded && loaded
}

func (r *Repository) acquireKey(ctx context.Context) ([]byte, error) {
	if r.key != nil {
		return r.key, nil
	}
	key, err := r.keys.Key(ctx)
	if err != nil {
		return nil, err
	}
	r.key = key
	return key, nil
}

func (r *Repository) seed(ctx context.Context, key []byte, seeds []models.Job) bool {
	done, err := r.isSeeded(ctx)
	if err != nil {
		// Writing seeds over an unreadable store could overwrite toggled records.
		r.log.Error(ctx, "failed to read seeded flag", "error", err)
		return false
	}
	if done {
		r.log.Debug(ctx, "store already seeded")
		return true
	}

	ok := true
	for _, job := range seeds {
		if err := r.persist(ctx, key, job); err != nil {
			r.log.Error(ctx, "failed to seed job", "job_id", job.ID, "error", err)
			ok = false
		}
	}
	if !ok {
		return false
	}

	if err := r.store.Set(ctx, SeededFlagKey, strconv.FormatBool(true)); err != nil {
		r.log.Error(ctx, "failed to set seeded flag", "error", err)
		return false
	}

	r.log.Info(ctx, "store seeded", "jobs", len(seeds))
	return true
}

func (r *Repository) isSeeded(ctx context.Context) (bool, error) {
	v, err := r.store.Get(ctx, SeededFlagKey)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	seeded, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: seeded flag %q: %v", store.ErrPersistence, v, err)
	}
	return seeded, nil
}

func (r *Repository) load(ctx context.Context, key []byte, seeds []models.Job) bool {
	if len(r.cache) > 0 {
		r.log.Debug(ctx, "jobs already loaded", "jobs", len(r.cache))
		return true
	}

	ok := true
	for _, seed := range seeds {
		job, err := r.fetch(ctx, key, seed.ID)
		if err != nil {
			r.log.Warn(ctx, "failed to load job", "job_id", seed.ID, "error", err)
			ok = false
			continue
		}
		r.cache[job.ID] = job
	}
	return ok
}

// fetch reads, opens and decodes the record stored for id.
func (r *Repository) fetch(ctx context.Context, key []byte, id int) (models.Job, error) {
	recordKey := RecordKey(id)

	token, err := r.store.Get(ctx, recordKey)
	if err != nil {
		return models.Job{}, err
	}

	plaintext, err := cryptox.Open(token, key)
	if err != nil {
		return models.Job{}, err
	}

	job, err := models.DecodeJob(plaintext)
	if err != nil {
		return models.Job{}, err
	}
	if job.ID != id {
		return models.Job{}, fmt.Errorf("%w: record %d stored under key %q", models.ErrDecode, job.ID, recordKey)
	}

	return job, nil
}

// persist encodes, seals and writes job under its own id.
func (r *Repository) persist(ctx context.Context, key []byte, job models.Job) error {
	plaintext, err := models.EncodeJob(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	token, err := cryptox.Seal(plaintext, key)
	if err != nil {
		return fmt.Errorf("failed to seal job: %w", err)
	}

	return r.store.Set(ctx, RecordKey(job.ID), token)
}

// ListJobs splits the cached jobs into open and closed ones, each sorted by id.
// It never touches the store.
func (r *Repository) ListJobs() (open, closed []models.Job) {
	open = make([]models.Job, 0, len(r.cache))
	closed = make([]models.Job, 0, len(r.cache))

	for _, job := range r.cache {
		if job.IsOpen {
			open = append(open, job)
		} else {
			closed = append(closed, job)
		}
	}

	byID := func(a, b models.Job) int { return cmp.Compare(a.ID, b.ID) }
	slices.SortFunc(open, byID)
	slices.SortFunc(closed, byID)

	return open, closed
}

// Job returns the cached job with the given id.
func (r *Repository) Job(id int) (models.Job, bool) {
	job, ok := r.cache[id]
	return job, ok
}

// ToggleOpenState flips IsOpen of the cached job and writes the re-sealed
// record back to the store.
//
// id must come from ListJobs; an unknown id returns false and changes nothing.
// When the write fails the cached flip is kept, so the change is visible for
// the rest of the session but may not survive a restart. Calling again with
// the same id flips it back.
func (r *Repository) ToggleOpenState(ctx context.Context, id int) bool {
	job, ok := r.cache[id]
	if !ok || r.key == nil {
		r.log.Warn(ctx, "toggle of unknown job", "job_id", id, "state", r.state)
		return false
	}

	job.IsOpen = !job.IsOpen
	r.cache[id] = job

	if err := r.persist(ctx, r.key, job); err != nil {
		r.log.Error(ctx, "failed to persist job state", "job_id", id, "is_open", job.IsOpen, "error", err)
		return false
	}

	r.log.Debug(ctx, "job state changed", "job_id", id, "is_open", job.IsOpen)
	return true
}
