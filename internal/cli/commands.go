package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/digitalai-opensource/job-dispatcher/internal/models"
	"github.com/fatih/color"
)

var (
	errUsage       = errors.New("usage")
	errJobNotFound = errors.New("job not found")
	errNotSaved    = errors.New("job state not saved")
)

var (
	openLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	closedLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

func statusLabel(j models.Job) string {
	if j.IsOpen {
		return openLabel("open")
	}
	return closedLabel("closed")
}

// List prints open jobs, then closed jobs.
func (a *App) List(ctx context.Context) error {
	open, closed := a.jobs.ListJobs()

	fmt.Fprintln(a.out, openLabel("Today's Work"))
	a.printJobs(open)
	fmt.Fprintln(a.out, closedLabel("Closed"))
	a.printJobs(closed)
	return nil
}

func (a *App) printJobs(list []models.Job) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, j := range list {
		fmt.Fprintf(a.out, "  %3d  %-12s %s\n", j.ID, j.Client, j.Address)
	}
}

// Show prints every field of one job.
func (a *App) Show(ctx context.Context, args []string) error {
	job, err := a.lookup(args, "show")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Job #%d (%s)\n", job.ID, statusLabel(job))
	fmt.Fprintf(a.out, "Address:   %s\n", job.Address)
	fmt.Fprintf(a.out, "Client:    %s\n", job.Client)
	fmt.Fprintf(a.out, "Complaint: %s\n", job.Complaint)
	fmt.Fprintf(a.out, "Details:   %s\n", job.Details)
	fmt.Fprintf(a.out, "Notes:     %s\n", job.Notes)
	return nil
}

// Toggle opens a closed job or closes an open one.
func (a *App) Toggle(ctx context.Context, args []string) error {
	job, err := a.lookup(args, "toggle")
	if err != nil {
		return err
	}

	if !a.jobs.ToggleOpenState(ctx, job.ID) {
		fmt.Fprintln(a.out, alertToggle)
		return errNotSaved
	}

	job, _ = a.jobs.Job(job.ID)
	fmt.Fprintf(a.out, "Job #%d is now %s\n", job.ID, statusLabel(job))
	return nil
}

// lookup resolves the single id argument of a command against the cache.
func (a *App) lookup(args []string, cmd string) (models.Job, error) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return models.Job{}, errUsage
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return models.Job{}, errUsage
	}

	job, ok := a.jobs.Job(id)
	if !ok {
		fmt.Fprintf(a.out, "Job #%d not found.\n", id)
		return models.Job{}, errJobNotFound
	}
	return job, nil
}
