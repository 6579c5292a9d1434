// Package cli implements the icebox command-line surface: subcommand
// dispatch, per-command flag parsing, and the exit-code contract.
//
// Machine-readable results (listings, retrieved content) go to stdout;
// diagnostics go to stderr only, so output stays pipeable.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/internal/service"
	"github.com/icebox-archive/icebox/internal/store"
	"github.com/icebox-archive/icebox/models"
)

const usageText = `usage: icebox <command> <subcommand> [options] [arguments]

commands:
  vault list
  vault create <vault>
  vault delete <vault>
  vault sync <vault> [-max-age <dur>] [-fix] [-wait]
  archive list <vault> [-force-ids]
  archive upload <vault> <file> [-name <name>]
  archive retrieve <vault> <name>... [-o <file>|-] [-wait]
  archive delete <vault> <name>
  archive checkpresent <vault> <name> [-max-age <dur>] [-quiet] [-wait]
  job list <vault>`

// App dispatches parsed command lines onto the service layer.
type App struct {
	vaults   *service.VaultAdmin
	archives *service.ArchiveService
	sync     *service.SyncService
	stdout   io.Writer
	stderr   io.Writer
	log      *logger.Logger
}

func NewApp(vaults *service.VaultAdmin, archives *service.ArchiveService, sync *service.SyncService, log *logger.Logger) *App {
	return &App{
		vaults:   vaults,
		archives: archives,
		sync:     sync,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		log:      log,
	}
}

// Run executes one command line (already stripped of global flags) and
// returns the error to be mapped onto an exit code.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given\n%s", usageText)
	}

	switch args[0] {
	case "vault":
		return a.runVault(ctx, args[1:])
	case "archive":
		return a.runArchive(ctx, args[1:])
	case "job":
		return a.runJob(ctx, args[1:])
	case "help":
		fmt.Fprintln(a.stdout, usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usageText)
	}
}

func (a *App) runVault(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("vault: missing subcommand\n%s", usageText)
	}

	switch args[0] {
	case "list":
		vaults, err := a.vaults.List(ctx)
		if err != nil {
			return err
		}
		for _, v := range vaults {
			fmt.Fprintln(a.stdout, v.Name)
		}
		return nil

	case "create":
		if len(args) != 2 {
			return fmt.Errorf("vault create: exactly one vault name expected")
		}
		return a.vaults.Create(ctx, args[1])

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("vault delete: exactly one vault name expected")
		}
		return a.vaults.Delete(ctx, args[1])

	case "sync":
		fs := flag.NewFlagSet("vault sync", flag.ContinueOnError)
		fs.SetOutput(a.stderr)
		maxAge := fs.Duration("max-age", 24*time.Hour, "accept inventories no older than this")
		fix := fs.Bool("fix", false, "correct cache discrepancies instead of only reporting them")
		wait := fs.Bool("wait", false, "block until the inventory job completes")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("vault sync: exactly one vault name expected")
		}
		return a.sync.Sync(ctx, fs.Arg(0), *maxAge, *fix, *wait)

	default:
		return fmt.Errorf("vault: unknown subcommand %q", args[0])
	}
}

func (a *App) runArchive(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("archive: missing subcommand\n%s", usageText)
	}

	switch args[0] {
	case "list":
		return a.archiveList(ctx, args[1:])
	case "upload":
		return a.archiveUpload(ctx, args[1:])
	case "retrieve":
		return a.archiveRetrieve(ctx, args[1:])
	case "delete":
		if len(args) != 3 {
			return fmt.Errorf("archive delete: vault and archive name expected")
		}
		return a.archives.Delete(ctx, args[1], args[2])
	case "checkpresent":
		return a.archiveCheckPresent(ctx, args[1:])
	default:
		return fmt.Errorf("archive: unknown subcommand %q", args[0])
	}
}

func (a *App) archiveList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("archive list", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	forceIDs := fs.Bool("force-ids", false, "list every archive in explicit id form")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("archive list: exactly one vault name expected")
	}

	lines, err := a.archives.ListNames(ctx, fs.Arg(0), *forceIDs)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

func (a *App) archiveUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("archive upload", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	name := fs.String("name", "", "archive name (defaults to the file's base name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("archive upload: vault and file expected")
	}
	vault, path := fs.Arg(0), fs.Arg(1)

	// Uploads are hashed before transfer and windowed per part, so the
	// source must be seekable. Stdin is spooled to a temporary file first.
	var (
		src         io.ReadSeeker
		archiveName = *name
	)
	if path == "-" {
		if archiveName == "" {
			return fmt.Errorf("archive upload: -name is required when uploading from stdin")
		}
		spool, err := spoolStdin(os.Stdin)
		if err != nil {
			return err
		}
		defer spool.Close()
		defer os.Remove(spool.Name())
		src = spool
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
		if archiveName == "" {
			archiveName = filepath.Base(path)
		}
	}

	id, err := a.archives.Upload(ctx, vault, archiveName, src)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "id:"+id)
	return nil
}

func (a *App) archiveRetrieve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("archive retrieve", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	output := fs.String("o", "", `output file; "-" streams to stdout`)
	wait := fs.Bool("wait", false, "block until the retrieval job completes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("archive retrieve: vault and at least one archive name expected")
	}
	vault, refs := fs.Arg(0), fs.Args()[1:]

	if *output != "" && len(refs) > 1 {
		return fmt.Errorf("archive retrieve: -o cannot be combined with multiple archive names")
	}

	// A name whose retrieval job is merely not ready yet must not block the
	// remaining names: their jobs get submitted in the same invocation, so a
	// later rerun finds them all staged. Only hard failures abort the loop.
	var queued []string
	for _, ref := range refs {
		err := a.retrieveOne(ctx, vault, ref, *output, *wait)
		var retryable *service.RetryableError
		switch {
		case errors.As(err, &retryable):
			queued = append(queued, fmt.Sprintf("retrieve %s: %s", ref, retryable.Reason))
		case err != nil:
			return fmt.Errorf("retrieve %s: %w", ref, err)
		}
	}
	if len(queued) > 0 {
		return &service.RetryableError{Reason: strings.Join(queued, "\n")}
	}
	return nil
}

func (a *App) retrieveOne(ctx context.Context, vault, ref, output string, wait bool) error {
	if output == "-" {
		return a.archives.Retrieve(ctx, vault, ref, a.stdout, wait)
	}

	if output == "" {
		name, err := a.archives.ResolveName(ctx, vault, ref)
		if err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("archive has no name; use -o to choose an output file")
		}
		output = name
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err = a.archives.Retrieve(ctx, vault, ref, f, wait); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *App) archiveCheckPresent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("archive checkpresent", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	// Default is InventoryLag plus a whole inventory cycle of slack, so a
	// freshly confirmed upload does not immediately demand a resync.
	maxAge := fs.Duration("max-age", 80*time.Hour, "require evidence no older than this")
	quiet := fs.Bool("quiet", false, "suppress absence diagnostics; the exit code still tells")
	wait := fs.Bool("wait", false, "block on the inventory job if a sync is needed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("archive checkpresent: vault and archive name expected")
	}

	archive, err := a.archives.CheckPresent(ctx, fs.Arg(0), fs.Arg(1), *maxAge, *wait)
	if err != nil {
		if *quiet && (errors.Is(err, service.ErrPresenceUnconfirmed) || errors.Is(err, store.ErrArchiveNotFound)) {
			return &silencedError{err: err}
		}
		return err
	}
	fmt.Fprintln(a.stdout, archive.Ref(false))
	return nil
}

func (a *App) runJob(ctx context.Context, args []string) error {
	if len(args) != 2 || args[0] != "list" {
		return fmt.Errorf("job: expected \"job list <vault>\"")
	}
	vault := args[1]

	jobs, err := a.vaults.Jobs(ctx, vault)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		fmt.Fprintln(a.stdout, formatJobLine(job, vault, a.subject(ctx, vault, job)))
	}
	return nil
}

// subject names what a job is about: "inventory", the archive's cached name,
// or the raw id form when the cache has never seen the archive.
func (a *App) subject(ctx context.Context, vault string, job models.Job) string {
	if job.Action != models.JobActionArchiveRetrieval {
		return "inventory"
	}
	if name, err := a.archives.ResolveName(ctx, vault, "id:"+job.ArchiveID); err == nil && name != "" {
		return name
	}
	return "id:" + job.ArchiveID
}

// spoolStdin copies an unseekable stream into a temporary file so it can be
// hashed and windowed like any other upload source.
func spoolStdin(in io.Reader) (*os.File, error) {
	spool, err := os.CreateTemp("", "icebox-upload-*")
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(spool, in); err != nil {
		spool.Close()
		os.Remove(spool.Name())
		return nil, fmt.Errorf("spool stdin: %w", err)
	}
	if _, err = spool.Seek(0, io.SeekStart); err != nil {
		spool.Close()
		os.Remove(spool.Name())
		return nil, err
	}
	return spool, nil
}

// formatJobLine renders one job as "<action>/<status> <date> <vault> <subject>":
// action a (archive retrieval) or i (inventory), status p (in progress),
// d (done) or e (error). The date is the completion date when the job has
// one, else the creation date.
func formatJobLine(job models.Job, vault, subject string) string {
	action := "i"
	if job.Action == models.JobActionArchiveRetrieval {
		action = "a"
	}

	status := "e"
	switch job.StatusCode {
	case models.JobStatusInProgress:
		status = "p"
	case models.JobStatusSucceeded:
		status = "d"
	}

	date := job.CreationDate
	if job.CompletionDate != nil {
		date = *job.CompletionDate
	}

	return fmt.Sprintf("%s/%s %s %s %s", action, status, date.Format(time.RFC3339), vault, subject)
}
