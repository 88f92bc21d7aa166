package prune

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/msgprune/pkg/catalog"
	"github.com/matzehuels/msgprune/pkg/errors"
	"github.com/matzehuels/msgprune/pkg/locale"
	"github.com/matzehuels/msgprune/pkg/observability"
)

// Runner executes prune runs. It holds no state between runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Plan is a validated run: the loaded reference and the targets to process.
type Plan struct {
	Options       Options
	Reference     *catalog.Catalog
	ReferenceKeys int
	Targets       []string // full paths, in processing order

	keep func(string) bool
}

// Run prunes every target catalog in opts.Dir against the reference catalog.
// It is [Runner.Plan] followed by [Runner.Execute].
//
// onFile, if non-nil, is called with each file's result as soon as it is
// known, in processing order. The returned error is non-nil only when the
// run could not start (bad options, missing directory, unusable reference)
// or ctx was cancelled between files; per-file failures are reported in the
// results instead.
func (r *Runner) Run(ctx context.Context, opts Options, onFile func(FileResult)) (*Summary, error) {
	plan, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, plan, onFile)
}

// Plan validates opts, loads the reference catalog, and lists the targets.
// Nothing is written.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Plan, error) {
	opts.SetDefaults()
	m, err := opts.compile()
	if err != nil {
		return nil, err
	}

	ref, err := r.loadReference(ctx, opts)
	if err != nil {
		return nil, err
	}

	targets, err := r.listTargets(opts, m)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Options:       opts,
		Reference:     ref,
		ReferenceKeys: len(catalog.NewKeySet(ref)),
		Targets:       targets,
		keep:          m.keepFunc(),
	}
	r.Logger.Debug("loaded reference", "file", opts.Reference, "keys", plan.ReferenceKeys, "targets", len(targets))
	return plan, nil
}

// Execute processes the targets of plan one by one.
func (r *Runner) Execute(ctx context.Context, plan *Plan, onFile func(FileResult)) (summary *Summary, err error) {
	opts := plan.Options
	start := time.Now()
	hooks := observability.Prune()
	hooks.OnRunStart(ctx, opts.Dir, opts.Reference, opts.DryRun)
	defer func() {
		summary.Duration = time.Since(start)
		hooks.OnRunComplete(ctx, summary.FilesChanged, summary.KeysRemoved, summary.Duration, err)
	}()

	summary = &Summary{
		Reference:     opts.Reference,
		ReferenceKeys: plan.ReferenceKeys,
		DryRun:        opts.DryRun,
	}

	for _, path := range plan.Targets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := r.pruneFile(ctx, path, plan.Reference, plan.keep, opts.DryRun)
		summary.Files = append(summary.Files, res)
		if res.Status.Changed() {
			summary.FilesChanged++
			summary.KeysRemoved += len(res.Extras)
		}
		if onFile != nil {
			onFile(res)
		}
	}

	return summary, nil
}

func (r *Runner) loadReference(ctx context.Context, opts Options) (*catalog.Catalog, error) {
	info, err := os.Stat(opts.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "directory not found: %s", opts.Dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "stat %s", opts.Dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "not a directory: %s", opts.Dir)
	}

	path := filepath.Join(opts.Dir, opts.Reference)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "reference file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "stat %s", path)
	}

	ref, err := load(ctx, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "error loading reference file")
	}
	if ref.Len() == 0 {
		// An empty reference would mark every key of every target as extra.
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "reference file %s has no keys", opts.Reference)
	}
	return ref, nil
}

// listTargets returns the paths of all files in opts.Dir matching the file
// pattern, except the reference, in lexicographic order.
func (r *Runner) listTargets(opts Options, m *matchers) ([]string, error) {
	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.Dir)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == opts.Reference || !m.files.Match(name) {
			continue
		}
		if !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			r.Logger.Debug("skipping non-regular file", "file", name)
			continue
		}
		out = append(out, filepath.Join(opts.Dir, name))
	}
	return out, nil
}

func (r *Runner) pruneFile(ctx context.Context, path string, ref *catalog.Catalog, keep func(string) bool, dryRun bool) FileResult {
	name := filepath.Base(path)
	tag, _ := locale.FromFilename(name)
	res := FileResult{Name: name, Path: path, Locale: tag}

	start := time.Now()
	hooks := observability.Prune()
	hooks.OnFileStart(ctx, name)
	defer func() {
		hooks.OnFileComplete(ctx, name, string(res.Status), len(res.Extras), time.Since(start), res.Err)
	}()

	target, err := load(ctx, path)
	if err != nil {
		res.Status = StatusLoadError
		res.Err = err
		return res
	}

	pruned := catalog.Prune(ref, target, catalog.Options{Keep: keep})
	res.Before = len(catalog.NewKeySet(target))
	res.After = res.Before
	res.Extras = pruned.Extras

	switch {
	case !pruned.Changed():
		res.Status = StatusClean
	case dryRun:
		res.Status = StatusWouldPrune
	default:
		if err := save(ctx, path, pruned.Catalog); err != nil {
			res.Status = StatusSaveError
			res.Err = err
			return res
		}
		res.Status = StatusPruned
		res.After = len(catalog.NewKeySet(pruned.Catalog))
	}
	return res
}

func load(ctx context.Context, path string) (*catalog.Catalog, error) {
	start := time.Now()
	c, err := catalog.Load(path)
	keys := 0
	if err == nil {
		keys = len(catalog.NewKeySet(c))
	}
	observability.Catalog().OnLoad(ctx, path, keys, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// saveCatalog is swapped out in tests to simulate write failures.
var saveCatalog = catalog.Save

func save(ctx context.Context, path string, c *catalog.Catalog) error {
	start := time.Now()
	err := saveCatalog(path, c)
	observability.Catalog().OnSave(ctx, path, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
