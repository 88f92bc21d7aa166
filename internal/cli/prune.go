package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/msgprune/pkg/errors"
	"github.com/matzehuels/msgprune/pkg/locale"
	"github.com/matzehuels/msgprune/pkg/prune"
)

// maxListedExtras caps the extra keys printed per file.
const maxListedExtras = 5

// runPrune resolves options for cmd and runs the prune, printing progress to
// c.out. forceDryRun is set by the check command.
func (c *CLI) runPrune(cmd *cobra.Command, flags *pruneFlags, forceDryRun bool) (*prune.Summary, error) {
	opts, err := flags.options(cmd)
	if err != nil {
		return nil, err
	}
	if forceDryRun {
		opts.DryRun = true
	}
	return c.prune(cmd.Context(), opts)
}

func (c *CLI) prune(ctx context.Context, opts prune.Options) (*prune.Summary, error) {
	w := c.out
	runner := c.newRunner()

	printInfo(w, "Loading reference: %s", StyleValue.Render(filepath.Join(opts.Dir, opts.Reference)))
	plan, err := runner.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}

	if len(plan.Targets) == 0 {
		printWarning(w, "No translation files found")
		return &prune.Summary{Reference: opts.Reference, ReferenceKeys: plan.ReferenceKeys, DryRun: opts.DryRun}, nil
	}

	printInfo(w, "Reference keys: %s", StyleNumber.Render(strconv.Itoa(plan.ReferenceKeys)))
	printInfo(w, "Processing %s files...", StyleNumber.Render(strconv.Itoa(len(plan.Targets))))
	printNewline(w)

	prog := newProgress(c.Logger)
	summary, err := runner.Execute(ctx, plan, func(r prune.FileResult) {
		printFileResult(w, r, plan.ReferenceKeys)
	})
	if err != nil {
		return summary, err
	}

	printSummary(w, summary)
	prog.done(fmt.Sprintf("Processed %d files", len(summary.Files)))
	return summary, nil
}

// printFileResult prints the outcome for one target catalog.
func printFileResult(w io.Writer, r prune.FileResult, refKeys int) {
	name := fileLabel(r)

	switch r.Status {
	case prune.StatusLoadError:
		printError(w, "%s: load error", name)
		printDetail(w, "%v", r.Err)
		return
	case prune.StatusClean:
		printSuccess(w, "%s: no extras %s", name, StyleDim.Render(fmt.Sprintf("(%d/%d)", r.Before, refKeys)))
		return
	}

	verb := "removing"
	if r.Status == prune.StatusWouldPrune {
		verb = "would remove"
	}
	printInfo(w, "%s: %s %s extra key(s)", name, verb, StyleNumber.Render(strconv.Itoa(len(r.Extras))))

	for i, k := range r.Extras {
		if i == maxListedExtras {
			printDetail(w, "  ... and %d more", len(r.Extras)-maxListedExtras)
			break
		}
		printDetail(w, "  - %s", k)
	}

	switch r.Status {
	case prune.StatusPruned:
		printNested(w, iconSuccess, styleIconSuccess, "saved %s", StyleDim.Render(fmt.Sprintf("(%d/%d)", r.After, refKeys)))
	case prune.StatusSaveError:
		printNested(w, iconError, styleIconError, "save error: %v", r.Err)
	case prune.StatusWouldPrune:
		printNested(w, iconWarning, styleIconWarning, "%s", StyleWarning.Render("[DRY RUN] not saved"))
	}
	printNewline(w)
}

// fileLabel renders the filename, followed by the locale's English name when
// the filename is a locale tag.
func fileLabel(r prune.FileResult) string {
	label := StyleValue.Render(r.Name)
	if name := locale.DisplayName(r.Locale); name != "" {
		label += " " + StyleDim.Render("("+name+")")
	}
	return label
}

// printSummary prints the summary table for a completed run.
func printSummary(w io.Writer, s *prune.Summary) {
	rows := [][]string{
		{"Files changed", strconv.Itoa(s.FilesChanged)},
		{"Extra keys removed", strconv.Itoa(s.KeysRemoved)},
	}
	if n := s.Failed(); n > 0 {
		rows = append(rows, []string{"Files failed", strconv.Itoa(n)})
	}
	if s.DryRun {
		rows = append(rows, []string{"Mode", "DRY RUN"})
	}
	printTable(w, "SUMMARY", rows)
}

// checkResult turns a dry-run summary into the check command's verdict.
func checkResult(s *prune.Summary) error {
	if s.FilesChanged > 0 {
		return errors.New(errors.ErrCodeExtrasFound, "%d file(s) contain %d extra key(s)", s.FilesChanged, s.KeysRemoved)
	}
	if n := s.Failed(); n > 0 {
		return errors.New(errors.ErrCodeInvalidCatalog, "%d file(s) could not be loaded", n)
	}
	return nil
}
