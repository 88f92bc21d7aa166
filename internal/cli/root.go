package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/msgprune/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself prunes the messages directory.
func (c *CLI) RootCommand() *cobra.Command {
	var flags pruneFlags

	root := &cobra.Command{
		Use:   appName,
		Short: "Prune translation catalogs down to the keys of a reference catalog",
		Long: `msgprune removes keys from translated JSON message catalogs that no longer
exist in the reference catalog (en-US.json by default). Key order and nesting
of the remaining entries are preserved; untranslated keys are never added.

Use --dry-run to see what would be removed, or "msgprune check" in CI.`,
		Example: `  msgprune --messages-dir apps/web/messages --dry-run
  msgprune --keep 'legal.**'
  msgprune check`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerLogHooks(c.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.runPrune(cmd, &flags, false)
			return err
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags.register(root)
	root.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "only show what would be removed")

	root.AddCommand(c.checkCommand(&flags))
	root.AddCommand(c.keysCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// checkCommand creates the check command: a dry run that fails when any
// target has extra keys.
func (c *CLI) checkCommand(flags *pruneFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report extra keys without writing; exit 1 if any are found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := c.runPrune(cmd, flags, true)
			if err != nil {
				return err
			}
			return checkResult(summary)
		},
	}
}
