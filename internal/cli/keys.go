package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/msgprune/pkg/catalog"
	"github.com/matzehuels/msgprune/pkg/errors"
	"github.com/matzehuels/msgprune/pkg/locale"
)

// keysCommand creates the keys command for listing a catalog's key paths.
func (c *CLI) keysCommand() *cobra.Command {
	var leaves bool

	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List the dotted key paths of a catalog, sorted",
		Long: `List every dotted key path of a JSON catalog, one per line, sorted.

Intermediate paths are included unless --leaves is given. Useful for diffing
two catalogs with standard tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runKeys(cmd.Context(), args[0], leaves)
		},
	}

	cmd.Flags().BoolVar(&leaves, "leaves", false, "only list paths to non-object values")

	return cmd
}

func (c *CLI) runKeys(ctx context.Context, path string, leaves bool) error {
	logger := loggerFromContext(ctx)

	cat, err := catalog.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "load %s", path)
	}

	var paths []string
	if leaves {
		paths = catalog.Leaves(cat)
	} else {
		paths = catalog.Paths(cat)
	}
	sort.Strings(paths)

	kv := []any{"file", path, "keys", len(paths)}
	if tag, ok := locale.FromFilename(path); ok {
		kv = append(kv, "locale", locale.DisplayName(tag))
	}
	logger.Debug("listing keys", kv...)

	for _, p := range paths {
		fmt.Fprintln(c.out, p)
	}
	return nil
}
