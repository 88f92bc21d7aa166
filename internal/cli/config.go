package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/msgprune/pkg/errors"
	"github.com/matzehuels/msgprune/pkg/prune"
)

// configFileName is looked up in the working directory when --config is not given.
const configFileName = appName + ".toml"

// fileConfig mirrors the TOML config file.
//
//	messages_dir = "apps/web/messages"
//	reference    = "en-US.json"
//	pattern      = "*.json"
//	keep         = ["legal.**"]
//	dry_run      = false
type fileConfig struct {
	MessagesDir string   `toml:"messages_dir"`
	Reference   string   `toml:"reference"`
	Pattern     string   `toml:"pattern"`
	Keep        []string `toml:"keep"`
	DryRun      *bool    `toml:"dry_run"`

	// path is where the config was read from.
	path string
}

// loadConfig reads the config file at path. With an empty path it falls back
// to msgprune.toml in the working directory and returns (nil, nil) if that
// does not exist.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat %s", path)
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path
	return &cfg, nil
}

// apply copies the configured values into opts. A relative messages_dir is
// resolved against the config file's directory.
func (c *fileConfig) apply(opts *prune.Options) {
	if c.MessagesDir != "" {
		dir := c.MessagesDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(c.path), dir)
		}
		opts.Dir = dir
	}
	if c.Reference != "" {
		opts.Reference = c.Reference
	}
	if c.Pattern != "" {
		opts.Pattern = c.Pattern
	}
	if len(c.Keep) > 0 {
		opts.Keep = append([]string(nil), c.Keep...)
	}
	if c.DryRun != nil {
		opts.DryRun = *c.DryRun
	}
}

// =============================================================================
// Flags
// =============================================================================

// pruneFlags holds the flag values shared by the root and check commands.
type pruneFlags struct {
	configPath string
	dir        string
	reference  string
	pattern    string
	keep       []string
	dryRun     bool
}

// register binds the persistent prune flags to cmd.
func (f *pruneFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default: ./"+configFileName+" if present)")
	pf.StringVarP(&f.dir, "messages-dir", "d", prune.DefaultDir, "directory containing the message catalogs")
	pf.StringVarP(&f.reference, "reference", "r", prune.DefaultReference, "reference catalog filename inside the messages directory")
	pf.StringVar(&f.pattern, "pattern", prune.DefaultPattern, "glob selecting target catalog filenames")
	pf.StringArrayVar(&f.keep, "keep", nil, "key path glob never pruned (repeatable, e.g. legal.**)")
}

// options merges defaults, the config file, and explicitly set flags, in
// increasing order of precedence.
func (f *pruneFlags) options(cmd *cobra.Command) (prune.Options, error) {
	var opts prune.Options

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		cfg.apply(&opts)
	}

	flags := cmd.Flags()
	if flags.Changed("messages-dir") {
		opts.Dir = f.dir
	}
	if flags.Changed("reference") {
		opts.Reference = f.reference
	}
	if flags.Changed("pattern") {
		opts.Pattern = f.pattern
	}
	if flags.Changed("keep") {
		opts.Keep = f.keep
	}
	if flags.Changed("dry-run") {
		opts.DryRun = f.dryRun
	}

	opts.SetDefaults()
	return opts, opts.Validate()
}
