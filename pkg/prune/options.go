package prune

import (
	"github.com/gobwas/glob"

	"github.com/matzehuels/msgprune/pkg/catalog"
	"github.com/matzehuels/msgprune/pkg/errors"
)

// Defaults applied by [Options.SetDefaults].
const (
	DefaultDir       = "messages"
	DefaultReference = "en-US.json"
	DefaultPattern   = "*.json"
)

// Options configure a prune run.
type Options struct {
	// Dir is the messages directory holding all catalogs.
	Dir string `json:"dir"`

	// Reference is the filename, inside Dir, of the catalog whose keys are
	// allowed.
	Reference string `json:"reference"`

	// Pattern selects target files by name. It is matched against the base
	// name only.
	Pattern string `json:"pattern"`

	// Keep lists key path patterns that are never pruned. "*" matches within
	// one path segment and "**" across segments.
	Keep []string `json:"keep,omitempty"`

	// DryRun reports changes without writing any file.
	DryRun bool `json:"dry_run"`
}

// SetDefaults fills empty fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.Reference == "" {
		o.Reference = DefaultReference
	}
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
}

// Validate checks the reference filename and the file and keep patterns.
func (o *Options) Validate() error {
	_, err := o.compile()
	return err
}

func (o *Options) compile() (*matchers, error) {
	if err := errors.ValidateCatalogFilename(o.Reference); err != nil {
		return nil, err
	}

	files, err := glob.Compile(o.Pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid file pattern %q", o.Pattern)
	}

	m := &matchers{files: files}
	for _, p := range o.Keep {
		if err := errors.ValidateKeyPattern(p); err != nil {
			return nil, err
		}
		g, err := glob.Compile(p, []rune(catalog.Separator)...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid keep pattern %q", p)
		}
		m.keep = append(m.keep, g)
	}
	return m, nil
}

// matchers holds the compiled patterns of a run.
type matchers struct {
	files glob.Glob
	keep  []glob.Glob
}

// keepFunc returns a catalog keep predicate, or nil when nothing is kept.
func (m *matchers) keepFunc() func(string) bool {
	if len(m.keep) == 0 {
		return nil
	}
	return func(path string) bool {
		for _, g := range m.keep {
			if g.Match(path) {
				return true
			}
		}
		return false
	}
}
