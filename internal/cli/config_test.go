package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/msgprune/pkg/errors"
	"github.com/matzehuels/msgprune/pkg/prune"
)

func TestLoadConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"msgprune.toml": `
messages_dir = "web/messages"
reference = "de-DE.json"
keep = ["legal.**", "beta.*"]
dry_run = true
`,
	})

	cfg, err := loadConfig(filepath.Join(dir, "msgprune.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	var opts prune.Options
	cfg.apply(&opts)

	want := prune.Options{
		Dir:       filepath.Join(dir, "web", "messages"),
		Reference: "de-DE.json",
		Keep:      []string{"legal.**", "beta.*"},
		DryRun:    true,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigAbsoluteDir(t *testing.T) {
	abs := t.TempDir()
	dir := writeFiles(t, map[string]string{
		"c.toml": "messages_dir = '" + abs + "'\n",
	})

	cfg, err := loadConfig(filepath.Join(dir, "c.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	var opts prune.Options
	cfg.apply(&opts)
	if opts.Dir != abs {
		t.Errorf("Dir = %q, want %q", opts.Dir, abs)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty: no file is written
		code    errors.Code
	}{
		{
			name: "explicit path missing",
			code: errors.ErrCodeFileNotFound,
		},
		{
			name:    "syntax error",
			content: "reference = ",
			code:    errors.ErrCodeInvalidConfig,
		},
		{
			name:    "unknown key",
			content: "referense = \"en-US.json\"\n",
			code:    errors.ErrCodeInvalidConfig,
		},
		{
			name:    "wrong type",
			content: "keep = \"legal.**\"\n",
			code:    errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.toml")
			if tt.content != "" {
				dir := writeFiles(t, map[string]string{"msgprune.toml": tt.content})
				path = filepath.Join(dir, "msgprune.toml")
			}

			_, err := loadConfig(path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("loadConfig() = %+v, want nil without a config file", cfg)
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"messages/en-US.json": enUS,
		"messages/fr-FR.json": frFR,
		"msgprune.toml":       "messages_dir = \"messages\"\ndry_run = true\n",
	})
	config := filepath.Join(dir, "msgprune.toml")
	target := filepath.Join(dir, "messages", "fr-FR.json")

	// dry_run from the config file applies.
	out, err := execute(t, "--config", config)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "[DRY RUN] not saved") {
		t.Errorf("config dry_run ignored:\n%s", out)
	}
	if got := readFile(t, target); got != frFR {
		t.Errorf("dry run from config modified file:\n%s", got)
	}

	// An explicit flag overrides it.
	if _, err := execute(t, "--config", config, "--dry-run=false"); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if got := readFile(t, target); got != frFRPruned {
		t.Errorf("flag did not override config:\n%s", got)
	}
}

func TestConfigDiscoveredInWorkingDirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"i18n/base.json":  enUS,
		"i18n/fr-FR.json": frFR,
		"msgprune.toml":   "messages_dir = \"i18n\"\nreference = \"base.json\"\n",
	})
	chdir(t, dir)

	out, err := execute(t, "check")
	if !errors.Is(err, errors.ErrCodeExtrasFound) {
		t.Fatalf("check error = %v, want %s", err, errors.ErrCodeExtrasFound)
	}
	if !strings.Contains(out, filepath.Join("i18n", "base.json")) {
		t.Errorf("output does not mention configured reference:\n%s", out)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
