// Package locale maps catalog filenames to BCP 47 language tags.
//
// Catalogs are conventionally named after the locale they hold ("fr-FR.json",
// "pt_BR.json"). The tag is used to label output; it never affects pruning.
package locale

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// FromFilename parses the locale encoded in a catalog filename. Underscores
// are accepted in place of hyphens. It returns false if the base name is not
// a well-formed language tag.
func FromFilename(name string) (language.Tag, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", "-")
	if base == "" {
		return language.Und, false
	}

	tag, err := language.Parse(base)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

// DisplayName returns the English name of tag, such as "French (France)".
// It returns an empty string when no name is known.
func DisplayName(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	return display.Tags(language.English).Name(tag)
}
