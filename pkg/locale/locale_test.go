package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   language.Tag
		wantOK bool
	}{
		{"region", "fr-FR.json", language.MustParse("fr-FR"), true},
		{"language only", "de.json", language.German, true},
		{"underscore", "pt_BR.json", language.BrazilianPortuguese, true},
		{"script", "zh-Hant.json", language.TraditionalChinese, true},
		{"with directory", "messages/ja-JP.json", language.MustParse("ja-JP"), true},

		{"not a tag", "translations.json", language.Und, false},
		{"empty base", ".json", language.Und, false},
		{"undetermined", "und.json", language.Und, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromFilename(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("FromFilename(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FromFilename(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(language.French); got != "French" {
		t.Errorf("DisplayName(fr) = %q, want French", got)
	}
	if got := DisplayName(language.Und); got != "" {
		t.Errorf("DisplayName(und) = %q, want empty", got)
	}
	if got := DisplayName(language.MustParse("fr-FR")); got == "" {
		t.Error("DisplayName(fr-FR) should not be empty")
	}
}
