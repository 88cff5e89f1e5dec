// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"io/fs"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
	if got := strings.Join(Codes(), ","); got != "de,en" {
		t.Fatalf("unexpected codes: %s", got)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("tui.saved.title"); got != "Saved entries" {
		t.Fatalf("expected 'Saved entries', got %q", got)
	}

	// fmt-style formatting via non-map args
	if got := T("cli.save.done", "Gmail", 3); got != "Saved Gmail (#3)" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tui.generator.length", 12); got != "Länge: 12" {
		t.Fatalf("expected German translation, got %q", got)
	}
	Init("en")
}

func TestT_MissingIDReturnsID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("fr")
	defer Init("en")
	if got := T("notice.saved"); got != "Entry saved." {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

// Every locale must carry the same message ids as English.
func TestLocales_SameKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := fs.ReadFile(localeFS, "locales/"+name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		m := map[string]string{}
		if err := yaml.Unmarshal(data, &m); err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		return m
	}
	en, de := load("en.yaml"), load("de.yaml")
	for k := range en {
		if _, ok := de[k]; !ok {
			t.Errorf("de.yaml is missing %q", k)
		}
	}
	for k := range de {
		if _, ok := en[k]; !ok {
			t.Errorf("de.yaml has extra key %q", k)
		}
	}
}
