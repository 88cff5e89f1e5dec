// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation files for consistency. It scans the Go
// sources for i18n.T() calls and message ids, and compares them against the
// YAML locale files.
//
// Usage (from the repository root):
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// report lists the problems found by lint. Missing keys fail the run;
// orphaned keys are only reported.
type report struct {
	// Undefined holds ids used in code but absent from the primary locale.
	Undefined []string
	// Orphaned holds primary-locale ids no code refers to.
	Orphaned []string
	// Missing maps a secondary locale file to the primary ids it lacks.
	Missing map[string][]string
}

func (r report) failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, dir, primary string) (report, error) {
	r := report{Missing: map[string][]string{}}

	usedKeys, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	r.Undefined = difference(usedKeys, primaryKeys)
	r.Orphaned = difference(primaryKeys, usedKeys)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, fmt.Errorf("finding locale files: %w", err)
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		r.Missing[filepath.Base(file)] = difference(primaryKeys, keys)
	}
	return r, nil
}

func printReport(w io.Writer, r report) {
	section := func(title string, keys []string, label string) {
		_, _ = fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			_, _ = fmt.Fprintln(w, "  ✨ None found.")
			return
		}
		for _, k := range keys {
			_, _ = fmt.Fprintf(w, "  - %s: %s\n", label, k)
		}
	}
	section("Keys used in code but not defined", r.Undefined, "Undefined")
	section("Orphaned keys (defined but not used)", r.Orphaned, "Orphaned")

	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		section("Missing keys in "+f, r.Missing[f], "Missing")
	}

	switch {
	case r.failed():
		_, _ = fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		_, _ = fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		_, _ = fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// keyRe matches i18n.T("id") calls and string literals shaped like a
// message id (e.g. ID: "notice.saved").
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"((?:cli|tui|notice)\.[a-z_.]+)"`)

// findUsedKeys scans all non-test .go files below root.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			switch {
			case match[1] != "":
				keys[match[1]] = struct{}{}
			case match[2] != "":
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Flat files
// with dotted keys pass through unchanged.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	m, ok := node.(map[string]interface{})
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, val, keys)
	}
}
